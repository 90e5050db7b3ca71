package audit

import "math"

const (
	successRateScaleConstant        = 100
	emptyCatalogSuccessRateConstant = 100
)

// AggregateResults folds the ordered outcome sequence into an immutable report.
//
// The timestamp is captured from the clock at aggregation time; every other
// field is a pure function of the results.
func AggregateResults(results []CheckResult, clock Clock) Report {
	clock = resolveClock(clock)

	passedChecks := 0
	failedChecks := 0
	warningChecks := 0
	for _, result := range results {
		switch result.Status {
		case CheckStatusPass:
			passedChecks++
		case CheckStatusFail:
			failedChecks++
		case CheckStatusWarning:
			warningChecks++
		}
	}

	successRate := computeSuccessRate(passedChecks, len(results))

	return Report{
		Timestamp:     clock.Now(),
		TotalChecks:   len(results),
		PassedChecks:  passedChecks,
		FailedChecks:  failedChecks,
		WarningChecks: warningChecks,
		SuccessRate:   successRate,
		Verdict:       ClassifyReadiness(successRate),
		Results:       results,
	}
}

// computeSuccessRate rounds half up; an empty catalog counts as full success
// since nothing failed.
func computeSuccessRate(passedChecks int, totalChecks int) int {
	if totalChecks == 0 {
		return emptyCatalogSuccessRateConstant
	}
	return int(math.Round(successRateScaleConstant * float64(passedChecks) / float64(totalChecks)))
}

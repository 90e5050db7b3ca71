package audit

const (
	excellentVerdictThresholdConstant      = 90
	needsAttentionVerdictThresholdConstant = 70
)

// ClassifyReadiness maps a success rate percentage onto the three readiness
// tiers. The thresholds are inclusive lower bounds, so the function is total
// over the whole numeric range.
func ClassifyReadiness(successRate int) ReadinessVerdict {
	switch {
	case successRate >= excellentVerdictThresholdConstant:
		return VerdictExcellent
	case successRate >= needsAttentionVerdictThresholdConstant:
		return VerdictNeedsAttention
	default:
		return VerdictCritical
	}
}

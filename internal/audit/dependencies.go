package audit

// TraceSink receives incremental trace events while a catalog evaluation runs.
//
// The sink is an observability side channel only; implementations must not
// influence the content of the returned report.
type TraceSink interface {
	CategoryStarted(categoryName string)
	CheckEvaluated(result CheckResult)
	SummaryReady(report Report)
}

type noopTraceSink struct{}

func (noopTraceSink) CategoryStarted(categoryName string) {}

func (noopTraceSink) CheckEvaluated(result CheckResult) {}

func (noopTraceSink) SummaryReady(report Report) {}

func resolveTraceSink(candidate TraceSink) TraceSink {
	if candidate == nil {
		return noopTraceSink{}
	}
	return candidate
}

func resolveClock(candidate Clock) Clock {
	if candidate == nil {
		return SystemClock{}
	}
	return candidate
}

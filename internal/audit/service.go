package audit

import (
	"context"

	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/project"
)

// Service drives one full catalog evaluation and aggregation pass.
type Service struct {
	evaluator *Evaluator
	traceSink TraceSink
	clock     Clock
}

// NewService constructs a Service over the provided catalog and collaborators.
func NewService(catalog []CheckDefinition, traceSink TraceSink, clock Clock) *Service {
	resolvedSink := resolveTraceSink(traceSink)
	return &Service{
		evaluator: NewEvaluator(catalog, resolvedSink),
		traceSink: resolvedSink,
		clock:     resolveClock(clock),
	}
}

// Run evaluates the whole catalog against the project tree and returns the
// aggregated report. The run is advisory: failing checks are reported, never
// turned into an error, so exit decisions stay with the caller.
func (service *Service) Run(executionContext context.Context, projectTree project.Tree) Report {
	results := service.evaluator.Evaluate(projectTree)
	report := AggregateResults(results, service.clock)
	service.traceSink.SummaryReady(report)
	return report
}

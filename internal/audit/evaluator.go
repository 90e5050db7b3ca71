package audit

import (
	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/project"
)

// Evaluator executes every catalog entry against a project tree in catalog order.
type Evaluator struct {
	catalog   []CheckDefinition
	traceSink TraceSink
}

// NewEvaluator constructs an Evaluator over the provided catalog.
func NewEvaluator(catalog []CheckDefinition, traceSink TraceSink) *Evaluator {
	return &Evaluator{
		catalog:   catalog,
		traceSink: resolveTraceSink(traceSink),
	}
}

// Evaluate produces exactly one result per catalog entry, synchronously and in
// insertion order. Predicate failures caused by missing or unreadable files are
// already folded into evaluations, so no per-check error can escape this loop.
func (evaluator *Evaluator) Evaluate(projectTree project.Tree) []CheckResult {
	results := make([]CheckResult, 0, len(evaluator.catalog))

	previousCategory := ""
	for _, definition := range evaluator.catalog {
		if definition.Category != previousCategory {
			evaluator.traceSink.CategoryStarted(definition.Category)
			previousCategory = definition.Category
		}

		evaluation := definition.Predicate(projectTree)

		status := CheckStatusPass
		if !evaluation.Satisfied {
			status = definition.FailureStatus
		}

		result := CheckResult{
			Category: definition.Category,
			Item:     definition.Item,
			Status:   status,
			Message:  evaluation.Message,
			Details:  evaluation.Details,
		}
		evaluator.traceSink.CheckEvaluated(result)
		results = append(results, result)
	}

	return results
}

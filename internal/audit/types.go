package audit

import (
	"time"

	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/project"
)

// CheckStatus classifies the outcome of a single checklist entry.
type CheckStatus string

// Supported check statuses.
const (
	CheckStatusPass    CheckStatus = "pass"
	CheckStatusFail    CheckStatus = "fail"
	CheckStatusWarning CheckStatus = "warning"
)

// ReadinessVerdict is the tiered classification derived from the success rate.
type ReadinessVerdict string

// Supported readiness verdicts.
const (
	VerdictExcellent      ReadinessVerdict = "excellent"
	VerdictNeedsAttention ReadinessVerdict = "needs-attention"
	VerdictCritical       ReadinessVerdict = "critical"
)

// CheckEvaluation is the raw outcome a predicate produces before status mapping.
type CheckEvaluation struct {
	Satisfied bool
	Message   string
	Details   string
}

// CheckPredicate inspects the project tree and reports whether the check holds.
type CheckPredicate func(projectTree project.Tree) CheckEvaluation

// CheckDefinition describes one immutable catalog entry.
type CheckDefinition struct {
	Category      string
	Item          string
	FailureStatus CheckStatus
	Predicate     CheckPredicate
}

// CheckResult records the evaluated outcome of one catalog entry.
type CheckResult struct {
	Category string      `json:"category" yaml:"category"`
	Item     string      `json:"item" yaml:"item"`
	Status   CheckStatus `json:"status" yaml:"status"`
	Message  string      `json:"message" yaml:"message"`
	Details  string      `json:"details,omitempty" yaml:"details,omitempty"`
}

// Report aggregates the outcomes of one full catalog evaluation.
type Report struct {
	Timestamp     time.Time        `json:"timestamp" yaml:"timestamp"`
	TotalChecks   int              `json:"total_checks" yaml:"total_checks"`
	PassedChecks  int              `json:"passed_checks" yaml:"passed_checks"`
	FailedChecks  int              `json:"failed_checks" yaml:"failed_checks"`
	WarningChecks int              `json:"warning_checks" yaml:"warning_checks"`
	SuccessRate   int              `json:"success_rate" yaml:"success_rate"`
	Verdict       ReadinessVerdict `json:"verdict" yaml:"verdict"`
	Results       []CheckResult    `json:"results" yaml:"results"`
}

// Clock abstracts time-dependent functionality for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the standard library.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

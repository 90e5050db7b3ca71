package trace

import (
	"fmt"
	"io"
	"os"

	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/audit"
)

const (
	categoryHeaderTemplateConstant = "\n%s\n"
	checkLineTemplateConstant      = "  %s %s: %s\n"
	checkDetailsTemplateConstant   = "      %s\n"
	passGlyphConstant              = "✅"
	failGlyphConstant              = "❌"
	warningGlyphConstant           = "⚠️"
	summaryHeaderConstant          = "\nAudit Summary\n"
	summaryCountTemplateConstant   = "  %-14s %d\n"
	summaryRateTemplateConstant    = "  %-14s %s\n"
	summaryTotalLabelConstant      = "Total checks:"
	summaryPassedLabelConstant     = "Passed:"
	summaryFailedLabelConstant     = "Failed:"
	summaryWarningsLabelConstant   = "Warnings:"
	summaryRateLabelConstant       = "Success rate:"
	summaryVerdictLabelConstant    = "Verdict:"
	successRateValueTemplate       = "%d%%"
)

// ConsoleEmitter streams category headers, per-check glyph lines, and the
// closing summary block to a writer.
type ConsoleEmitter struct {
	writer    io.Writer
	formatter StyleFormatter
}

// NewConsoleEmitter constructs an emitter writing to the provided writer. A nil
// writer falls back to standard output and a nil formatter to plain text.
func NewConsoleEmitter(writer io.Writer, formatter StyleFormatter) *ConsoleEmitter {
	if writer == nil || writer == io.Discard {
		writer = os.Stdout
	}
	if formatter == nil {
		formatter = PlainStyleFormatter
	}
	return &ConsoleEmitter{writer: writer, formatter: formatter}
}

// CategoryStarted renders a heading when evaluation enters a new category.
func (emitter *ConsoleEmitter) CategoryStarted(categoryName string) {
	fmt.Fprintf(emitter.writer, categoryHeaderTemplateConstant, emitter.formatter(StyleHeading, categoryName))
}

// CheckEvaluated renders one glyph line per evaluated check, plus an indented
// details line when the outcome carries one.
func (emitter *ConsoleEmitter) CheckEvaluated(result audit.CheckResult) {
	fmt.Fprintf(emitter.writer, checkLineTemplateConstant, statusGlyph(result.Status), result.Item, emitter.formatMessage(result))
	if len(result.Details) > 0 {
		fmt.Fprintf(emitter.writer, checkDetailsTemplateConstant, emitter.formatter(StyleDetail, result.Details))
	}
}

// SummaryReady renders the closing summary block with counts, rate, and verdict.
func (emitter *ConsoleEmitter) SummaryReady(report audit.Report) {
	fmt.Fprint(emitter.writer, emitter.formatter(StyleHeading, summaryHeaderConstant))
	fmt.Fprintf(emitter.writer, summaryCountTemplateConstant, summaryTotalLabelConstant, report.TotalChecks)
	fmt.Fprintf(emitter.writer, summaryCountTemplateConstant, summaryPassedLabelConstant, report.PassedChecks)
	fmt.Fprintf(emitter.writer, summaryCountTemplateConstant, summaryFailedLabelConstant, report.FailedChecks)
	fmt.Fprintf(emitter.writer, summaryCountTemplateConstant, summaryWarningsLabelConstant, report.WarningChecks)
	fmt.Fprintf(emitter.writer, summaryRateTemplateConstant, summaryRateLabelConstant, fmt.Sprintf(successRateValueTemplate, report.SuccessRate))
	fmt.Fprintf(emitter.writer, summaryRateTemplateConstant, summaryVerdictLabelConstant, emitter.formatter(verdictStyleTag(report.Verdict), string(report.Verdict)))
}

func (emitter *ConsoleEmitter) formatMessage(result audit.CheckResult) string {
	return emitter.formatter(statusStyleTag(result.Status), result.Message)
}

func statusGlyph(status audit.CheckStatus) string {
	switch status {
	case audit.CheckStatusPass:
		return passGlyphConstant
	case audit.CheckStatusFail:
		return failGlyphConstant
	default:
		return warningGlyphConstant
	}
}

func statusStyleTag(status audit.CheckStatus) StyleTag {
	switch status {
	case audit.CheckStatusPass:
		return StyleSuccess
	case audit.CheckStatusFail:
		return StyleFailure
	default:
		return StyleWarning
	}
}

func verdictStyleTag(verdict audit.ReadinessVerdict) StyleTag {
	switch verdict {
	case audit.VerdictExcellent:
		return StyleSuccess
	case audit.VerdictNeedsAttention:
		return StyleWarning
	default:
		return StyleFailure
	}
}

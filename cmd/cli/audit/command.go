package audit

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	auditengine "github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/audit"
	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/project"
	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/report"
	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/trace"
	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/utils"
	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/utils/flags"
)

const (
	commandUseConstant              = "audit [project-root]"
	commandShortDescriptionConstant = "Audit a project tree against the readiness checklist"
	commandLongDescriptionConstant  = "audit evaluates the configured checklist against a project tree, streams a human-readable trace, and prints a readiness summary. The command itself always exits successfully; use the gate command for deployment gating."

	rootFlagNameConstant          = "root"
	rootFlagDescriptionConstant   = "Project root to audit."
	reportFileFlagNameConstant    = "report-file"
	reportFileFlagDescription     = "Optional path for a structured report artifact."
	reportFormatFlagNameConstant  = "report-format"
	reportFormatFlagDescription   = "Report artifact format."
	plainFlagNameConstant         = "plain"
	plainFlagDescriptionConstant  = "Disable ANSI styling in the trace output."
	errorMissingProjectRoot       = "no project root provided; pass an argument, set --root, or configure a default"
	auditCompletedMessageConstant = "audit completed"
	artifactWrittenMessage        = "report artifact written"

	logFieldTotalChecksConstant   = "total_checks"
	logFieldPassedChecksConstant  = "passed_checks"
	logFieldFailedChecksConstant  = "failed_checks"
	logFieldWarningChecksConstant = "warning_checks"
	logFieldSuccessRateConstant   = "success_rate"
	logFieldVerdictConstant       = "verdict"
	logFieldArtifactPathConstant  = "artifact_path"
	logFieldArtifactFormat        = "artifact_format"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the persisted audit configuration.
type ConfigurationProvider func() auditengine.CommandConfiguration

// CommandBuilder assembles the audit cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Clock                 auditengine.Clock
}

type commandOptions struct {
	projectRoot   string
	reportFile    string
	reportFormat  string
	plainOutput   bool
	catalogConfig auditengine.CatalogConfiguration
}

// Build constructs the cobra command for checklist audits.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}

	defaults := auditengine.DefaultCommandConfiguration()
	command.Flags().String(rootFlagNameConstant, "", rootFlagDescriptionConstant)
	command.Flags().String(reportFileFlagNameConstant, "", reportFileFlagDescription)
	command.Flags().String(reportFormatFlagNameConstant, "", flags.FormatChoiceUsage(defaults.ReportFormat, report.SupportedArtifactFormats(), reportFormatFlagDescription))
	command.Flags().Bool(plainFlagNameConstant, false, plainFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.resolveOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger()

	catalog, catalogError := auditengine.NewCatalog(options.catalogConfig)
	if catalogError != nil {
		return catalogError
	}

	projectTree := project.NewFilesystemTree(options.projectRoot)
	emitter := buildTraceEmitter(command.OutOrStdout(), options.plainOutput)

	service := auditengine.NewService(catalog, emitter, builder.Clock)
	auditReport := service.Run(command.Context(), projectTree)

	logger.Info(
		auditCompletedMessageConstant,
		zap.Int(logFieldTotalChecksConstant, auditReport.TotalChecks),
		zap.Int(logFieldPassedChecksConstant, auditReport.PassedChecks),
		zap.Int(logFieldFailedChecksConstant, auditReport.FailedChecks),
		zap.Int(logFieldWarningChecksConstant, auditReport.WarningChecks),
		zap.Int(logFieldSuccessRateConstant, auditReport.SuccessRate),
		zap.String(logFieldVerdictConstant, string(auditReport.Verdict)),
	)

	if len(options.reportFile) == 0 {
		return nil
	}

	artifactFormat, formatError := report.ParseArtifactFormat(options.reportFormat)
	if formatError != nil {
		return formatError
	}

	exporter := report.NewExporter(nil)
	if exportError := exporter.WriteArtifact(options.reportFile, artifactFormat, auditReport); exportError != nil {
		return exportError
	}

	logger.Info(
		artifactWrittenMessage,
		zap.String(logFieldArtifactPathConstant, options.reportFile),
		zap.String(logFieldArtifactFormat, string(artifactFormat)),
	)
	return nil
}

func (builder *CommandBuilder) resolveOptions(command *cobra.Command, arguments []string) (commandOptions, error) {
	configuration := builder.resolveConfiguration()

	options := commandOptions{
		projectRoot:   strings.TrimSpace(configuration.ProjectRoot),
		reportFile:    strings.TrimSpace(configuration.ReportFile),
		reportFormat:  strings.TrimSpace(configuration.ReportFormat),
		catalogConfig: configuration.Catalog,
	}

	if flagValue, flagError := command.Flags().GetString(rootFlagNameConstant); flagError == nil && command.Flags().Changed(rootFlagNameConstant) {
		options.projectRoot = strings.TrimSpace(flagValue)
	}
	if len(arguments) > 0 {
		options.projectRoot = strings.TrimSpace(arguments[0])
	}
	if flagValue, flagError := command.Flags().GetString(reportFileFlagNameConstant); flagError == nil && command.Flags().Changed(reportFileFlagNameConstant) {
		options.reportFile = strings.TrimSpace(flagValue)
	}
	if flagValue, flagError := command.Flags().GetString(reportFormatFlagNameConstant); flagError == nil && command.Flags().Changed(reportFormatFlagNameConstant) {
		options.reportFormat = strings.TrimSpace(flagValue)
	}
	options.plainOutput, _ = command.Flags().GetBool(plainFlagNameConstant)

	if len(options.projectRoot) == 0 {
		return commandOptions{}, errors.New(errorMissingProjectRoot)
	}
	if len(options.reportFormat) == 0 {
		options.reportFormat = auditengine.DefaultCommandConfiguration().ReportFormat
	}

	return options, nil
}

func (builder *CommandBuilder) resolveConfiguration() auditengine.CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return auditengine.DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func buildTraceEmitter(writer io.Writer, plainOutput bool) *trace.ConsoleEmitter {
	formatter := trace.ANSIStyleFormatter
	if plainOutput {
		formatter = trace.PlainStyleFormatter
	}
	return trace.NewConsoleEmitter(utils.NewFlushingWriter(writer), formatter)
}

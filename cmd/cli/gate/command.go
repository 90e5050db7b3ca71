package gate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	auditengine "github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/audit"
	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/project"
	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/trace"
	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/utils"
)

const (
	commandUseConstant              = "gate [project-root]"
	commandShortDescriptionConstant = "Gate a deployment on the readiness checklist"
	commandLongDescriptionConstant  = "gate runs the same checklist as audit and fails when any check has a failing status. Warnings are advisory and only logged. Surrounding pipeline steps such as linting, type checks, and builds remain separate tools."

	rootFlagNameConstant         = "root"
	rootFlagDescriptionConstant  = "Project root to gate on."
	plainFlagNameConstant        = "plain"
	plainFlagDescriptionConstant = "Disable ANSI styling in the trace output."

	errorMissingProjectRoot         = "no project root provided; pass an argument, set --root, or configure a default"
	gateFailureTemplateConstant     = "deployment gate failed: %d failing checks"
	gatePassedMessageConstant       = "deployment gate passed"
	advisoryWarningsMessageConstant = "advisory warnings present"
	logFieldWarningChecksConstant   = "warning_checks"
	logFieldSuccessRateConstant     = "success_rate"
	logFieldVerdictConstant         = "verdict"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the persisted audit configuration shared with the audit command.
type ConfigurationProvider func() auditengine.CommandConfiguration

// CommandBuilder assembles the gate cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Clock                 auditengine.Clock
}

// Build constructs the cobra command for deployment gating.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}

	command.Flags().String(rootFlagNameConstant, "", rootFlagDescriptionConstant)
	command.Flags().Bool(plainFlagNameConstant, false, plainFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	projectRoot := strings.TrimSpace(configuration.ProjectRoot)
	if flagValue, flagError := command.Flags().GetString(rootFlagNameConstant); flagError == nil && command.Flags().Changed(rootFlagNameConstant) {
		projectRoot = strings.TrimSpace(flagValue)
	}
	if len(arguments) > 0 {
		projectRoot = strings.TrimSpace(arguments[0])
	}
	if len(projectRoot) == 0 {
		return errors.New(errorMissingProjectRoot)
	}

	catalog, catalogError := auditengine.NewCatalog(configuration.Catalog)
	if catalogError != nil {
		return catalogError
	}

	plainOutput, _ := command.Flags().GetBool(plainFlagNameConstant)
	formatter := trace.ANSIStyleFormatter
	if plainOutput {
		formatter = trace.PlainStyleFormatter
	}
	emitter := trace.NewConsoleEmitter(utils.NewFlushingWriter(command.OutOrStdout()), formatter)

	service := auditengine.NewService(catalog, emitter, builder.Clock)
	auditReport := service.Run(command.Context(), project.NewFilesystemTree(projectRoot))

	logger := builder.resolveLogger()

	if auditReport.WarningChecks > 0 {
		logger.Warn(advisoryWarningsMessageConstant, zap.Int(logFieldWarningChecksConstant, auditReport.WarningChecks))
	}

	if auditReport.FailedChecks > 0 {
		return fmt.Errorf(gateFailureTemplateConstant, auditReport.FailedChecks)
	}

	logger.Info(
		gatePassedMessageConstant,
		zap.Int(logFieldSuccessRateConstant, auditReport.SuccessRate),
		zap.String(logFieldVerdictConstant, string(auditReport.Verdict)),
	)
	return nil
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

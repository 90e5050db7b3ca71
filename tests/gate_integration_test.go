package tests

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGateCommandPassesCompliantProject(testInstance *testing.T) {
	projectRoot := writeIntegrationProject(testInstance)

	commandOutput, executionError := runApplicationCommand(testInstance, []string{
		integrationGateCommandNameConstant, projectRoot,
		integrationPlainFlagConstant,
		integrationLogLevelFlagConstant, integrationErrorLevelConstant,
	})

	require.NoError(testInstance, executionError)
	require.Contains(testInstance, commandOutput, "Audit Summary")
	require.Contains(testInstance, commandOutput, "excellent")
}

func TestGateCommandFailsOnFailingChecks(testInstance *testing.T) {
	projectRoot := writeIntegrationProject(testInstance)
	removeIntegrationProjectFile(testInstance, projectRoot, "lib/rfcore.ts")

	_, executionError := runApplicationCommand(testInstance, []string{
		integrationGateCommandNameConstant, projectRoot,
		integrationPlainFlagConstant,
		integrationLogLevelFlagConstant, integrationErrorLevelConstant,
	})

	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), "deployment gate failed: 1 failing checks")
}

func TestGateCommandIgnoresAdvisoryWarnings(testInstance *testing.T) {
	projectRoot := writeIntegrationProject(testInstance)
	removeIntegrationProjectFile(testInstance, projectRoot, "public/robots.txt")
	removeIntegrationProjectFile(testInstance, projectRoot, ".env.local")

	_, executionError := runApplicationCommand(testInstance, []string{
		integrationGateCommandNameConstant, projectRoot,
		integrationPlainFlagConstant,
		integrationLogLevelFlagConstant, integrationErrorLevelConstant,
	})

	require.NoError(testInstance, executionError)
}

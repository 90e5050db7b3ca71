package tests

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/audit"
)

func TestAuditCommandFullyCompliantProject(testInstance *testing.T) {
	projectRoot := writeIntegrationProject(testInstance)

	commandOutput, executionError := runApplicationCommand(testInstance, []string{
		integrationAuditCommandNameConstant, projectRoot,
		integrationPlainFlagConstant,
		integrationLogLevelFlagConstant, integrationErrorLevelConstant,
	})

	require.NoError(testInstance, executionError)
	require.Contains(testInstance, commandOutput, "Variant Registration")
	require.Contains(testInstance, commandOutput, "Theme Configuration")
	require.Contains(testInstance, commandOutput, "Public Assets")
	require.Contains(testInstance, commandOutput, "Audit Summary")
	require.Contains(testInstance, commandOutput, "100%")
	require.Contains(testInstance, commandOutput, "excellent")
}

func TestAuditCommandDegradedProjectStillExitsSuccessfully(testInstance *testing.T) {
	projectRoot := writeIntegrationProject(testInstance)
	removeIntegrationProjectFile(testInstance, projectRoot, "components/variants/Telemetry.tsx")
	removeIntegrationProjectFile(testInstance, projectRoot, "components/variants/Mesh.tsx")
	removeIntegrationProjectFile(testInstance, projectRoot, "public/robots.txt")
	writeIntegrationProjectFile(testInstance, projectRoot, ".env.local", "NEXT_PUBLIC_API_BASE_URL=https://api.certivox.test\n")

	commandOutput, executionError := runApplicationCommand(testInstance, []string{
		integrationAuditCommandNameConstant, projectRoot,
		integrationPlainFlagConstant,
		integrationLogLevelFlagConstant, integrationErrorLevelConstant,
	})

	require.NoError(testInstance, executionError)
	require.Contains(testInstance, commandOutput, "❌ telemetry")
	require.Contains(testInstance, commandOutput, "❌ mesh")
	require.Contains(testInstance, commandOutput, "⚠️ robots.txt")
	require.Contains(testInstance, commandOutput, "missing variables: NEXT_PUBLIC_RF_SIMULATION")
}

func TestAuditCommandWritesJSONReportArtifact(testInstance *testing.T) {
	projectRoot := writeIntegrationProject(testInstance)
	removeIntegrationProjectFile(testInstance, projectRoot, "public/robots.txt")
	artifactPath := filepath.Join(testInstance.TempDir(), "audit-report.json")

	_, executionError := runApplicationCommand(testInstance, []string{
		integrationAuditCommandNameConstant, projectRoot,
		integrationPlainFlagConstant,
		integrationLogLevelFlagConstant, integrationErrorLevelConstant,
		"--report-file", artifactPath,
		"--report-format", "json",
	})

	require.NoError(testInstance, executionError)

	payload, readError := os.ReadFile(artifactPath)
	require.NoError(testInstance, readError)

	var decodedReport audit.Report
	require.NoError(testInstance, json.Unmarshal(payload, &decodedReport))
	require.Equal(testInstance, 17, decodedReport.TotalChecks)
	require.Equal(testInstance, 16, decodedReport.PassedChecks)
	require.Equal(testInstance, 0, decodedReport.FailedChecks)
	require.Equal(testInstance, 1, decodedReport.WarningChecks)
	require.Equal(testInstance, 94, decodedReport.SuccessRate)
	require.Equal(testInstance, audit.VerdictExcellent, decodedReport.Verdict)
	require.Len(testInstance, decodedReport.Results, 17)
}

func TestAuditCommandHonorsConfigurationFileOverrides(testInstance *testing.T) {
	projectRoot := writeIntegrationProject(testInstance)
	removeIntegrationProjectFile(testInstance, projectRoot, "components/variants/Mesh.tsx")
	removeIntegrationProjectFile(testInstance, projectRoot, "components/variants/Archive.tsx")
	removeIntegrationProjectFile(testInstance, projectRoot, "public/manifest.json")
	removeIntegrationProjectFile(testInstance, projectRoot, "public/robots.txt")
	writeIntegrationProjectFile(testInstance, projectRoot, ".env.local", "NEXT_PUBLIC_API_BASE_URL=https://api.certivox.test\n")

	configurationFilePath := filepath.Join(testInstance.TempDir(), "config.yaml")
	configurationContent := "tools:\n  audit:\n    catalog:\n      variants:\n        - standard\n        - rf\n        - certification\n        - diagnostics\n        - stealth\n        - archive\n        - mesh\n"
	require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(configurationContent), 0o644))

	commandOutput, executionError := runApplicationCommand(testInstance, []string{
		"--config", configurationFilePath,
		integrationAuditCommandNameConstant, projectRoot,
		integrationPlainFlagConstant,
		integrationLogLevelFlagConstant, integrationErrorLevelConstant,
	})

	require.NoError(testInstance, executionError)
	require.NotContains(testInstance, commandOutput, "telemetry")
	require.Contains(testInstance, commandOutput, "69%")
	require.Contains(testInstance, commandOutput, "critical")
}

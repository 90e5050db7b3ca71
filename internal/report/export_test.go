package report_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/audit"
	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/report"
)

func sampleReport() audit.Report {
	return audit.Report{
		Timestamp:     time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC),
		TotalChecks:   2,
		PassedChecks:  1,
		FailedChecks:  0,
		WarningChecks: 1,
		SuccessRate:   50,
		Verdict:       audit.VerdictCritical,
		Results: []audit.CheckResult{
			{Category: "Logging", Item: "lib/logger.ts", Status: audit.CheckStatusPass, Message: "logger identifier and level methods present"},
			{Category: "Public Assets", Item: "robots.txt", Status: audit.CheckStatusWarning, Message: "asset missing", Details: "public/robots.txt"},
		},
	}
}

func TestParseArtifactFormat(testInstance *testing.T) {
	testCases := []struct {
		name           string
		rawFormat      string
		expectedFormat report.ArtifactFormat
		expectError    bool
	}{
		{name: "json", rawFormat: "json", expectedFormat: report.ArtifactFormatJSON},
		{name: "yaml_upper_case", rawFormat: " YAML ", expectedFormat: report.ArtifactFormatYAML},
		{name: "unsupported", rawFormat: "toml", expectError: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			parsedFormat, parseError := report.ParseArtifactFormat(testCase.rawFormat)
			if testCase.expectError {
				require.Error(testInstance, parseError)
				require.Contains(testInstance, parseError.Error(), "unsupported report format")
				return
			}
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expectedFormat, parsedFormat)
		})
	}
}

func TestWriteArtifactJSONRoundTrip(testInstance *testing.T) {
	memoryFileSystem := afero.NewMemMapFs()
	exporter := report.NewExporter(memoryFileSystem)
	originalReport := sampleReport()

	require.NoError(testInstance, exporter.WriteArtifact("reports/audit.json", report.ArtifactFormatJSON, originalReport))

	payload, readError := afero.ReadFile(memoryFileSystem, "reports/audit.json")
	require.NoError(testInstance, readError)

	var decodedReport audit.Report
	require.NoError(testInstance, json.Unmarshal(payload, &decodedReport))
	require.Equal(testInstance, originalReport.TotalChecks, decodedReport.TotalChecks)
	require.Equal(testInstance, originalReport.SuccessRate, decodedReport.SuccessRate)
	require.Equal(testInstance, originalReport.Verdict, decodedReport.Verdict)
	require.Equal(testInstance, originalReport.Results, decodedReport.Results)
	require.True(testInstance, originalReport.Timestamp.Equal(decodedReport.Timestamp))
}

func TestWriteArtifactYAMLUsesSnakeCaseKeys(testInstance *testing.T) {
	memoryFileSystem := afero.NewMemMapFs()
	exporter := report.NewExporter(memoryFileSystem)

	require.NoError(testInstance, exporter.WriteArtifact("audit.yaml", report.ArtifactFormatYAML, sampleReport()))

	payload, readError := afero.ReadFile(memoryFileSystem, "audit.yaml")
	require.NoError(testInstance, readError)

	var decodedDocument map[string]any
	require.NoError(testInstance, yaml.Unmarshal(payload, &decodedDocument))
	for _, expectedKey := range []string{"timestamp", "total_checks", "passed_checks", "failed_checks", "warning_checks", "success_rate", "verdict", "results"} {
		require.Contains(testInstance, decodedDocument, expectedKey)
	}
	require.Equal(testInstance, "critical", decodedDocument["verdict"])
}

func TestEncodeReportRejectsUnknownFormat(testInstance *testing.T) {
	payload, encodeError := report.EncodeReport(report.ArtifactFormat("toml"), sampleReport())

	require.Nil(testInstance, payload)
	require.Error(testInstance, encodeError)
	require.Contains(testInstance, encodeError.Error(), "unsupported report format: toml")
}

func TestJSONOmitsEmptyDetails(testInstance *testing.T) {
	payload, encodeError := report.EncodeReport(report.ArtifactFormatJSON, sampleReport())
	require.NoError(testInstance, encodeError)

	var decodedDocument map[string]any
	require.NoError(testInstance, json.Unmarshal(payload, &decodedDocument))

	resultEntries, castSucceeded := decodedDocument["results"].([]any)
	require.True(testInstance, castSucceeded)
	firstResult, castSucceeded := resultEntries[0].(map[string]any)
	require.True(testInstance, castSucceeded)
	require.NotContains(testInstance, firstResult, "details")
	secondResult, castSucceeded := resultEntries[1].(map[string]any)
	require.True(testInstance, castSucceeded)
	require.Contains(testInstance, secondResult, "details")
}

package tests

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/cmd/cli"
)

const (
	integrationLogLevelFlagConstant       = "--log-level"
	integrationErrorLevelConstant         = "error"
	integrationPlainFlagConstant          = "--plain"
	integrationAuditCommandNameConstant   = "audit"
	integrationGateCommandNameConstant    = "gate"
	integrationStoreContentConstant       = "export const registeredVariants = ['standard', 'rf', 'certification', 'diagnostics', 'stealth', 'archive', 'mesh', 'telemetry'];\n"
	integrationThemeContentConstant       = "module.exports = { theme: { extend: { colors: {} } } };\n"
	integrationEnvironmentContentConstant = "NEXT_PUBLIC_API_BASE_URL=https://api.certivox.test\nNEXT_PUBLIC_RF_SIMULATION=enabled\n"
	integrationLoggerContentConstant      = "export const certivoxLogger = { info: console.info, warn: console.warn, error: console.error };\n"
	integrationDomainContentConstant      = "export function decodeSignal() {}\nexport function generateCertificate() {}\n"
	integrationManifestContentConstant    = "{\"scripts\":{\"build\":\"next build\",\"dev\":\"next dev\"}}\n"
	integrationBuildConfigContentConstant = "module.exports = { output: 'export' };\n"
)

func integrationVariantComponentNames() []string {
	return []string{"Standard", "Rf", "Certification", "Diagnostics", "Stealth", "Archive", "Mesh", "Telemetry"}
}

func writeIntegrationProjectFile(testInstance *testing.T, projectRoot string, relativePath string, content string) {
	testInstance.Helper()
	absolutePath := filepath.Join(projectRoot, filepath.FromSlash(relativePath))
	require.NoError(testInstance, os.MkdirAll(filepath.Dir(absolutePath), 0o755))
	require.NoError(testInstance, os.WriteFile(absolutePath, []byte(content), 0o644))
}

func writeIntegrationProject(testInstance *testing.T) string {
	testInstance.Helper()
	projectRoot := testInstance.TempDir()

	writeIntegrationProjectFile(testInstance, projectRoot, "store/uiState.ts", integrationStoreContentConstant)
	writeIntegrationProjectFile(testInstance, projectRoot, "tailwind.config.js", integrationThemeContentConstant)
	writeIntegrationProjectFile(testInstance, projectRoot, ".env.local", integrationEnvironmentContentConstant)
	writeIntegrationProjectFile(testInstance, projectRoot, "lib/logger.ts", integrationLoggerContentConstant)
	writeIntegrationProjectFile(testInstance, projectRoot, "lib/rfcore.ts", integrationDomainContentConstant)
	writeIntegrationProjectFile(testInstance, projectRoot, "package.json", integrationManifestContentConstant)
	writeIntegrationProjectFile(testInstance, projectRoot, "next.config.js", integrationBuildConfigContentConstant)
	writeIntegrationProjectFile(testInstance, projectRoot, "public/favicon.ico", "icon-bytes")
	writeIntegrationProjectFile(testInstance, projectRoot, "public/manifest.json", "{}\n")
	writeIntegrationProjectFile(testInstance, projectRoot, "public/robots.txt", "User-agent: *\n")
	for _, componentName := range integrationVariantComponentNames() {
		writeIntegrationProjectFile(testInstance, projectRoot, "components/variants/"+componentName+".tsx", "export default function "+componentName+"() { return null; }\n")
	}

	return projectRoot
}

func removeIntegrationProjectFile(testInstance *testing.T, projectRoot string, relativePath string) {
	testInstance.Helper()
	require.NoError(testInstance, os.Remove(filepath.Join(projectRoot, filepath.FromSlash(relativePath))))
}

func runApplicationCommand(testInstance *testing.T, commandArguments []string) (string, error) {
	testInstance.Helper()

	rootCommand := cli.NewApplication().RootCommand()
	outputBuffer := &bytes.Buffer{}
	rootCommand.SetOut(outputBuffer)
	rootCommand.SetErr(outputBuffer)
	rootCommand.SetArgs(commandArguments)

	executionError := rootCommand.Execute()
	return outputBuffer.String(), executionError
}

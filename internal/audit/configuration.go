package audit

import "strings"

// CatalogConfiguration enumerates the fixed paths, tokens, and names the
// checklist inspects. The values are explicit data so tests can point the
// catalog at synthetic project trees.
type CatalogConfiguration struct {
	Variants                     []string `mapstructure:"variants"`
	VariantComponentDirectory    string   `mapstructure:"variant_component_directory"`
	VariantComponentSuffixes     []string `mapstructure:"variant_component_suffixes"`
	StateStoreFile               string   `mapstructure:"state_store_file"`
	ThemeConfigFile              string   `mapstructure:"theme_config_file"`
	ThemeMarkerToken             string   `mapstructure:"theme_marker_token"`
	ThemeExtendToken             string   `mapstructure:"theme_extend_token"`
	EnvironmentFile              string   `mapstructure:"environment_file"`
	RequiredEnvironmentVariables []string `mapstructure:"required_environment_variables"`
	LoggerFile                   string   `mapstructure:"logger_file"`
	LoggerIdentifier             string   `mapstructure:"logger_identifier"`
	LoggerLevelTokens            []string `mapstructure:"logger_level_tokens"`
	LoggerMinimumLevelTokens     int      `mapstructure:"logger_minimum_level_tokens"`
	DomainModuleFile             string   `mapstructure:"domain_module_file"`
	DomainModuleSymbols          []string `mapstructure:"domain_module_symbols"`
	ManifestFile                 string   `mapstructure:"manifest_file"`
	BuildConfigFile              string   `mapstructure:"build_config_file"`
	BuildOutputToken             string   `mapstructure:"build_output_token"`
	BuildExportToken             string   `mapstructure:"build_export_token"`
	PublicAssetsDirectory        string   `mapstructure:"public_assets_directory"`
	PublicAssetFiles             []string `mapstructure:"public_asset_files"`
}

// CommandConfiguration captures persistent settings for the audit and gate commands.
type CommandConfiguration struct {
	ProjectRoot  string               `mapstructure:"project_root"`
	ReportFile   string               `mapstructure:"report_file"`
	ReportFormat string               `mapstructure:"report_format"`
	Catalog      CatalogConfiguration `mapstructure:"catalog"`
}

// Default values for the shipped checklist. They mirror the static-export
// front-end layout the tool was built to inspect.
const (
	defaultVariantComponentDirectoryConstant = "components/variants"
	defaultStateStoreFileConstant            = "store/uiState.ts"
	defaultThemeConfigFileConstant           = "tailwind.config.js"
	defaultThemeMarkerTokenConstant          = "theme"
	defaultThemeExtendTokenConstant          = "extend"
	defaultEnvironmentFileConstant           = ".env.local"
	defaultLoggerFileConstant                = "lib/logger.ts"
	defaultLoggerIdentifierConstant          = "certivoxLogger"
	defaultLoggerMinimumLevelTokensConstant  = 2
	defaultDomainModuleFileConstant          = "lib/rfcore.ts"
	defaultManifestFileConstant              = "package.json"
	defaultBuildConfigFileConstant           = "next.config.js"
	defaultBuildOutputTokenConstant          = "output"
	defaultBuildExportTokenConstant          = "export"
	defaultPublicAssetsDirectoryConstant     = "public"
	defaultProjectRootConstant               = "."
	defaultReportFormatConstant              = "json"
)

func defaultVariantNames() []string {
	return []string{"standard", "rf", "certification", "diagnostics", "stealth", "archive", "mesh", "telemetry"}
}

func defaultVariantComponentSuffixes() []string {
	return []string{".tsx", ".jsx"}
}

func defaultRequiredEnvironmentVariables() []string {
	return []string{"NEXT_PUBLIC_API_BASE_URL", "NEXT_PUBLIC_RF_SIMULATION"}
}

func defaultLoggerLevelTokens() []string {
	return []string{"info", "warn", "error", "debug"}
}

func defaultDomainModuleSymbols() []string {
	return []string{"decodeSignal", "generateCertificate"}
}

func defaultPublicAssetFiles() []string {
	return []string{"favicon.ico", "manifest.json", "robots.txt"}
}

// DefaultCatalogConfiguration returns the checklist shipped with the tool.
func DefaultCatalogConfiguration() CatalogConfiguration {
	return CatalogConfiguration{
		Variants:                     defaultVariantNames(),
		VariantComponentDirectory:    defaultVariantComponentDirectoryConstant,
		VariantComponentSuffixes:     defaultVariantComponentSuffixes(),
		StateStoreFile:               defaultStateStoreFileConstant,
		ThemeConfigFile:              defaultThemeConfigFileConstant,
		ThemeMarkerToken:             defaultThemeMarkerTokenConstant,
		ThemeExtendToken:             defaultThemeExtendTokenConstant,
		EnvironmentFile:              defaultEnvironmentFileConstant,
		RequiredEnvironmentVariables: defaultRequiredEnvironmentVariables(),
		LoggerFile:                   defaultLoggerFileConstant,
		LoggerIdentifier:             defaultLoggerIdentifierConstant,
		LoggerLevelTokens:            defaultLoggerLevelTokens(),
		LoggerMinimumLevelTokens:     defaultLoggerMinimumLevelTokensConstant,
		DomainModuleFile:             defaultDomainModuleFileConstant,
		DomainModuleSymbols:          defaultDomainModuleSymbols(),
		ManifestFile:                 defaultManifestFileConstant,
		BuildConfigFile:              defaultBuildConfigFileConstant,
		BuildOutputToken:             defaultBuildOutputTokenConstant,
		BuildExportToken:             defaultBuildExportTokenConstant,
		PublicAssetsDirectory:        defaultPublicAssetsDirectoryConstant,
		PublicAssetFiles:             defaultPublicAssetFiles(),
	}
}

// DefaultCommandConfiguration returns baseline configuration values for the audit command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		ProjectRoot:  defaultProjectRootConstant,
		ReportFile:   "",
		ReportFormat: defaultReportFormatConstant,
		Catalog:      DefaultCatalogConfiguration(),
	}
}

// DefaultConfigurationValues exposes viper defaults keyed under the provided configuration prefix.
func DefaultConfigurationValues(configurationKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	catalogKey := configurationKey + ".catalog."
	return map[string]any{
		configurationKey + ".project_root":                    defaults.ProjectRoot,
		configurationKey + ".report_file":                     defaults.ReportFile,
		configurationKey + ".report_format":                   defaults.ReportFormat,
		catalogKey + "variants":                               defaults.Catalog.Variants,
		catalogKey + "variant_component_directory":            defaults.Catalog.VariantComponentDirectory,
		catalogKey + "variant_component_suffixes":             defaults.Catalog.VariantComponentSuffixes,
		catalogKey + "state_store_file":                       defaults.Catalog.StateStoreFile,
		catalogKey + "theme_config_file":                      defaults.Catalog.ThemeConfigFile,
		catalogKey + "theme_marker_token":                     defaults.Catalog.ThemeMarkerToken,
		catalogKey + "theme_extend_token":                     defaults.Catalog.ThemeExtendToken,
		catalogKey + "environment_file":                       defaults.Catalog.EnvironmentFile,
		catalogKey + "required_environment_variables":         defaults.Catalog.RequiredEnvironmentVariables,
		catalogKey + "logger_file":                            defaults.Catalog.LoggerFile,
		catalogKey + "logger_identifier":                      defaults.Catalog.LoggerIdentifier,
		catalogKey + "logger_level_tokens":                    defaults.Catalog.LoggerLevelTokens,
		catalogKey + "logger_minimum_level_tokens":            defaults.Catalog.LoggerMinimumLevelTokens,
		catalogKey + "domain_module_file":                     defaults.Catalog.DomainModuleFile,
		catalogKey + "domain_module_symbols":                  defaults.Catalog.DomainModuleSymbols,
		catalogKey + "manifest_file":                          defaults.Catalog.ManifestFile,
		catalogKey + "build_config_file":                      defaults.Catalog.BuildConfigFile,
		catalogKey + "build_output_token":                     defaults.Catalog.BuildOutputToken,
		catalogKey + "build_export_token":                     defaults.Catalog.BuildExportToken,
		catalogKey + "public_assets_directory":                defaults.Catalog.PublicAssetsDirectory,
		catalogKey + "public_asset_files":                     defaults.Catalog.PublicAssetFiles,
	}
}

// sanitize trims whitespace from configured values without applying defaults.
func (configuration CatalogConfiguration) sanitize() CatalogConfiguration {
	sanitized := configuration

	sanitized.Variants = sanitizeStringList(configuration.Variants)
	sanitized.VariantComponentDirectory = strings.TrimSpace(configuration.VariantComponentDirectory)
	sanitized.VariantComponentSuffixes = sanitizeStringList(configuration.VariantComponentSuffixes)
	sanitized.StateStoreFile = strings.TrimSpace(configuration.StateStoreFile)
	sanitized.ThemeConfigFile = strings.TrimSpace(configuration.ThemeConfigFile)
	sanitized.ThemeMarkerToken = strings.TrimSpace(configuration.ThemeMarkerToken)
	sanitized.ThemeExtendToken = strings.TrimSpace(configuration.ThemeExtendToken)
	sanitized.EnvironmentFile = strings.TrimSpace(configuration.EnvironmentFile)
	sanitized.RequiredEnvironmentVariables = sanitizeStringList(configuration.RequiredEnvironmentVariables)
	sanitized.LoggerFile = strings.TrimSpace(configuration.LoggerFile)
	sanitized.LoggerIdentifier = strings.TrimSpace(configuration.LoggerIdentifier)
	sanitized.LoggerLevelTokens = sanitizeStringList(configuration.LoggerLevelTokens)
	sanitized.DomainModuleFile = strings.TrimSpace(configuration.DomainModuleFile)
	sanitized.DomainModuleSymbols = sanitizeStringList(configuration.DomainModuleSymbols)
	sanitized.ManifestFile = strings.TrimSpace(configuration.ManifestFile)
	sanitized.BuildConfigFile = strings.TrimSpace(configuration.BuildConfigFile)
	sanitized.BuildOutputToken = strings.TrimSpace(configuration.BuildOutputToken)
	sanitized.BuildExportToken = strings.TrimSpace(configuration.BuildExportToken)
	sanitized.PublicAssetsDirectory = strings.TrimSpace(configuration.PublicAssetsDirectory)
	sanitized.PublicAssetFiles = sanitizeStringList(configuration.PublicAssetFiles)

	return sanitized
}

func sanitizeStringList(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for index := range raw {
		trimmed := strings.TrimSpace(raw[index])
		if len(trimmed) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmed)
	}
	return sanitized
}

package audit

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/project"
)

// Category labels grouping the checklist entries.
const (
	CategoryVariantRegistration = "Variant Registration"
	CategoryThemeConfiguration  = "Theme Configuration"
	CategoryEnvironment         = "Environment"
	CategoryLogging             = "Logging"
	CategoryDomainModule        = "Domain Module"
	CategoryManifestScripts     = "Manifest Scripts"
	CategoryStaticExport        = "Static Export"
	CategoryPublicAssets        = "Public Assets"
)

const (
	catalogFieldErrorTemplateConstant         = "catalog configuration: %s must not be empty"
	catalogMinimumTokensErrorTemplateConstant = "catalog configuration: logger_minimum_level_tokens %d exceeds configured tokens %d"

	variantRegisteredMessageConstant        = "component and store registration present"
	variantComponentMissingMessageConstant  = "component file missing"
	variantReferenceMissingMessageConstant  = "store registration missing"
	variantUnregisteredMessageConstant      = "component file and store registration missing"
	themeConfiguredMessageConstant          = "theme tokens present"
	themeTokensMissingMessageTemplate       = "missing tokens: %s"
	fileUnreadableMessageTemplate           = "%s missing or unreadable"
	environmentCompleteMessageConstant      = "required variables defined"
	environmentMissingMessageTemplate       = "missing variables: %s"
	loggerCompleteMessageConstant           = "logger identifier and level methods present"
	loggerIdentifierMissingMessageTemplate  = "logger identifier %s not found"
	loggerLevelsMissingMessageTemplate      = "only %d of %d required level methods present"
	domainCompleteMessageConstant           = "required symbols present"
	domainSymbolsMissingMessageTemplate     = "missing symbols: %s"
	manifestScriptsMessageConstant          = "build and dev scripts defined"
	manifestScriptMissingMessageTemplate    = "script %q missing or empty"
	manifestUnparsableMessageConstant       = "manifest missing or unparsable"
	staticExportConfiguredMessageConstant   = "static export tokens present"
	assetPresentMessageConstant             = "asset present"
	assetMissingMessageConstant             = "asset missing"
	tokenListSeparatorConstant              = ", "
	manifestBuildScriptNameConstant         = "build"
	manifestDevScriptNameConstant           = "dev"
	variantComponentDetailTemplateConstant  = "expected one of: %s"
	stateStoreReferenceDetailTemplate       = "no quoted %q literal in %s"
)

// manifestDocument models the subset of the project manifest the checklist inspects.
type manifestDocument struct {
	Scripts map[string]string `json:"scripts"`
}

// NewCatalog builds the ordered check catalog from explicit configuration.
//
// Construction is the only fatal error class of the engine: an invalid
// configuration returns an error, while per-check I/O failures during
// evaluation are always folded into outcomes.
func NewCatalog(configuration CatalogConfiguration) ([]CheckDefinition, error) {
	sanitized := configuration.sanitize()
	if validationError := validateCatalogConfiguration(sanitized); validationError != nil {
		return nil, validationError
	}

	var definitions []CheckDefinition

	for _, variantName := range sanitized.Variants {
		definitions = append(definitions, CheckDefinition{
			Category:      CategoryVariantRegistration,
			Item:          variantName,
			FailureStatus: CheckStatusFail,
			Predicate:     variantRegistrationPredicate(sanitized, variantName),
		})
	}

	definitions = append(definitions, CheckDefinition{
		Category:      CategoryThemeConfiguration,
		Item:          sanitized.ThemeConfigFile,
		FailureStatus: CheckStatusFail,
		Predicate:     themeConfigurationPredicate(sanitized),
	})

	definitions = append(definitions, CheckDefinition{
		Category:      CategoryEnvironment,
		Item:          sanitized.EnvironmentFile,
		FailureStatus: CheckStatusWarning,
		Predicate:     environmentPredicate(sanitized),
	})

	definitions = append(definitions, CheckDefinition{
		Category:      CategoryLogging,
		Item:          sanitized.LoggerFile,
		FailureStatus: CheckStatusFail,
		Predicate:     loggerCompletenessPredicate(sanitized),
	})

	definitions = append(definitions, CheckDefinition{
		Category:      CategoryDomainModule,
		Item:          sanitized.DomainModuleFile,
		FailureStatus: CheckStatusFail,
		Predicate:     domainModulePredicate(sanitized),
	})

	definitions = append(definitions, CheckDefinition{
		Category:      CategoryManifestScripts,
		Item:          sanitized.ManifestFile,
		FailureStatus: CheckStatusFail,
		Predicate:     manifestScriptsPredicate(sanitized),
	})

	definitions = append(definitions, CheckDefinition{
		Category:      CategoryStaticExport,
		Item:          sanitized.BuildConfigFile,
		FailureStatus: CheckStatusFail,
		Predicate:     staticExportPredicate(sanitized),
	})

	for _, assetFileName := range sanitized.PublicAssetFiles {
		definitions = append(definitions, CheckDefinition{
			Category:      CategoryPublicAssets,
			Item:          assetFileName,
			FailureStatus: CheckStatusWarning,
			Predicate:     publicAssetPredicate(sanitized, assetFileName),
		})
	}

	return definitions, nil
}

func validateCatalogConfiguration(configuration CatalogConfiguration) error {
	requiredFields := map[string]string{
		"variant_component_directory": configuration.VariantComponentDirectory,
		"state_store_file":            configuration.StateStoreFile,
		"theme_config_file":           configuration.ThemeConfigFile,
		"theme_marker_token":          configuration.ThemeMarkerToken,
		"theme_extend_token":          configuration.ThemeExtendToken,
		"environment_file":            configuration.EnvironmentFile,
		"logger_file":                 configuration.LoggerFile,
		"logger_identifier":           configuration.LoggerIdentifier,
		"domain_module_file":          configuration.DomainModuleFile,
		"manifest_file":               configuration.ManifestFile,
		"build_config_file":           configuration.BuildConfigFile,
		"build_output_token":          configuration.BuildOutputToken,
		"build_export_token":          configuration.BuildExportToken,
		"public_assets_directory":     configuration.PublicAssetsDirectory,
	}
	for fieldName, fieldValue := range requiredFields {
		if len(fieldValue) == 0 {
			return fmt.Errorf(catalogFieldErrorTemplateConstant, fieldName)
		}
	}

	if len(configuration.VariantComponentSuffixes) == 0 {
		return fmt.Errorf(catalogFieldErrorTemplateConstant, "variant_component_suffixes")
	}
	if len(configuration.RequiredEnvironmentVariables) == 0 {
		return fmt.Errorf(catalogFieldErrorTemplateConstant, "required_environment_variables")
	}
	if len(configuration.LoggerLevelTokens) == 0 {
		return fmt.Errorf(catalogFieldErrorTemplateConstant, "logger_level_tokens")
	}
	if len(configuration.DomainModuleSymbols) == 0 {
		return fmt.Errorf(catalogFieldErrorTemplateConstant, "domain_module_symbols")
	}
	if configuration.LoggerMinimumLevelTokens > len(configuration.LoggerLevelTokens) {
		return fmt.Errorf(catalogMinimumTokensErrorTemplateConstant, configuration.LoggerMinimumLevelTokens, len(configuration.LoggerLevelTokens))
	}

	return nil
}

// variantRegistrationPredicate checks both halves of variant registration: a
// component file under the variants directory and a quoted reference to the
// variant key inside the state-store source.
func variantRegistrationPredicate(configuration CatalogConfiguration, variantName string) CheckPredicate {
	return func(projectTree project.Tree) CheckEvaluation {
		candidatePaths := variantComponentCandidates(configuration, variantName)
		componentFound := false
		for _, candidatePath := range candidatePaths {
			if projectTree.FileExists(candidatePath) {
				componentFound = true
				break
			}
		}

		referenceFound := false
		storeContent, storeReadError := projectTree.ReadFile(configuration.StateStoreFile)
		if storeReadError == nil {
			referenceFound = containsQuotedLiteral(storeContent, variantName)
		}

		switch {
		case componentFound && referenceFound:
			return CheckEvaluation{Satisfied: true, Message: variantRegisteredMessageConstant}
		case !componentFound && !referenceFound:
			return CheckEvaluation{
				Satisfied: false,
				Message:   variantUnregisteredMessageConstant,
				Details:   fmt.Sprintf(variantComponentDetailTemplateConstant, strings.Join(candidatePaths, tokenListSeparatorConstant)),
			}
		case !componentFound:
			return CheckEvaluation{
				Satisfied: false,
				Message:   variantComponentMissingMessageConstant,
				Details:   fmt.Sprintf(variantComponentDetailTemplateConstant, strings.Join(candidatePaths, tokenListSeparatorConstant)),
			}
		default:
			return CheckEvaluation{
				Satisfied: false,
				Message:   variantReferenceMissingMessageConstant,
				Details:   fmt.Sprintf(stateStoreReferenceDetailTemplate, variantName, configuration.StateStoreFile),
			}
		}
	}
}

func variantComponentCandidates(configuration CatalogConfiguration, variantName string) []string {
	componentName := capitalizeName(variantName)
	candidates := make([]string, 0, len(configuration.VariantComponentSuffixes))
	for _, suffix := range configuration.VariantComponentSuffixes {
		candidates = append(candidates, joinProjectPath(configuration.VariantComponentDirectory, componentName+suffix))
	}
	return candidates
}

// themeConfigurationPredicate applies the coarse token heuristic: structural
// marker plus extend token, not a parse of the config's native syntax.
func themeConfigurationPredicate(configuration CatalogConfiguration) CheckPredicate {
	tokens := []string{configuration.ThemeMarkerToken, configuration.ThemeExtendToken}
	return tokenPresencePredicate(configuration.ThemeConfigFile, tokens, themeConfiguredMessageConstant)
}

func environmentPredicate(configuration CatalogConfiguration) CheckPredicate {
	return func(projectTree project.Tree) CheckEvaluation {
		content, readError := projectTree.ReadFile(configuration.EnvironmentFile)
		if readError != nil {
			return unreadableEvaluation(configuration.EnvironmentFile)
		}

		definedVariables, parseError := godotenv.Unmarshal(content)
		if parseError != nil {
			return unreadableEvaluation(configuration.EnvironmentFile)
		}

		var missing []string
		for _, variableName := range configuration.RequiredEnvironmentVariables {
			if _, defined := definedVariables[variableName]; !defined {
				missing = append(missing, variableName)
			}
		}
		if len(missing) > 0 {
			return CheckEvaluation{
				Satisfied: false,
				Message:   fmt.Sprintf(environmentMissingMessageTemplate, strings.Join(missing, tokenListSeparatorConstant)),
			}
		}
		return CheckEvaluation{Satisfied: true, Message: environmentCompleteMessageConstant}
	}
}

func loggerCompletenessPredicate(configuration CatalogConfiguration) CheckPredicate {
	return func(projectTree project.Tree) CheckEvaluation {
		content, readError := projectTree.ReadFile(configuration.LoggerFile)
		if readError != nil {
			return unreadableEvaluation(configuration.LoggerFile)
		}

		if !strings.Contains(content, configuration.LoggerIdentifier) {
			return CheckEvaluation{
				Satisfied: false,
				Message:   fmt.Sprintf(loggerIdentifierMissingMessageTemplate, configuration.LoggerIdentifier),
			}
		}

		presentLevelTokens := countContainedTokens(content, configuration.LoggerLevelTokens)
		if presentLevelTokens < configuration.LoggerMinimumLevelTokens {
			return CheckEvaluation{
				Satisfied: false,
				Message:   fmt.Sprintf(loggerLevelsMissingMessageTemplate, presentLevelTokens, configuration.LoggerMinimumLevelTokens),
			}
		}
		return CheckEvaluation{Satisfied: true, Message: loggerCompleteMessageConstant}
	}
}

func domainModulePredicate(configuration CatalogConfiguration) CheckPredicate {
	return func(projectTree project.Tree) CheckEvaluation {
		content, readError := projectTree.ReadFile(configuration.DomainModuleFile)
		if readError != nil {
			return unreadableEvaluation(configuration.DomainModuleFile)
		}

		missing := missingTokens(content, configuration.DomainModuleSymbols)
		if len(missing) > 0 {
			return CheckEvaluation{
				Satisfied: false,
				Message:   fmt.Sprintf(domainSymbolsMissingMessageTemplate, strings.Join(missing, tokenListSeparatorConstant)),
			}
		}
		return CheckEvaluation{Satisfied: true, Message: domainCompleteMessageConstant}
	}
}

func manifestScriptsPredicate(configuration CatalogConfiguration) CheckPredicate {
	return func(projectTree project.Tree) CheckEvaluation {
		content, readError := projectTree.ReadFile(configuration.ManifestFile)
		if readError != nil {
			return CheckEvaluation{Satisfied: false, Message: manifestUnparsableMessageConstant}
		}

		var manifest manifestDocument
		if unmarshalError := json.Unmarshal([]byte(content), &manifest); unmarshalError != nil {
			return CheckEvaluation{Satisfied: false, Message: manifestUnparsableMessageConstant}
		}

		for _, scriptName := range []string{manifestBuildScriptNameConstant, manifestDevScriptNameConstant} {
			if len(strings.TrimSpace(manifest.Scripts[scriptName])) == 0 {
				return CheckEvaluation{
					Satisfied: false,
					Message:   fmt.Sprintf(manifestScriptMissingMessageTemplate, scriptName),
				}
			}
		}
		return CheckEvaluation{Satisfied: true, Message: manifestScriptsMessageConstant}
	}
}

func staticExportPredicate(configuration CatalogConfiguration) CheckPredicate {
	tokens := []string{configuration.BuildOutputToken, configuration.BuildExportToken}
	return tokenPresencePredicate(configuration.BuildConfigFile, tokens, staticExportConfiguredMessageConstant)
}

func publicAssetPredicate(configuration CatalogConfiguration, assetFileName string) CheckPredicate {
	assetPath := joinProjectPath(configuration.PublicAssetsDirectory, assetFileName)
	return func(projectTree project.Tree) CheckEvaluation {
		if projectTree.FileExists(assetPath) {
			return CheckEvaluation{Satisfied: true, Message: assetPresentMessageConstant}
		}
		return CheckEvaluation{Satisfied: false, Message: assetMissingMessageConstant, Details: assetPath}
	}
}

// tokenPresencePredicate builds a predicate requiring every token to occur in the file's text.
func tokenPresencePredicate(filePath string, tokens []string, successMessage string) CheckPredicate {
	return func(projectTree project.Tree) CheckEvaluation {
		content, readError := projectTree.ReadFile(filePath)
		if readError != nil {
			return unreadableEvaluation(filePath)
		}

		missing := missingTokens(content, tokens)
		if len(missing) > 0 {
			return CheckEvaluation{
				Satisfied: false,
				Message:   fmt.Sprintf(themeTokensMissingMessageTemplate, strings.Join(missing, tokenListSeparatorConstant)),
			}
		}
		return CheckEvaluation{Satisfied: true, Message: successMessage}
	}
}

func unreadableEvaluation(filePath string) CheckEvaluation {
	return CheckEvaluation{Satisfied: false, Message: fmt.Sprintf(fileUnreadableMessageTemplate, filePath)}
}

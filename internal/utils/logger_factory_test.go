package utils_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/utils"
)

func TestCreateLoggerSupportedCombinations(testInstance *testing.T) {
	factory := utils.NewLoggerFactory()

	for _, logLevel := range []utils.LogLevel{utils.LogLevelDebug, utils.LogLevelInfo, utils.LogLevelWarn, utils.LogLevelError} {
		for _, logFormat := range []utils.LogFormat{utils.LogFormatStructured, utils.LogFormatConsole} {
			testInstance.Run(fmt.Sprintf("%s_%s", logLevel, logFormat), func(testInstance *testing.T) {
				logger, creationError := factory.CreateLogger(logLevel, logFormat)

				require.NoError(testInstance, creationError)
				require.NotNil(testInstance, logger)
			})
		}
	}
}

func TestCreateLoggerRejectsUnknownValues(testInstance *testing.T) {
	factory := utils.NewLoggerFactory()

	_, levelError := factory.CreateLogger(utils.LogLevel("verbose"), utils.LogFormatStructured)
	require.Error(testInstance, levelError)
	require.Contains(testInstance, levelError.Error(), "unsupported log level: verbose")

	_, formatError := factory.CreateLogger(utils.LogLevelInfo, utils.LogFormat("xml"))
	require.Error(testInstance, formatError)
	require.Contains(testInstance, formatError.Error(), "unsupported log format: xml")
}

package flags_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/utils/flags"
)

func TestFormatChoiceUsage(testInstance *testing.T) {
	testCases := []struct {
		name           string
		defaultChoice  string
		choices        []string
		description    string
		expectedResult string
	}{
		{
			name:           "default_capitalized",
			defaultChoice:  "json",
			choices:        []string{"json", "yaml"},
			description:    "Report artifact format.",
			expectedResult: "`<JSON|yaml>` Report artifact format.",
		},
		{
			name:           "no_description",
			defaultChoice:  "yaml",
			choices:        []string{"json", "yaml"},
			description:    "  ",
			expectedResult: "`<json|YAML>`",
		},
		{
			name:           "duplicates_and_blanks_removed",
			defaultChoice:  "json",
			choices:        []string{"json", " json ", "", "yaml"},
			description:    "Format.",
			expectedResult: "`<JSON|yaml>` Format.",
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedResult, flags.FormatChoiceUsage(testCase.defaultChoice, testCase.choices, testCase.description))
		})
	}
}

package rfstub_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/rfstub"
)

func TestDecodeSignalBandDescriptions(testInstance *testing.T) {
	testCases := []struct {
		name                string
		frequencyMegahertz  float64
		expectedDescription string
	}{
		{name: "control_channel", frequencyMegahertz: 770.1062, expectedDescription: "P25 Phase II control channel"},
		{name: "voice_channel", frequencyMegahertz: 154.5700, expectedDescription: "narrowband FM voice"},
		{name: "telemetry_burst", frequencyMegahertz: 433.9200, expectedDescription: "telemetry burst, 9600 baud"},
		{name: "noise_floor", frequencyMegahertz: 88.5000, expectedDescription: "no carrier above noise floor"},
	}

	transceiver := rfstub.NewStubTransceiver()
	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			decoded := transceiver.DecodeSignal(testCase.frequencyMegahertz)

			require.Contains(testInstance, decoded, fmt.Sprintf("%.4f MHz", testCase.frequencyMegahertz))
			require.Contains(testInstance, decoded, testCase.expectedDescription)
		})
	}
}

func TestScanFrequenciesReturnsFixedHits(testInstance *testing.T) {
	scanHits := rfstub.NewStubTransceiver().ScanFrequencies()

	require.Len(testInstance, scanHits, 3)
	require.Contains(testInstance, scanHits[0], "154.5700 MHz")
	require.Contains(testInstance, scanHits[1], "433.9200 MHz")
	require.Contains(testInstance, scanHits[2], "770.1062 MHz")
}

func TestCertifyPayloadIsDeterministic(testInstance *testing.T) {
	stub := rfstub.CertificationStub{}

	firstIdentifier := stub.CertifyPayload([]byte("sample payload"))
	secondIdentifier := stub.CertifyPayload([]byte("sample payload"))
	differentIdentifier := stub.CertifyPayload([]byte("other payload"))

	require.Equal(testInstance, firstIdentifier, secondIdentifier)
	require.NotEqual(testInstance, firstIdentifier, differentIdentifier)
	require.Len(testInstance, firstIdentifier, len("CERT-")+12)
	require.True(testInstance, len(firstIdentifier) > 5 && firstIdentifier[:5] == "CERT-")
}

package rfstub

import "fmt"

const (
	decodeSimulatedTemplateConstant = "simulated decode at %.4f MHz: %s"
	decodeControlChannelConstant    = "P25 Phase II control channel"
	decodeVoiceChannelConstant      = "narrowband FM voice"
	decodeTelemetryBurstConstant    = "telemetry burst, 9600 baud"
	decodeNoiseFloorConstant        = "no carrier above noise floor"

	controlBandLowerMegahertzConstant   = 769.0
	controlBandUpperMegahertzConstant   = 775.0
	voiceBandLowerMegahertzConstant     = 150.0
	voiceBandUpperMegahertzConstant     = 174.0
	telemetryBandLowerMegahertzConstant = 433.0
	telemetryBandUpperMegahertzConstant = 435.0
)

// StubTransceiver is a test double standing in for RF hardware integration.
type StubTransceiver struct{}

// NewStubTransceiver constructs the simulated transceiver.
func NewStubTransceiver() *StubTransceiver {
	return &StubTransceiver{}
}

// DecodeSignal returns a canned decode description for the frequency. The
// band boundaries are arbitrary demo values, not real allocations.
func (transceiver *StubTransceiver) DecodeSignal(frequencyMegahertz float64) string {
	description := decodeNoiseFloorConstant
	switch {
	case frequencyMegahertz >= controlBandLowerMegahertzConstant && frequencyMegahertz <= controlBandUpperMegahertzConstant:
		description = decodeControlChannelConstant
	case frequencyMegahertz >= voiceBandLowerMegahertzConstant && frequencyMegahertz <= voiceBandUpperMegahertzConstant:
		description = decodeVoiceChannelConstant
	case frequencyMegahertz >= telemetryBandLowerMegahertzConstant && frequencyMegahertz <= telemetryBandUpperMegahertzConstant:
		description = decodeTelemetryBurstConstant
	}
	return fmt.Sprintf(decodeSimulatedTemplateConstant, frequencyMegahertz, description)
}

// ScanFrequencies returns a fixed set of simulated scan hits.
func (transceiver *StubTransceiver) ScanFrequencies() []string {
	return []string{
		transceiver.DecodeSignal(154.5700),
		transceiver.DecodeSignal(433.9200),
		transceiver.DecodeSignal(770.1062),
	}
}

package rf

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/rfstub"
)

const (
	commandUseConstant              = "rf"
	commandShortDescriptionConstant = "Simulated RF transceiver and certification stubs"
	commandLongDescriptionConstant  = "rf exposes the canned transceiver and certification stand-ins the audited front end mocks. All output is simulated; no hardware is touched."

	frequencyFlagNameConstant        = "frequency"
	frequencyFlagDescriptionConstant = "Frequency in MHz to run through the simulated decoder."
	certifyFlagNameConstant          = "certify"
	certifyFlagDescriptionConstant   = "Path of a file to stamp with a simulated certification digest."

	scanHeaderConstant           = "Simulated frequency scan:\n"
	scanLineTemplateConstant     = "  %s\n"
	decodeLineTemplateConstant   = "%s\n"
	certifyLineTemplateConstant  = "%s %s\n"
	certifyReadErrorTemplateName = "unable to read certification payload %s: %w"
)

// CommandBuilder assembles the rf simulation cobra command.
type CommandBuilder struct{}

// Build constructs the cobra command exposing the simulation stubs.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().Float64(frequencyFlagNameConstant, 0, frequencyFlagDescriptionConstant)
	command.Flags().String(certifyFlagNameConstant, "", certifyFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	transceiver := rfstub.NewStubTransceiver()
	outputWriter := command.OutOrStdout()

	if command.Flags().Changed(certifyFlagNameConstant) {
		payloadPath, _ := command.Flags().GetString(certifyFlagNameConstant)
		payload, readError := os.ReadFile(payloadPath)
		if readError != nil {
			return fmt.Errorf(certifyReadErrorTemplateName, payloadPath, readError)
		}
		digest := rfstub.CertificationStub{}.CertifyPayload(payload)
		fmt.Fprintf(outputWriter, certifyLineTemplateConstant, digest, payloadPath)
		return nil
	}

	if command.Flags().Changed(frequencyFlagNameConstant) {
		frequencyMegahertz, _ := command.Flags().GetFloat64(frequencyFlagNameConstant)
		fmt.Fprintf(outputWriter, decodeLineTemplateConstant, transceiver.DecodeSignal(frequencyMegahertz))
		return nil
	}

	fmt.Fprint(outputWriter, scanHeaderConstant)
	for _, scanHit := range transceiver.ScanFrequencies() {
		fmt.Fprintf(outputWriter, scanLineTemplateConstant, scanHit)
	}
	return nil
}

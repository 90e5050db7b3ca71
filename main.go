package main

import (
	"fmt"
	"os"

	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the certivox command-line application.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}

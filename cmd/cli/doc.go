// Package cli assembles the certivox root command.
//
// It wires the audit, gate, and rf subcommands together with the viper-backed
// configuration loader and the zap logger factory.
package cli

// Package report persists audit reports as machine-readable artifacts.
//
// Exporter serializes a report to JSON or YAML and writes it through an afero
// filesystem so tests can capture artifacts in memory.
package report

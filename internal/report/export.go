package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/ViewUnitySystemT/ModulithCertivox-sub001/internal/audit"
)

// ArtifactFormat identifies a supported report serialization.
type ArtifactFormat string

// Supported artifact formats.
const (
	ArtifactFormatJSON ArtifactFormat = "json"
	ArtifactFormatYAML ArtifactFormat = "yaml"
)

const (
	unsupportedFormatErrorTemplateConstant = "unsupported report format: %s"
	encodeErrorTemplateConstant            = "unable to encode report: %w"
	writeErrorTemplateConstant             = "unable to write report artifact %s: %w"
	jsonIndentConstant                     = "  "
	artifactFilePermissionsConstant        = 0o644
)

// SupportedArtifactFormats lists the accepted format names for flag usage strings.
func SupportedArtifactFormats() []string {
	return []string{string(ArtifactFormatJSON), string(ArtifactFormatYAML)}
}

// ParseArtifactFormat normalizes a raw format name into an ArtifactFormat.
func ParseArtifactFormat(raw string) (ArtifactFormat, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch ArtifactFormat(normalized) {
	case ArtifactFormatJSON:
		return ArtifactFormatJSON, nil
	case ArtifactFormatYAML:
		return ArtifactFormatYAML, nil
	default:
		return "", fmt.Errorf(unsupportedFormatErrorTemplateConstant, raw)
	}
}

// Exporter writes serialized audit reports to a filesystem.
type Exporter struct {
	fileSystem afero.Fs
}

// NewExporter constructs an Exporter; a nil filesystem falls back to the OS filesystem.
func NewExporter(fileSystem afero.Fs) *Exporter {
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}
	return &Exporter{fileSystem: fileSystem}
}

// WriteArtifact serializes the report in the requested format and writes it to artifactPath.
func (exporter *Exporter) WriteArtifact(artifactPath string, format ArtifactFormat, auditReport audit.Report) error {
	payload, encodeError := EncodeReport(format, auditReport)
	if encodeError != nil {
		return encodeError
	}

	if writeError := afero.WriteFile(exporter.fileSystem, artifactPath, payload, artifactFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(writeErrorTemplateConstant, artifactPath, writeError)
	}
	return nil
}

// EncodeReport serializes the report without touching the filesystem.
func EncodeReport(format ArtifactFormat, auditReport audit.Report) ([]byte, error) {
	switch format {
	case ArtifactFormatJSON:
		payload, marshalError := json.MarshalIndent(auditReport, "", jsonIndentConstant)
		if marshalError != nil {
			return nil, fmt.Errorf(encodeErrorTemplateConstant, marshalError)
		}
		return payload, nil
	case ArtifactFormatYAML:
		payload, marshalError := yaml.Marshal(auditReport)
		if marshalError != nil {
			return nil, fmt.Errorf(encodeErrorTemplateConstant, marshalError)
		}
		return payload, nil
	default:
		return nil, fmt.Errorf(unsupportedFormatErrorTemplateConstant, string(format))
	}
}

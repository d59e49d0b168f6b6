package serializer

import "context"

// Serializer writes structured data to some destination in a configured
// format. Implementations exist for files and stdout; RespondJSON covers
// the HTTP response path.
//
// The context parameter is accepted for interface symmetry and future
// cancellable destinations; file and stdout writes do not consult it.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is an optional interface for Serializers that hold resources,
// such as open file handles.
type Closer interface {
	Close() error
}

// Format represents the output format type.
type Format string

const (
	// FormatJSON outputs data in indented JSON.
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML.
	FormatYAML Format = "yaml"
	// FormatTable outputs data as a flattened two-column table.
	FormatTable Format = "table"
)

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// SupportedFormats returns the names of all supported output formats.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTable),
	}
}

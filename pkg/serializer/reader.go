package serializer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"encoding/json"
)

// FormatFromPath determines the serialization format from a file extension.
// Unknown extensions default to JSON. Matching is case-insensitive.
func FormatFromPath(path string) Format {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lower, ".table"), strings.HasSuffix(lower, ".txt"):
		return FormatTable
	default:
		return FormatJSON
	}
}

// Decode deserializes from r into v using the given format.
// Table format is write-only and is rejected.
func Decode(format Format, r io.Reader, v any) error {
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil
	case FormatTable:
		return fmt.Errorf("table format does not support deserialization")
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// FromFile loads a value of type T from a JSON or YAML file, picking the
// format from the file extension.
func FromFile[T any](path string) (*T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer file.Close()

	var out T
	if err := Decode(FormatFromPath(path), file, &out); err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return &out, nil
}

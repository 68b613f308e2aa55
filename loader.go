// FILE: lixenwraith/confighelper/loader.go
package confighelper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a settings file.
type Format string

const (
	// FormatAuto picks the format from the file extension, then the content, then TOML
	FormatAuto Format = "auto"
	// FormatTOML is the default for new files and for extensions like ".config"
	FormatTOML Format = "toml"
	// FormatYAML encodes settings with gopkg.in/yaml.v3
	FormatYAML Format = "yaml"
	// FormatJSON encodes settings as indented JSON
	FormatJSON Format = "json"
)

// ParseFormat converts a user supplied format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "toml", "tml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseFormat.
func (f *Format) UnmarshalText(text []byte) error {
	format, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = format
	return nil
}

// resolveFormat settles the codec for a file.
// Precedence: configured format, extension, content, TOML.
func resolveFormat(configured Format, path string, data []byte) Format {
	if configured != "" && configured != FormatAuto {
		return configured
	}
	if format := detectFileFormat(path); format != "" {
		return format
	}
	if format := detectFormatFromContent(data); format != "" {
		return format
	}
	return FormatTOML
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		// ".config", ".conf" and friends are sniffed
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing.
// TOML is tried before YAML because most TOML lines are also valid YAML scalars.
func detectFormatFromContent(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ""
	}

	if trimmed[0] == '{' && json.Valid(trimmed) {
		return FormatJSON
	}

	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil && len(yamlTest) > 0 {
		return FormatYAML
	}

	return ""
}

// decodeRaw parses a settings file into a generic tree.
// Empty content decodes to an empty tree in every format.
func decodeRaw(format Format, path string, data []byte) (map[string]any, error) {
	raw := make(map[string]any)
	if len(bytes.TrimSpace(data)) == 0 {
		return raw, nil
	}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse TOML settings file '%s': %w", path, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML settings file '%s': %w", path, err)
		}
		if raw == nil {
			raw = make(map[string]any)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON settings file '%s': %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q for file '%s'", ErrUnknownFormat, format, path)
	}

	return raw, nil
}

// encodeRaw serializes a generic tree in the given format.
func encodeRaw(format Format, raw map[string]any) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(raw); err != nil {
			return nil, fmt.Errorf("failed to marshal settings to TOML: %w", err)
		}
	case FormatYAML:
		var node yaml.Node
		if err := node.Encode(raw); err != nil {
			return nil, fmt.Errorf("failed to marshal settings to YAML: %w", err)
		}
		quoteMultilineStrings(&node)

		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(&node); err != nil {
			return nil, fmt.Errorf("failed to marshal settings to YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("failed to flush YAML encoder: %w", err)
		}
	case FormatJSON:
		encoder := json.NewEncoder(&buf)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(raw); err != nil {
			return nil, fmt.Errorf("failed to marshal settings to JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return buf.Bytes(), nil
}

// quoteMultilineStrings forces double quotes on string scalars containing a newline.
// Block scalars lose newline-only values such as "\n" on the way back in.
func quoteMultilineStrings(node *yaml.Node) {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!str" && strings.Contains(node.Value, "\n") {
		node.Style = yaml.DoubleQuotedStyle
	}
	for _, child := range node.Content {
		quoteMultilineStrings(child)
	}
}

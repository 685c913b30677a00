package deskconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks a format from the file extension. Anything that
// is not .json or .toml is read as YAML, which also accepts JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Decode parses data into a normalized value. An empty or comment-only
// source decodes to nil. The result is not checked against any schema,
// so the root may be something other than a mapping.
func Decode(data []byte, format Format) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var raw any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: decode json: %w", ErrParse, err)
		}
		if dec.More() {
			return nil, fmt.Errorf("%w: decode json: trailing data after document", ErrParse)
		}
		raw = fromJSONNumbers(raw)
	case FormatTOML:
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: decode toml: %w", ErrParse, err)
		}
		raw = m
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: decode yaml: %w", ErrParse, err)
		}
		var extra any
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			if err != nil {
				return nil, fmt.Errorf("%w: decode yaml: %w", ErrParse, err)
			}
			return nil, fmt.Errorf("%w: decode yaml: trailing documents after first", ErrParse)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidInput, format)
	}

	return normalize(raw), nil
}

func fromJSONNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i)
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, e := range t {
			t[k] = fromJSONNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = fromJSONNumbers(e)
		}
		return t
	default:
		return v
	}
}

// Encode renders a document in the given format.
func Encode(doc Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(map[string]any(doc), "", "  ")
	case FormatTOML:
		return toml.Marshal(map[string]any(doc))
	case FormatYAML:
		return yaml.Marshal(map[string]any(doc))
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidInput, format)
	}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	switch f {
	case FormatYAML, FormatJSON, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: invalid format: %s (valid formats: yaml, json, toml)", ErrInvalidInput, s)
	}
}

// Package display writes command results as JSON, YAML or TOML.
package display

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/rome/errors"
)

// Supported structured formats. "text" means the command prints its own
// human-readable output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// ResolveFormat picks the output format for cmd: an explicit --json flag
// wins, then an explicit --format flag, then fallback (usually the
// configured output.format).
func ResolveFormat(cmd *cobra.Command, fallback string) string {
	if cmd != nil {
		if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
			if on, _ := cmd.Flags().GetBool("json"); on {
				return FormatJSON
			}
			return FormatText
		}
		if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
			return f.Value.String()
		}
	}
	if fallback == "" {
		return FormatText
	}
	return fallback
}

// Marshal encodes v in format. FormatText is not a structured format and is
// rejected.
func Marshal(format string, v interface{}) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(v, "", "  ")
	case FormatYAML:
		return yaml.Marshal(v)
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.WithHint(
			errors.Newf("unsupported format: %s", format),
			"supported: json, yaml, toml")
	}
}

// Write marshals v in format and writes it to w followed by a newline when
// the encoding does not already end with one.
func Write(w io.Writer, format string, v interface{}) error {
	data, err := Marshal(format, v)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", format)
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}

// IsStructured reports whether format is one Write can produce
func IsStructured(format string) bool {
	switch format {
	case FormatJSON, FormatYAML, FormatTOML:
		return true
	}
	return false
}

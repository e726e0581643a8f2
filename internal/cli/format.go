package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Format is the output format of a command.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// SupportedFormats returns every accepted --format value.
func SupportedFormats() []string {
	return []string{string(FormatTable), string(FormatJSON), string(FormatYAML)}
}

func parseFormat(cmd *cli.Command) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(cmd.String(flagFormat))))
	if !slices.Contains(SupportedFormats(), string(f)) {
		return "", fmt.Errorf("unknown output format %q, want one of %s",
			cmd.String(flagFormat), strings.Join(SupportedFormats(), ", "))
	}
	return f, nil
}

// tabular is implemented by the views that know how to render as text.
type tabular interface {
	writeTable(w io.Writer) error
}

// write renders v to w. Table output falls back to JSON for values
// without a text rendering.
func write(w io.Writer, format Format, v any) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTable:
		if t, ok := v.(tabular); ok {
			return t.writeTable(w)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

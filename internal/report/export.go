// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// WriteYAML encodes r as YAML.
func WriteYAML(w io.Writer, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteJSON encodes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// Export writes r to path in the given format, creating parent
// directories as needed. An empty format is inferred from the extension.
func Export(path string, format types.ReportFormat, r Report) error {
	if format == "" {
		format = formatFromExt(path)
	}

	var write func(io.Writer, Report) error
	switch format {
	case types.FormatYAML:
		write = WriteYAML
	case types.FormatJSON:
		write = WriteJSON
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatFromExt(path string) types.ReportFormat {
	if filepath.Ext(path) == ".json" {
		return types.FormatJSON
	}
	return types.FormatYAML
}

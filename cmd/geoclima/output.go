package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"geoclima.app/internal/core/analysis"
)

const (
	formatMarkdown = "markdown"
	formatJSON     = "json"
	formatYAML     = "yaml"
)

func validFormat(format string) bool {
	switch format {
	case formatMarkdown, formatJSON, formatYAML:
		return true
	default:
		return false
	}
}

func writeResult(w io.Writer, result analysis.Result, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	case formatMarkdown:
		_, err := fmt.Fprintf(w, "%s\n\n_Location: %s (%s) | request %s_\n",
			result.AnalysisText, displayName(result), result.Coordinates.String(), result.RequestID)
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func displayName(result analysis.Result) string {
	if result.LocationName == "" {
		return "default location"
	}
	return result.LocationName
}

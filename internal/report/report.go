// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders analysis results: a plain-text report file placed
// next to the scanned document, machine-readable YAML/JSON exports, and a
// console summary.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/texsweep/pkg/types"
)

const ruleWidth = 80

// BuildText renders the two-section plain-text report: unreferenced labels
// first, then unreferenced numbered equations with their ordinal, start
// line, and verbatim source. Empty sections render an explicit "No ...
// found." line so a clean document is distinguishable from a failed scan.
func BuildText(a *types.Analysis) string {
	var b strings.Builder
	heavy := strings.Repeat("=", ruleWidth)
	light := strings.Repeat("-", ruleWidth)

	b.WriteString(heavy + "\n")
	b.WriteString("UNREFERENCED LABELS\n")
	b.WriteString(heavy + "\n\n")

	if len(a.UnreferencedAnchors) > 0 {
		for _, anchor := range a.UnreferencedAnchors {
			fmt.Fprintf(&b, "  %s (line %d)\n", anchor.Name, anchor.Line)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "Total: %d unreferenced label(s)\n", len(a.UnreferencedAnchors))
	} else {
		b.WriteString("No unreferenced labels found.\n")
	}

	b.WriteString("\n" + heavy + "\n")
	b.WriteString("UNREFERENCED NUMBERED EQUATIONS\n")
	b.WriteString(heavy + "\n\n")

	if len(a.UnreferencedEquations) > 0 {
		for _, block := range a.UnreferencedEquations {
			fmt.Fprintf(&b, "Equation #%d at line %d:\n", block.Index, block.StartLine)
			b.WriteString(light + "\n")
			b.WriteString(block.RawText + "\n")
			b.WriteString(light + "\n\n")
		}
		fmt.Fprintf(&b, "Total: %d unreferenced equation(s)\n", len(a.UnreferencedEquations))
	} else {
		b.WriteString("No unreferenced equations found.\n")
	}

	return b.String()
}

// formatExts maps each output format to the extension of the derived
// report path.
var formatExts = map[types.OutputFormat]string{
	types.OutputText: ".txt",
	types.OutputYAML: ".yaml",
	types.OutputJSON: ".json",
}

// OutputPath returns the report path for a document: cfg.OutputPath when
// set, otherwise the document path with the format's extension.
func OutputPath(a *types.Analysis, cfg types.ReportConfig) string {
	if cfg.OutputPath != "" {
		return cfg.OutputPath
	}
	ext := formatExts[cfg.Format]
	if ext == "" {
		ext = ".txt"
	}
	doc := a.Document
	return strings.TrimSuffix(doc, filepath.Ext(doc)) + ext
}

// Render returns the report in the configured format. An unknown format
// falls back to text.
func Render(a *types.Analysis, format types.OutputFormat) ([]byte, error) {
	switch format {
	case types.OutputYAML:
		return ExportYAML(a)
	case types.OutputJSON:
		return ExportJSON(a)
	default:
		return []byte(BuildText(a)), nil
	}
}

// Write renders the report and writes it to the path derived by OutputPath,
// returning that path.
func Write(a *types.Analysis, cfg types.ReportConfig) (string, error) {
	data, err := Render(a, cfg.Format)
	if err != nil {
		return "", err
	}
	path := OutputPath(a, cfg)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report %s: %w", path, err)
	}
	return path, nil
}

// Summarize prints the console summary: counts, then abbreviated listings
// of unreferenced label names and unreferenced equation line numbers.
func Summarize(a *types.Analysis, w io.Writer) {
	fmt.Fprintf(w, "\nSummary:\n")
	fmt.Fprintf(w, "  - %d unreferenced label(s)\n", len(a.UnreferencedAnchors))
	fmt.Fprintf(w, "  - %d unreferenced equation(s)\n", len(a.UnreferencedEquations))

	if len(a.UnreferencedAnchors) > 0 {
		fmt.Fprintf(w, "\nUnreferenced labels:\n")
		for _, anchor := range a.UnreferencedAnchors {
			fmt.Fprintf(w, "  - %s\n", anchor.Name)
		}
	}

	if len(a.UnreferencedEquations) > 0 {
		fmt.Fprintf(w, "\nUnreferenced equations at lines:\n")
		for _, block := range a.UnreferencedEquations {
			fmt.Fprintf(w, "  - Line %d\n", block.StartLine)
		}
	}
}

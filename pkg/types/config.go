// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects the report output format.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
)

// ReportConfig holds settings for report rendering.
type ReportConfig struct {
	// Format selects the report format: text, yaml, or json.
	Format OutputFormat `json:"format" yaml:"format"`

	// OutputPath overrides the derived report path. Empty means place the
	// report next to the input with the format's extension.
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty"`

	// Stdout prints the report to standard output instead of a file.
	Stdout bool `json:"stdout" yaml:"stdout"`
}

// HistoryConfig holds settings for the scan history store.
type HistoryConfig struct {
	// Dir is the directory holding the history database (contains
	// history.db). Created on first use.
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default maximum number of listed runs (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Disabled turns off history recording entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// Config groups all stage configurations for the tool.
type Config struct {
	Report  ReportConfig  `json:"report" yaml:"report"`
	History HistoryConfig `json:"history" yaml:"history"`
}

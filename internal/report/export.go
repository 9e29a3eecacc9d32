// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/texsweep/pkg/types"
)

// ExportYAML marshals the analysis for downstream tooling.
func ExportYAML(a *types.Analysis) ([]byte, error) {
	data, err := yaml.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	return data, nil
}

// ExportJSON marshals the analysis as indented JSON.
func ExportJSON(a *types.Analysis) ([]byte, error) {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

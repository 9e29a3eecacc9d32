package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/texsweep/pkg/types"
)

func TestExportYAML(t *testing.T) {
	data, err := ExportYAML(sampleAnalysis())
	require.NoError(t, err)

	var got types.Analysis
	require.NoError(t, yaml.Unmarshal(data, &got))

	assert.Equal(t, "paper.tex", got.Document)
	assert.Len(t, got.UnreferencedAnchors, 2)
	assert.Equal(t, "fig:unused", got.UnreferencedAnchors[0].Name)
	assert.Equal(t, types.EnvEquation, got.UnreferencedEquations[0].Env)
}

func TestExportJSON(t *testing.T) {
	data, err := ExportJSON(sampleAnalysis())
	require.NoError(t, err)

	var got types.Analysis
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, 3, got.AnchorCount)
	assert.Equal(t, "eq:never-cited", got.UnreferencedEquations[0].AnchorName)
}

func TestRenderFormats(t *testing.T) {
	a := sampleAnalysis()

	text, err := Render(a, types.OutputText)
	require.NoError(t, err)
	assert.Contains(t, string(text), "UNREFERENCED LABELS")

	yamlOut, err := Render(a, types.OutputYAML)
	require.NoError(t, err)
	assert.Contains(t, string(yamlOut), "document: paper.tex")

	jsonOut, err := Render(a, types.OutputJSON)
	require.NoError(t, err)
	assert.True(t, json.Valid(jsonOut))
}

package scan

import (
	"testing"

	"github.com/pdiddy/texsweep/pkg/types"
)

func TestExtractAnchors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []types.Anchor
	}{
		{
			name:    "single label",
			content: "Intro text\n\\label{sec:intro}\nmore text",
			want:    []types.Anchor{{Name: "sec:intro", Line: 2}},
		},
		{
			name:    "two labels on one line",
			content: "\\label{a}\\label{b}",
			want:    []types.Anchor{{Name: "a", Line: 1}, {Name: "b", Line: 1}},
		},
		{
			name:    "name captured verbatim then trimmed",
			content: "\\label{ fig:spaced }",
			want:    []types.Anchor{{Name: "fig:spaced", Line: 1}},
		},
		{
			name:    "name with punctuation",
			content: "\\label{eq:mass-energy_v2.1}",
			want:    []types.Anchor{{Name: "eq:mass-energy_v2.1", Line: 1}},
		},
		{
			name:    "label in comment ignored",
			content: "text % \\label{dead}\n\\label{live}",
			want:    []types.Anchor{{Name: "live", Line: 2}},
		},
		{
			name:    "escaped percent does not start a comment",
			content: "50\\% rate \\label{tbl:rates}",
			want:    []types.Anchor{{Name: "tbl:rates", Line: 1}},
		},
		{
			name:    "redeclaration yields one anchor per site",
			content: "\\label{dup}\n\ntext\n\\label{dup}",
			want:    []types.Anchor{{Name: "dup", Line: 1}, {Name: "dup", Line: 4}},
		},
		{
			name:    "no labels",
			content: "just prose, no declarations",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAnchors(tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d anchors %v, want %d", len(got), got, len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("anchor[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestStripComment(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"no comment", `a = b`, `a = b`},
		{"whole line comment", `% all comment`, ``},
		{"trailing comment", `x \ref{a} % note`, `x \ref{a} `},
		{"escaped percent kept", `growth of 5\% annually`, `growth of 5\% annually`},
		{"escaped then real", `5\% of cases % remark`, `5\% of cases `},
		{"empty line", ``, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripComment(tt.line); got != tt.want {
				t.Errorf("stripComment(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

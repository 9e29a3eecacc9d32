package scan

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/texsweep/pkg/types"
)

func containsAnchor(anchors []types.Anchor, name string) bool {
	for _, a := range anchors {
		if a.Name == name {
			return true
		}
	}
	return false
}

func TestAnalyzeUnreferencedAnchors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		flagged []string
		clean   []string
	}{
		{
			name:    "label with no citation is flagged",
			content: "\\label{fig:x}\nsome prose",
			flagged: []string{"fig:x"},
		},
		{
			name:    "label with later citation is not flagged",
			content: "\\label{fig:x}\nlater we cite \\ref{fig:x}",
			clean:   []string{"fig:x"},
		},
		{
			name:    "citation before declaration still counts",
			content: "see \\ref{sec:late}\n...\n\\label{sec:late}",
			clean:   []string{"sec:late"},
		},
		{
			name:    "mixed",
			content: "\\label{a}\n\\label{b}\n\\cref{b}",
			flagged: []string{"a"},
			clean:   []string{"b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analyze("doc.tex", tt.content)
			for _, name := range tt.flagged {
				if !containsAnchor(a.UnreferencedAnchors, name) {
					t.Errorf("%q missing from unreferenced anchors %v", name, a.UnreferencedAnchors)
				}
			}
			for _, name := range tt.clean {
				if containsAnchor(a.UnreferencedAnchors, name) {
					t.Errorf("%q should not be in unreferenced anchors %v", name, a.UnreferencedAnchors)
				}
			}
		})
	}
}

func TestAnalyzeUnreferencedEquations(t *testing.T) {
	t.Run("labeled equation never cited is flagged", func(t *testing.T) {
		content := "\\begin{equation}\nE=mc^2\n\\label{eq:a}\n\\end{equation}"
		a := Analyze("doc.tex", content)

		if len(a.UnreferencedEquations) != 1 {
			t.Fatalf("got %d unreferenced equations, want 1", len(a.UnreferencedEquations))
		}
		block := a.UnreferencedEquations[0]
		if block.Index != 1 {
			t.Errorf("Index = %d, want 1", block.Index)
		}
		if !strings.Contains(block.RawText, "E=mc^2") {
			t.Errorf("RawText %q does not contain the equation body", block.RawText)
		}
	})

	t.Run("cited equation is not flagged", func(t *testing.T) {
		content := "\\begin{equation}\nE=mc^2\n\\label{eq:a}\n\\end{equation}\nby \\eqref{eq:a}"
		a := Analyze("doc.tex", content)
		if len(a.UnreferencedEquations) != 0 {
			t.Errorf("got %d unreferenced equations, want 0: %+v", len(a.UnreferencedEquations), a.UnreferencedEquations)
		}
	})

	t.Run("unlabeled equation always flagged even with citations around", func(t *testing.T) {
		content := "\\begin{align}\nx=1\n\\end{align}\n\\ref{something-else}\n\\label{something-else}"
		a := Analyze("doc.tex", content)
		if len(a.UnreferencedEquations) != 1 {
			t.Errorf("got %d unreferenced equations, want 1", len(a.UnreferencedEquations))
		}
	})

	t.Run("starred equation produces nothing regardless of citations", func(t *testing.T) {
		content := "\\begin{equation*} x=y \\end{equation*}\n\\eqref{whatever}"
		a := Analyze("doc.tex", content)
		if a.EquationCount != 0 {
			t.Errorf("EquationCount = %d, want 0", a.EquationCount)
		}
		if len(a.UnreferencedEquations) != 0 {
			t.Errorf("got %d unreferenced equations, want 0", len(a.UnreferencedEquations))
		}
	})
}

// Labels physically inside starred environments are still picked up by the
// document-wide anchor pass, even though the block itself is never citable
// by number. Long-standing behavior; documents rely on it.
func TestStarredInteriorAnchorStillFound(t *testing.T) {
	content := "\\begin{align*}\nx &= y\n\\label{eq:starred-interior}\n\\end{align*}"
	a := Analyze("doc.tex", content)

	if a.AnchorCount != 1 {
		t.Fatalf("AnchorCount = %d, want 1", a.AnchorCount)
	}
	if !containsAnchor(a.UnreferencedAnchors, "eq:starred-interior") {
		t.Errorf("interior label missing from unreferenced anchors %v", a.UnreferencedAnchors)
	}
	if a.EquationCount != 0 {
		t.Errorf("EquationCount = %d, want 0", a.EquationCount)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	content := "\\label{a}\n\\begin{equation}\n1+1=2\n\\label{eq:b}\n\\end{equation}\n" +
		"\\ref{a} % comment \\ref{c}\n\\begin{gather*}\nghost\n\\end{gather*}"

	first := Analyze("doc.tex", content)
	second := Analyze("doc.tex", content)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analysis differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	a := Analyze("empty.tex", "")
	if a.AnchorCount != 0 || a.CitationCount != 0 || a.EquationCount != 0 {
		t.Errorf("counts = %d/%d/%d, want all zero", a.AnchorCount, a.CitationCount, a.EquationCount)
	}
	if !a.Clean() {
		t.Errorf("empty document should be clean")
	}
}

func TestReconcileDoesNotMutateInputs(t *testing.T) {
	anchors := []types.Anchor{{Name: "a", Line: 1}, {Name: "b", Line: 2}}
	citations := types.CitationSet{"b": {}}
	equations := []types.EquationBlock{{Index: 1, StartLine: 3, Env: types.EnvEquation, RawText: "raw"}}

	anchorsCopy := append([]types.Anchor(nil), anchors...)
	equationsCopy := append([]types.EquationBlock(nil), equations...)

	a := Reconcile("doc.tex", anchors, citations, equations)

	if !reflect.DeepEqual(anchors, anchorsCopy) {
		t.Errorf("anchors mutated: %v", anchors)
	}
	if !reflect.DeepEqual(equations, equationsCopy) {
		t.Errorf("equations mutated: %v", equations)
	}
	if citations.Len() != 1 || !citations.Has("b") {
		t.Errorf("citation set mutated: %v", citations)
	}

	if len(a.UnreferencedAnchors) != 1 || a.UnreferencedAnchors[0].Name != "a" {
		t.Errorf("UnreferencedAnchors = %v, want just a", a.UnreferencedAnchors)
	}
	if len(a.UnreferencedEquations) != 1 {
		t.Errorf("UnreferencedEquations = %v, want the unlabeled block", a.UnreferencedEquations)
	}
}

func TestReconcilePreservesDocumentOrder(t *testing.T) {
	content := "\\label{z:last-name-first}\n\\label{a:first-name-last}\n" +
		"\\begin{equation}\none\n\\end{equation}\n\\begin{equation}\ntwo\n\\end{equation}"
	a := Analyze("doc.tex", content)

	if len(a.UnreferencedAnchors) != 2 {
		t.Fatalf("got %d unreferenced anchors, want 2", len(a.UnreferencedAnchors))
	}
	if a.UnreferencedAnchors[0].Name != "z:last-name-first" {
		t.Errorf("anchors not in document order: %v", a.UnreferencedAnchors)
	}

	if len(a.UnreferencedEquations) != 2 {
		t.Fatalf("got %d unreferenced equations, want 2", len(a.UnreferencedEquations))
	}
	if a.UnreferencedEquations[0].Index != 1 || a.UnreferencedEquations[1].Index != 2 {
		t.Errorf("equations not in index order: %+v", a.UnreferencedEquations)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import "github.com/pdiddy/texsweep/pkg/types"

// Analyze runs the three extractors over content and reconciles their
// output. document is the path recorded in the result for reporting; it is
// not read here, the caller supplies the full text.
func Analyze(document, content string) *types.Analysis {
	anchors := ExtractAnchors(content)
	citations := ExtractCitations(content)
	equations := ExtractEquations(content)
	return Reconcile(document, anchors, citations, equations)
}

// Reconcile merges the extractors' output into an Analysis. An anchor is
// unreferenced when its name is not in the citation set. An equation block
// is unreferenced when it has no internal label, or its label is never
// cited. Document order is preserved and the inputs are not modified.
func Reconcile(document string, anchors []types.Anchor, citations types.CitationSet, equations []types.EquationBlock) *types.Analysis {
	a := &types.Analysis{
		Document:      document,
		AnchorCount:   len(anchors),
		CitationCount: citations.Len(),
		EquationCount: len(equations),
	}

	for _, anchor := range anchors {
		if !citations.Has(anchor.Name) {
			a.UnreferencedAnchors = append(a.UnreferencedAnchors, anchor)
		}
	}

	for _, block := range equations {
		if block.AnchorName == "" || !citations.Has(block.AnchorName) {
			a.UnreferencedEquations = append(a.UnreferencedEquations, block)
		}
	}

	return a
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan is the analysis core: it extracts label declarations,
// citation targets, and numbered equation spans from LaTeX source and
// reconciles them into the set of unreferenced items. The extractors are
// pure functions over the document text and share one comment-stripping
// rule; none depends on another's output.
package scan

import (
	"regexp"
	"strings"

	"github.com/pdiddy/texsweep/pkg/types"
)

// labelRe matches a \label declaration and captures the name between the
// braces. Names may contain any character except a closing brace.
var labelRe = regexp.MustCompile(`\\label\{([^}]+)\}`)

// ExtractAnchors returns every \label declaration in document order, one
// Anchor per occurrence, each tagged with its 1-based line number. A name
// declared more than once yields one Anchor per declaration site. Text after
// an unescaped % on a line is ignored.
func ExtractAnchors(content string) []types.Anchor {
	var anchors []types.Anchor
	for i, line := range strings.Split(content, "\n") {
		for _, m := range labelRe.FindAllStringSubmatch(stripComment(line), -1) {
			anchors = append(anchors, types.Anchor{
				Name: strings.TrimSpace(m[1]),
				Line: i + 1,
			})
		}
	}
	return anchors
}

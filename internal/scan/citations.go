// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"regexp"
	"strings"

	"github.com/pdiddy/texsweep/pkg/types"
)

// refCommands lists the reference-style commands whose argument names one
// or more citation targets. Longer names come before their suffixes so the
// alternation never matches a shorter command inside a longer one.
var refCommands = []string{
	"autoref",
	"nameref",
	"pageref",
	"eqref",
	"Cref",
	"cref",
	"Ref",
	"ref",
}

// refRe matches any reference command with an optional trailing star (the
// starred and unstarred forms cite identically) and captures the braced
// target list.
var refRe = regexp.MustCompile(`\\(?:` + strings.Join(refCommands, "|") + `)\*?\{([^}]+)\}`)

// ExtractCitations returns the set of names targeted by any reference
// command in content. A comma-separated argument contributes one target per
// piece; surrounding whitespace is trimmed and empty pieces (e.g. from a
// trailing comma) are dropped. Comment text is ignored.
func ExtractCitations(content string) types.CitationSet {
	targets := types.NewCitationSet()
	for _, m := range refRe.FindAllStringSubmatch(stripComments(content), -1) {
		for _, piece := range strings.Split(m[1], ",") {
			if piece = strings.TrimSpace(piece); piece != "" {
				targets.Add(piece)
			}
		}
	}
	return targets
}

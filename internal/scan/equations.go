// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"regexp"
	"strings"

	"github.com/pdiddy/texsweep/pkg/types"
)

// beginRe matches the \begin marker of any recognized equation environment,
// capturing the kind and an optional star.
var beginRe *regexp.Regexp

// endRes maps each numbered kind to the regexp for its exact, non-starred
// \end marker.
var endRes = make(map[types.EnvKind]*regexp.Regexp)

func init() {
	names := make([]string, len(types.NumberedEnvs))
	for i, kind := range types.NumberedEnvs {
		names[i] = string(kind)
		endRes[kind] = regexp.MustCompile(`\\end\{` + string(kind) + `\}`)
	}
	beginRe = regexp.MustCompile(`\\begin\{(` + strings.Join(names, "|") + `)(\*?)\}`)
}

// ExtractEquations returns every numbered equation environment span in
// document order. The scan walks the lines top to bottom; a non-starred
// \begin opens a block that runs to the next \end of the same exact kind
// (which may sit on the \begin line itself). Same-kind nesting is not
// supported. Starred begins are skipped and produce nothing. A \begin with
// no matching \end before end of input is dropped, along with everything it
// swallowed.
//
// RawText is captured verbatim from the original lines, markers inclusive;
// marker and label recognition run on comment-stripped lines.
func ExtractEquations(content string) []types.EquationBlock {
	raw := strings.Split(content, "\n")
	clean := make([]string, len(raw))
	for i, line := range raw {
		clean[i] = stripComment(line)
	}

	var blocks []types.EquationBlock
	for i := 0; i < len(clean); i++ {
		m := beginRe.FindStringSubmatch(clean[i])
		if m == nil {
			continue
		}
		if m[2] == "*" {
			// Unnumbered variant: not citable, no block.
			continue
		}
		kind := types.EnvKind(m[1])
		endRe := endRes[kind]

		closed := false
		for j := i; j < len(clean); j++ {
			if !endRe.MatchString(clean[j]) {
				continue
			}
			block := types.EquationBlock{
				Index:     len(blocks) + 1,
				StartLine: i + 1,
				Env:       kind,
				RawText:   strings.Join(raw[i:j+1], "\n"),
			}
			if lm := labelRe.FindStringSubmatch(strings.Join(clean[i:j+1], "\n")); lm != nil {
				block.AnchorName = strings.TrimSpace(lm[1])
			}
			blocks = append(blocks, block)
			i = j
			closed = true
			break
		}
		if !closed {
			// Unmatched begin: discard the open block.
			break
		}
	}
	return blocks
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EnvKind names a LaTeX equation-style environment that produces numbered,
// citable display math.
type EnvKind string

const (
	EnvEquation EnvKind = "equation"
	EnvAlign    EnvKind = "align"
	EnvGather   EnvKind = "gather"
	EnvMultline EnvKind = "multline"
	EnvFlalign  EnvKind = "flalign"
	EnvAlignat  EnvKind = "alignat"
	EnvEqnarray EnvKind = "eqnarray"
)

// NumberedEnvs lists every recognized numbered environment kind. Starred
// forms of these names (e.g. equation*) suppress numbering and are never
// citable, so the scanner skips them.
var NumberedEnvs = []EnvKind{
	EnvEquation,
	EnvAlign,
	EnvGather,
	EnvMultline,
	EnvFlalign,
	EnvAlignat,
	EnvEqnarray,
}

// Anchor is a single \label declaration site in a document.
type Anchor struct {
	// Name is the label name between the braces, with surrounding
	// whitespace trimmed.
	Name string `json:"name" yaml:"name"`

	// Line is the 1-based line number of the declaration.
	Line int `json:"line" yaml:"line"`
}

// CitationSet holds every name targeted by a reference command. Membership
// only; citing the same name twice is the same as citing it once.
type CitationSet map[string]struct{}

// NewCitationSet returns an empty set.
func NewCitationSet() CitationSet {
	return make(CitationSet)
}

// Add inserts name into the set.
func (s CitationSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name is in the set.
func (s CitationSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of distinct targets.
func (s CitationSet) Len() int {
	return len(s)
}

// EquationBlock is one numbered equation environment span.
type EquationBlock struct {
	// Index is the 1-based ordinal of this block among all numbered
	// blocks in the document, in document order.
	Index int `json:"index" yaml:"index"`

	// StartLine is the 1-based line number of the \begin marker.
	StartLine int `json:"start_line" yaml:"start_line"`

	// Env is the environment kind, e.g. equation or align.
	Env EnvKind `json:"env" yaml:"env"`

	// RawText is the verbatim span from the \begin line through the
	// \end line, inclusive.
	RawText string `json:"raw_text" yaml:"raw_text"`

	// AnchorName is the first \label declared inside the span, or empty
	// when the block carries no label.
	AnchorName string `json:"anchor_name,omitempty" yaml:"anchor_name,omitempty"`
}

// Analysis holds the outcome of scanning one document. It is recomputed on
// every run and never persisted as such; the history store keeps only
// summary rows derived from it.
type Analysis struct {
	// Document is the path of the scanned file, as given by the caller.
	Document string `json:"document" yaml:"document"`

	// AnchorCount, CitationCount, and EquationCount are the totals the
	// scan found before reconciliation.
	AnchorCount   int `json:"anchor_count" yaml:"anchor_count"`
	CitationCount int `json:"citation_count" yaml:"citation_count"`
	EquationCount int `json:"equation_count" yaml:"equation_count"`

	// UnreferencedAnchors lists every label declaration whose name is
	// never cited, in document order.
	UnreferencedAnchors []Anchor `json:"unreferenced_anchors" yaml:"unreferenced_anchors"`

	// UnreferencedEquations lists every numbered block that is never
	// cited, directly or through its internal label, in document order.
	UnreferencedEquations []EquationBlock `json:"unreferenced_equations" yaml:"unreferenced_equations"`
}

// Clean reports whether the document has no unreferenced labels and no
// unreferenced equations.
func (a *Analysis) Clean() bool {
	return len(a.UnreferencedAnchors) == 0 && len(a.UnreferencedEquations) == 0
}

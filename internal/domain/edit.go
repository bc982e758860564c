package domain

import "strings"

// Replacement is a single (old, new) edit proposed by the model.
type Replacement struct {
	Old string
	New string
}

// FoundIn reports whether the old text occurs verbatim in document.
func (r Replacement) FoundIn(document string) bool {
	return strings.Contains(document, r.Old)
}

// SpellReport is the parsed form of a spell-check response.
type SpellReport struct {
	Replacements []Replacement
	Suggestions  []string
}

// Empty reports whether neither block yielded anything.
func (r SpellReport) Empty() bool {
	return len(r.Replacements) == 0 && len(r.Suggestions) == 0
}

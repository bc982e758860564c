package spell

import "github.com/doeshing/wiz/internal/domain"

// CheckedReplacement pairs a replacement with its hallucination verdict.
type CheckedReplacement struct {
	domain.Replacement
	Hallucinated bool
}

// Check flags every replacement whose old text does not occur verbatim in document.
// Nothing is dropped; order is preserved.
func Check(document string, replacements []domain.Replacement) []CheckedReplacement {
	out := make([]CheckedReplacement, 0, len(replacements))
	for _, r := range replacements {
		out = append(out, CheckedReplacement{Replacement: r, Hallucinated: !r.FoundIn(document)})
	}
	return out
}

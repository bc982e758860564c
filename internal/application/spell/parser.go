package spell

import (
	"regexp"
	"strings"

	"github.com/doeshing/wiz/internal/domain"
)

// replacePattern matches `replace 'old' with 'new'`. Text between the first quote
// pair is the old text; anything after the closing quote of the new text is ignored.
var replacePattern = regexp.MustCompile(`^replace[^']*'([^']*)'\s*with[^']*'([^']*)'`)

// Parse extracts the replacements and suggestions blocks from raw model output.
// Malformed lines and unterminated blocks are skipped, never reported.
func Parse(output string) domain.SpellReport {
	return domain.SpellReport{
		Replacements: parseReplacements(output),
		Suggestions:  parseSuggestions(output),
	}
}

// block returns the text between start and the first end marker that follows it.
func block(text, start, end string) (string, bool) {
	i := strings.Index(text, start)
	if i < 0 {
		return "", false
	}
	body := text[i+len(start):]
	j := strings.Index(body, end)
	if j < 0 {
		return "", false
	}
	return body[:j], true
}

func parseReplacements(output string) []domain.Replacement {
	body, ok := block(output, domain.ReplacementsStart, domain.ReplacementsEnd)
	if !ok {
		return nil
	}
	var out []domain.Replacement
	for _, line := range strings.Split(body, "\n") {
		r, ok := ParseReplacementLine(line)
		if !ok || r.Old == r.New {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ParseReplacementLine parses a single `replace 'a' with 'b'` line.
func ParseReplacementLine(line string) (domain.Replacement, bool) {
	m := replacePattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return domain.Replacement{}, false
	}
	return domain.Replacement{Old: m[1], New: m[2]}, true
}

func parseSuggestions(output string) []string {
	body, ok := block(output, domain.SuggestionsStart, domain.SuggestionsEnd)
	if !ok {
		return nil
	}
	var out []string
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "-") {
			continue
		}
		out = append(out, strings.TrimSpace(strings.TrimLeft(trimmed, "-")))
	}
	return out
}

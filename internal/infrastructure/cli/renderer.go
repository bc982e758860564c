package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/wiz/internal/application/command"
	"github.com/doeshing/wiz/internal/application/spell"
	"github.com/doeshing/wiz/internal/domain"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[1;32m"
	ansiYellow = "\x1b[1;33m"
)

// Renderer prints task results. Colour is only used on terminals.
type Renderer struct {
	out   io.Writer
	color bool
}

// NewRenderer builds a renderer for w.
func NewRenderer(w io.Writer) *Renderer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isTerminal(f)
	}
	return &Renderer{out: w, color: color}
}

// Command prints exactly what the model returned, refusal included.
func (r *Renderer) Command(s command.Suggestion) {
	fmt.Fprintln(r.out, s.Command)
}

// Spell prints replacements (suspect ones marked) and suggestions.
func (r *Renderer) Spell(res spell.Result) {
	if res.Report.Empty() {
		fmt.Fprintln(r.out, domain.NoIssuesMessage)
		return
	}

	if checked := res.Checked(); len(checked) > 0 {
		fmt.Fprintln(r.out, "\nProposed Replacements:")
		for i, c := range checked {
			if c.Hallucinated {
				fmt.Fprintf(r.out, "%d. Hallucination: '%s' → '%s'\n", i+1, c.Old, c.New)
				continue
			}
			fmt.Fprintf(r.out, "%d. '%s' → '%s'\n", i+1, c.Old, c.New)
		}
	}

	if len(res.Report.Suggestions) > 0 {
		fmt.Fprintln(r.out, "\nSuggestions:")
		for _, s := range res.Report.Suggestions {
			fmt.Fprintf(r.out, "- %s\n", s)
		}
	}
}

// History prints one block per record, newest first.
func (r *Renderer) History(records []domain.HistoryRecord) {
	for _, rec := range records {
		fmt.Fprintf(r.out, "\n%s \"%s\"\n%s \"%s\"\n%s \"%s\"\n%s $%.6f (USD)\n\n",
			r.paint(ansiGreen, "Prompt:"), rec.Prompt,
			r.paint(ansiYellow, "Model:"), rec.Model,
			r.paint(ansiYellow, "Response:"), rec.Response,
			r.paint(ansiYellow, "Cost:"), rec.Cost(),
		)
	}
}

// Status prints the log store summary.
func (r *Renderer) Status(s domain.StoreStatus) {
	fmt.Fprintf(r.out, "Found log database at %s\n", s.Path)
	fmt.Fprintf(r.out, "Number of conversations logged: %d\n", s.Conversations)
	fmt.Fprintf(r.out, "Number of responses logged:     %d\n", s.Responses)
	fmt.Fprintf(r.out, "Database file size:             %.2fKB (%s)\n", s.SizeKB(), humanize.IBytes(uint64(s.SizeBytes)))
}

// Doctor prints one line per health check.
func (r *Renderer) Doctor(report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(r.out, "[%s] %s - %s\n", strings.ToUpper(string(check.Status)), check.Name, check.Details)
	}
}

func (r *Renderer) paint(code, text string) string {
	if !r.color {
		return text
	}
	return code + text + ansiReset
}

package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/doeshing/wiz/internal/application/command"
	"github.com/doeshing/wiz/internal/application/spell"
	"github.com/doeshing/wiz/internal/domain"
)

func TestRenderSpell(t *testing.T) {
	tests := []struct {
		name string
		res  spell.Result
		want string
	}{
		{
			name: "no issues",
			res:  spell.Result{Document: "Fine text."},
			want: "No typos or grammar issues found.\n",
		},
		{
			name: "genuine and hallucinated",
			res: spell.Result{
				Document: "Teh quick fox.",
				Report: domain.SpellReport{
					Replacements: []domain.Replacement{{Old: "Teh", New: "The"}, {Old: "zeb", New: "The"}},
					Suggestions:  []string{"Name the fox."},
				},
			},
			want: "\nProposed Replacements:\n1. 'Teh' → 'The'\n2. Hallucination: 'zeb' → 'The'\n\nSuggestions:\n- Name the fox.\n",
		},
		{
			name: "suggestions only",
			res: spell.Result{
				Document: "x",
				Report:   domain.SpellReport{Suggestions: []string{"b", "a"}},
			},
			want: "\nSuggestions:\n- b\n- a\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewRenderer(&buf).Spell(tt.res)
			if got := buf.String(); got != tt.want {
				t.Errorf("Spell() output:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestRenderCommandPassesRefusalThrough(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Command(command.Suggestion{Command: "REFUSE", Refused: true})
	if buf.String() != "REFUSE\n" {
		t.Errorf("Command() = %q", buf.String())
	}
}

func TestRenderHistory(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).History([]domain.HistoryRecord{{
		Prompt:       "list files",
		Response:     "ls",
		Model:        "m1",
		TokenDetails: `{"cost":0.001234,"other":1}`,
		Timestamp:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}})
	want := "\nPrompt: \"list files\"\nModel: \"m1\"\nResponse: \"ls\"\nCost: $0.001234 (USD)\n\n"
	if buf.String() != want {
		t.Errorf("History() output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestRenderHistoryColour(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{out: &buf, color: true}
	r.History([]domain.HistoryRecord{{Prompt: "p"}})
	if !bytes.Contains(buf.Bytes(), []byte(ansiGreen+"Prompt:"+ansiReset)) {
		t.Errorf("expected coloured label, got %q", buf.String())
	}
}

func TestRenderStatus(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Status(domain.StoreStatus{Path: "/d/cmd.db", Conversations: 3, Responses: 7, SizeBytes: 12288})
	want := "Found log database at /d/cmd.db\n" +
		"Number of conversations logged: 3\n" +
		"Number of responses logged:     7\n" +
		"Database file size:             12.00KB (12 KiB)\n"
	if buf.String() != want {
		t.Errorf("Status() output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestRenderDoctor(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Doctor(domain.HealthReport{Checks: []domain.HealthCheck{
		{Name: "llm tool", Status: domain.HealthOK, Details: "/usr/bin/llm"},
		{Name: "spell log store", Status: domain.HealthWarn, Details: "not created yet"},
	}})
	want := "[OK] llm tool - /usr/bin/llm\n[WARN] spell log store - not created yet\n"
	if buf.String() != want {
		t.Errorf("Doctor() output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

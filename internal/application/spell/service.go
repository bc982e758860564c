// Package spell implements the spell-check task: piping a document to the model,
// extracting the marker-delimited edits it returns and flagging hallucinated ones.
package spell

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/doeshing/wiz/assets"
	"github.com/doeshing/wiz/internal/domain"
	"github.com/doeshing/wiz/internal/ports"
)

// Result is a parsed spell-check plus the document it was computed against.
type Result struct {
	Document string
	Report   domain.SpellReport
}

// Checked returns the replacements annotated against the document.
func (r Result) Checked() []CheckedReplacement {
	return Check(r.Document, r.Report.Replacements)
}

// Service orchestrates one spell-check request.
type Service struct {
	Invoker  ports.Invoker
	Progress ports.Progress
	Stores   ports.StoreLocator
	Logger   ports.Logger
}

// Run reads the file at path and checks it.
func (s *Service) Run(ctx context.Context, path string) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return s.Check(ctx, string(content))
}

// Check sends document to the model over stdin and parses the answer.
func (s *Service) Check(ctx context.Context, document string) (Result, error) {
	store, err := s.Stores.StorePath(domain.SpellCheck)
	if err != nil {
		return Result{}, fmt.Errorf("failed to locate log store: %w", err)
	}

	req := domain.InvocationRequest{
		ID:           uuid.NewString(),
		Kind:         domain.SpellCheck,
		SystemPrompt: assets.SpellPrompt,
		Payload:      document,
		LogStorePath: store,
	}

	s.Progress.Start()
	res, err := s.Invoker.Invoke(ctx, req)
	s.Progress.Stop()
	if err != nil {
		return Result{}, err
	}

	report := Parse(res.Stdout)
	s.Logger.Debug("parsed spell response", map[string]interface{}{
		"invocation_id": req.ID,
		"replacements":  len(report.Replacements),
		"suggestions":   len(report.Suggestions),
	})
	return Result{Document: document, Report: report}, nil
}

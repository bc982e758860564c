// Package command implements the freeform "give me a shell command" task.
package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/doeshing/wiz/assets"
	"github.com/doeshing/wiz/internal/domain"
	"github.com/doeshing/wiz/internal/ports"
)

// Suggestion is the interpreted answer of the model.
type Suggestion struct {
	Command string
	Refused bool
}

// Service orchestrates one freeform command request.
type Service struct {
	Invoker  ports.Invoker
	Progress ports.Progress
	Stores   ports.StoreLocator
	Logger   ports.Logger
	Shell    string
}

// Run joins words into a prompt, invokes the model and interprets its output.
// The progress indicator is stopped before Run returns, error or not.
func (s *Service) Run(ctx context.Context, words []string) (Suggestion, error) {
	prompt := strings.TrimSpace(strings.Join(words, " "))
	if prompt == "" {
		return Suggestion{}, domain.ErrEmptyPrompt
	}

	path, err := s.Stores.StorePath(domain.FreeformCommand)
	if err != nil {
		return Suggestion{}, fmt.Errorf("failed to locate log store: %w", err)
	}

	req := domain.InvocationRequest{
		ID:           uuid.NewString(),
		Kind:         domain.FreeformCommand,
		SystemPrompt: assets.CommandPrompt(s.shell()),
		Payload:      prompt,
		LogStorePath: path,
	}

	s.Progress.Start()
	res, err := s.Invoker.Invoke(ctx, req)
	s.Progress.Stop()
	if err != nil {
		return Suggestion{}, err
	}

	out := Interpret(res.Stdout)
	if out.Refused {
		s.Logger.Info("model refused request", map[string]interface{}{"invocation_id": req.ID})
	}
	return out, nil
}

// Interpret applies the command protocol: the trimmed stdout is the answer.
// The refusal sentinel is passed through untouched and only flagged.
func Interpret(stdout string) Suggestion {
	cmd := strings.TrimSpace(stdout)
	return Suggestion{Command: cmd, Refused: cmd == domain.RefusalSentinel}
}

func (s *Service) shell() string {
	if s.Shell == "" {
		return domain.DefaultShell
	}
	return s.Shell
}

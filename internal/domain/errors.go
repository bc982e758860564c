package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrToolUnavailable means the external model tool could not be spawned.
	ErrToolUnavailable = errors.New("external llm tool unavailable")
	// ErrLogStoreMissing means a history or status query targeted a missing file.
	ErrLogStoreMissing = errors.New("log store does not exist")
	// ErrEmptyPrompt is returned when a freeform request carries no text.
	ErrEmptyPrompt = errors.New("a prompt is required")
)

// SubprocessError carries the stderr of an external process that exited non-zero.
type SubprocessError struct {
	ExitCode int
	Stderr   string
}

func (e *SubprocessError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("llm exited with status %d", e.ExitCode)
	}
	return msg
}

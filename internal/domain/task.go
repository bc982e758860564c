package domain

import "fmt"

// TaskKind selects the system prompt, log store and payload delivery.
type TaskKind int

const (
	// FreeformCommand turns a request into a single shell command.
	FreeformCommand TaskKind = iota
	// SpellCheck pipes a document and expects marker-delimited edits.
	SpellCheck
)

func (k TaskKind) String() string {
	switch k {
	case FreeformCommand:
		return "cmd"
	case SpellCheck:
		return "spell"
	default:
		return fmt.Sprintf("TaskKind(%d)", int(k))
	}
}

// StoreName returns the log store file dedicated to the task.
func (k TaskKind) StoreName() string {
	if k == SpellCheck {
		return SpellStoreName
	}
	return CommandStoreName
}

// PipesPayload reports whether the payload travels over stdin instead of argv.
func (k TaskKind) PipesPayload() bool {
	return k == SpellCheck
}

// InvocationRequest is everything the invoker needs for one call. Treat as immutable.
type InvocationRequest struct {
	ID           string
	Kind         TaskKind
	SystemPrompt string
	Payload      string
	LogStorePath string
}

// InvocationResult is the captured outcome of the external process.
type InvocationResult struct {
	Succeeded bool
	ExitCode  int
	Stdout    string
	Stderr    string
}

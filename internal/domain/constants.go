package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
)

// Log store file names, one per task kind.
const (
	CommandStoreName = "cmd.db"
	SpellStoreName   = "spell.db"
)

// History constants
const (
	// DefaultHistoryLimit is the number of records `cmd list` shows without an argument
	DefaultHistoryLimit = 5
)

// Progress constants
const (
	// DefaultProgressInterval is the delay between two animation frames
	DefaultProgressInterval = 80 * time.Millisecond
	// DefaultProgressGrace is how long Stop waits for the line to be cleared
	DefaultProgressGrace = 100 * time.Millisecond
)

// External tool defaults
const (
	DefaultLLMBinary = "llm"
	DefaultLLMModel  = "openrouter/anthropic/claude-sonnet-4.5"
	DefaultShell     = "fish"
)

// RefusalSentinel is what the model prints when it declines a dangerous request.
const RefusalSentinel = "REFUSE"

// Marker tokens delimiting the structured blocks of a spell-check response.
const (
	ReplacementsStart = "REPLACEMENTS_START"
	ReplacementsEnd   = "REPLACEMENTS_END"
	SuggestionsStart  = "SUGGESTIONS_START"
	SuggestionsEnd    = "SUGGESTIONS_END"
)

// NoIssuesMessage is printed when a spell-check response carries neither block.
const NoIssuesMessage = "No typos or grammar issues found."

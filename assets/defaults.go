package assets

import (
	_ "embed"
	"strings"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

//go:embed prompts/command.txt
var commandPrompt string

// SpellPrompt is the system prompt for the spell-check task.
//
//go:embed prompts/spell.txt
var SpellPrompt string

// CommandPrompt returns the command-generator system prompt for the given shell.
func CommandPrompt(shell string) string {
	return strings.ReplaceAll(commandPrompt, "{shell}", shell)
}

package domain

import (
	"fmt"
	"time"
)

// Config mirrors ~/.config/wiz/config.yaml.
type Config struct {
	LLM      LLMSettings      `yaml:"llm"`
	Command  CommandSettings  `yaml:"command"`
	History  HistorySettings  `yaml:"history"`
	Progress ProgressSettings `yaml:"progress"`
	DataDir  string           `yaml:"data_dir,omitempty"`
}

// LLMSettings describes how the external model tool is launched.
type LLMSettings struct {
	Binary    string   `yaml:"binary"`
	Model     string   `yaml:"model"`
	ExtraArgs []string `yaml:"extra_args,omitempty"`
}

// CommandSettings tunes the freeform command task.
type CommandSettings struct {
	Shell string `yaml:"shell"`
}

// HistorySettings tunes `cmd list`.
type HistorySettings struct {
	DefaultLimit int `yaml:"default_limit"`
}

// ProgressSettings toggles the terminal spinner.
type ProgressSettings struct {
	Enabled    bool `yaml:"enabled"`
	IntervalMS int  `yaml:"interval_ms"`
}

// GetHistoryLimit returns the configured list size with default fallback.
func (c *Config) GetHistoryLimit() int {
	if c.History.DefaultLimit <= 0 {
		return DefaultHistoryLimit
	}
	return c.History.DefaultLimit
}

// GetProgressInterval returns the spinner frame delay with default fallback.
func (c *Config) GetProgressInterval() time.Duration {
	if c.Progress.IntervalMS <= 0 {
		return DefaultProgressInterval
	}
	return time.Duration(c.Progress.IntervalMS) * time.Millisecond
}

// GetShell returns the shell named in the command system prompt.
func (c *Config) GetShell() string {
	if c.Command.Shell == "" {
		return DefaultShell
	}
	return c.Command.Shell
}

// Validate checks the fields the invoker cannot run without.
func (c *Config) Validate() error {
	if c.LLM.Binary == "" {
		return fmt.Errorf("llm.binary must not be empty")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model must not be empty")
	}
	if c.History.DefaultLimit < 0 {
		return fmt.Errorf("history.default_limit must not be negative, got %d", c.History.DefaultLimit)
	}
	return nil
}

package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/wiz/assets"
	"github.com/doeshing/wiz/internal/domain"
	"github.com/doeshing/wiz/internal/pkg/filesystem"
	"github.com/doeshing/wiz/internal/ports"
)

// FileLoader loads YAML configuration from ~/.config/wiz/config.yaml (overridable via WIZ_CONFIG).
// A missing file yields the embedded defaults; nothing is written back.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	cfg, err := defaultConfig()
	if err != nil {
		return domain.Config{}, err
	}

	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return domain.Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// Unmarshal over the defaults so absent keys keep their default value.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg = hydrateDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the config file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("WIZ_CONFIG"); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wiz", "config.yaml")
	}
	return filepath.Join(filesystem.UserHomeDir(), ".config", "wiz", "config.yaml")
}

func defaultConfig() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("embedded default config: %w", err)
	}
	return hydrateDefaults(cfg), nil
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.LLM.Binary == "" {
		cfg.LLM.Binary = domain.DefaultLLMBinary
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = domain.DefaultLLMModel
	}
	if cfg.Command.Shell == "" {
		cfg.Command.Shell = domain.DefaultShell
	}
	if cfg.History.DefaultLimit == 0 {
		cfg.History.DefaultLimit = domain.DefaultHistoryLimit
	}
	if cfg.Progress.IntervalMS == 0 {
		cfg.Progress.IntervalMS = int(domain.DefaultProgressInterval.Milliseconds())
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)

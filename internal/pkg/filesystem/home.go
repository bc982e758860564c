package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/doeshing/wiz/internal/domain"
)

const appDir = "wiz"

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// DataDir resolves (and creates) the directory holding the log stores.
// An explicit override wins; otherwise XDG_DATA_HOME, then ~/.local/share,
// or %APPDATA% on Windows.
func DataDir(override string) (string, error) {
	dir, err := resolveDataDir(override)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return dir, nil
}

func resolveDataDir(override string) (string, error) {
	if override != "" {
		return ExpandPath(override), nil
	}
	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA not set")
		}
		return filepath.Join(appData, appDir), nil
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir), nil
	}
	home := os.Getenv("HOME")
	if home == "" {
		return "", fmt.Errorf("HOME not set")
	}
	return filepath.Join(home, ".local", "share", appDir), nil
}

// ExpandPath resolves a leading "~/" against the home directory.
func ExpandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

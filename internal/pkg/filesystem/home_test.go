package filesystem_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/doeshing/wiz/internal/domain"
	"github.com/doeshing/wiz/internal/pkg/filesystem"
)

func TestDataDirPrefersXDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG layout is unix-only")
	}
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)

	dir, err := filesystem.DataDir("")
	if err != nil {
		t.Fatalf("DataDir() error = %v", err)
	}
	if want := filepath.Join(base, "wiz"); dir != want {
		t.Errorf("DataDir() = %s, want %s", dir, want)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("data dir not created: %v", err)
	}
}

func TestDataDirFallsBackToHome(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG layout is unix-only")
	}
	home := t.TempDir()
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", home)

	dir, err := filesystem.DataDir("")
	if err != nil {
		t.Fatalf("DataDir() error = %v", err)
	}
	if want := filepath.Join(home, ".local", "share", "wiz"); dir != want {
		t.Errorf("DataDir() = %s, want %s", dir, want)
	}
}

func TestDataDirFailsWithoutHome(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG layout is unix-only")
	}
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "")

	if _, err := filesystem.DataDir(""); err == nil {
		t.Fatal("expected error when HOME is unset")
	}
}

func TestDataDirOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom")
	dir, err := filesystem.DataDir(want)
	if err != nil {
		t.Fatalf("DataDir() error = %v", err)
	}
	if dir != want {
		t.Errorf("DataDir() = %s, want %s", dir, want)
	}
}

func TestStoreLocatorNamesStorePerTask(t *testing.T) {
	dir := t.TempDir()
	loc := filesystem.StoreLocator{Override: dir}

	cmdPath, err := loc.StorePath(domain.FreeformCommand)
	if err != nil {
		t.Fatalf("StorePath() error = %v", err)
	}
	spellPath, err := loc.StorePath(domain.SpellCheck)
	if err != nil {
		t.Fatalf("StorePath() error = %v", err)
	}
	if cmdPath != filepath.Join(dir, "cmd.db") {
		t.Errorf("cmd store = %s", cmdPath)
	}
	if spellPath != filepath.Join(dir, "spell.db") {
		t.Errorf("spell store = %s", spellPath)
	}
}

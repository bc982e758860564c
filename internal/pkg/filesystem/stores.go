package filesystem

import (
	"path/filepath"

	"github.com/doeshing/wiz/internal/domain"
)

// StoreLocator places each task's log store inside the data directory.
// The directory is resolved on first use so commands that never touch a
// store (help, for instance) work without HOME.
type StoreLocator struct {
	Override string
}

// StorePath implements ports.StoreLocator.
func (l StoreLocator) StorePath(kind domain.TaskKind) (string, error) {
	dir, err := DataDir(l.Override)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, kind.StoreName()), nil
}

// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core never talks to os/exec, SQLite or the terminal directly.
// It goes through the interfaces below, and the infrastructure layer supplies
// the adapters:
//   - Invoker: the external model-invocation subprocess
//   - LogStore: the external tool's SQLite log database (read-only)
//   - Progress: the terminal spinner shown while the subprocess runs
package ports

import (
	"context"

	"github.com/doeshing/wiz/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.config/wiz/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Invoker runs the external model tool once for a request.
// A non-zero exit is reported through the result and a *domain.SubprocessError;
// a spawn failure wraps domain.ErrToolUnavailable.
type Invoker interface {
	Invoke(context.Context, domain.InvocationRequest) (domain.InvocationResult, error)
}

// LogStore reads the history written by the external tool.
type LogStore interface {
	Recent(ctx context.Context, path string, limit int) ([]domain.HistoryRecord, error)
	Status(ctx context.Context, path string) (domain.StoreStatus, error)
}

// Progress is a display-only indicator; it must never fail the caller.
type Progress interface {
	Start()
	Stop()
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}

// StoreLocator maps a task kind to its log store file.
type StoreLocator interface {
	StorePath(domain.TaskKind) (string, error)
}

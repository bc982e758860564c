// Package logs reports on the log stores the llm tool writes for each task.
package logs

import (
	"context"
	"fmt"

	"github.com/doeshing/wiz/internal/domain"
	"github.com/doeshing/wiz/internal/ports"
)

// Service serves `cmd list` and the `status` subcommands.
type Service struct {
	Store        ports.LogStore
	Stores       ports.StoreLocator
	Logger       ports.Logger
	DefaultLimit int
}

// History returns the newest records of the task's store. A non-positive
// limit falls back to the configured default.
func (s *Service) History(ctx context.Context, kind domain.TaskKind, limit int) ([]domain.HistoryRecord, error) {
	if limit <= 0 {
		limit = s.defaultLimit()
	}
	path, err := s.Stores.StorePath(kind)
	if err != nil {
		return nil, fmt.Errorf("failed to locate log store: %w", err)
	}
	s.Logger.Debug("reading history", map[string]interface{}{"path": path, "limit": limit})
	return s.Store.Recent(ctx, path, limit)
}

// Status summarises the task's store.
func (s *Service) Status(ctx context.Context, kind domain.TaskKind) (domain.StoreStatus, error) {
	path, err := s.Stores.StorePath(kind)
	if err != nil {
		return domain.StoreStatus{}, fmt.Errorf("failed to locate log store: %w", err)
	}
	return s.Store.Status(ctx, path)
}

func (s *Service) defaultLimit() int {
	if s.DefaultLimit <= 0 {
		return domain.DefaultHistoryLimit
	}
	return s.DefaultLimit
}

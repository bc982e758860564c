package logs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/doeshing/wiz/internal/application/logs"
	"github.com/doeshing/wiz/internal/domain"
	"github.com/doeshing/wiz/internal/pkg/logger"
)

func TestHistoryLimitFallback(t *testing.T) {
	tests := []struct {
		name         string
		limit        int
		defaultLimit int
		want         int
	}{
		{name: "explicit", limit: 3, defaultLimit: 7, want: 3},
		{name: "configured default", limit: 0, defaultLimit: 7, want: 7},
		{name: "built-in default", limit: -1, want: domain.DefaultHistoryLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{}
			svc := &logs.Service{Store: store, Stores: stubStores{}, Logger: logger.NewNop(), DefaultLimit: tt.defaultLimit}

			if _, err := svc.History(context.Background(), domain.FreeformCommand, tt.limit); err != nil {
				t.Fatalf("History() error = %v", err)
			}
			if store.limit != tt.want {
				t.Errorf("limit = %d, want %d", store.limit, tt.want)
			}
			if store.path != "/data/cmd.db" {
				t.Errorf("path = %s", store.path)
			}
		})
	}
}

func TestStatusUsesTaskStore(t *testing.T) {
	store := &stubStore{}
	svc := &logs.Service{Store: store, Stores: stubStores{}, Logger: logger.NewNop()}

	status, err := svc.Status(context.Background(), domain.SpellCheck)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if status.Path != "/data/spell.db" {
		t.Errorf("status path = %s", status.Path)
	}
}

func TestStatusPropagatesMissingStore(t *testing.T) {
	store := &stubStore{err: domain.ErrLogStoreMissing}
	svc := &logs.Service{Store: store, Stores: stubStores{}, Logger: logger.NewNop()}

	if _, err := svc.Status(context.Background(), domain.FreeformCommand); !errors.Is(err, domain.ErrLogStoreMissing) {
		t.Fatalf("Status() error = %v, want ErrLogStoreMissing", err)
	}
}

type stubStore struct {
	path  string
	limit int
	err   error
}

func (s *stubStore) Recent(_ context.Context, path string, limit int) ([]domain.HistoryRecord, error) {
	s.path, s.limit = path, limit
	return nil, s.err
}

func (s *stubStore) Status(_ context.Context, path string) (domain.StoreStatus, error) {
	s.path = path
	if s.err != nil {
		return domain.StoreStatus{}, s.err
	}
	return domain.StoreStatus{Path: path}, nil
}

type stubStores struct{}

func (stubStores) StorePath(kind domain.TaskKind) (string, error) {
	return "/data/" + kind.StoreName(), nil
}

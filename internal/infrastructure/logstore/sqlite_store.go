package logstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/wiz/internal/domain"
	"github.com/doeshing/wiz/internal/ports"
)

// timestampLayouts covers what the llm tool writes into datetime_utc.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
	time.RFC3339Nano,
}

// SQLiteStore reads the llm tool's log database. It never writes.
type SQLiteStore struct{}

// NewSQLiteStore creates a reader.
func NewSQLiteStore() *SQLiteStore {
	return &SQLiteStore{}
}

// Recent returns the newest limit rows of the responses table.
func (s *SQLiteStore) Recent(ctx context.Context, path string, limit int) ([]domain.HistoryRecord, error) {
	db, err := openReadOnly(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT prompt, response, token_details, model, datetime_utc FROM responses
		ORDER BY datetime_utc DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses in %s: %w", path, err)
	}
	defer rows.Close()

	var records []domain.HistoryRecord
	for rows.Next() {
		var prompt, response, details, model, ts sql.NullString
		if err := rows.Scan(&prompt, &response, &details, &model, &ts); err != nil {
			return nil, fmt.Errorf("failed to read response row: %w", err)
		}
		records = append(records, domain.HistoryRecord{
			Prompt:       prompt.String,
			Response:     response.String,
			TokenDetails: details.String,
			Model:        model.String,
			Timestamp:    parseTimestamp(ts.String),
		})
	}
	return records, rows.Err()
}

// Status reports row counts and size. Count failures (missing table, corrupt
// file) read as zero.
func (s *SQLiteStore) Status(ctx context.Context, path string) (domain.StoreStatus, error) {
	info, err := stat(path)
	if err != nil {
		return domain.StoreStatus{}, err
	}
	db, err := openReadOnly(path)
	if err != nil {
		return domain.StoreStatus{}, err
	}
	defer db.Close()

	return domain.StoreStatus{
		Path:          path,
		Conversations: count(ctx, db, "conversations"),
		Responses:     count(ctx, db, "responses"),
		SizeBytes:     info.Size(),
	}, nil
}

func count(ctx context.Context, db *sql.DB, table string) int64 {
	var n int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0
	}
	return n
}

func stat(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrLogStoreMissing, path)
	}
	if err != nil {
		return nil, err
	}
	return info, nil
}

func openReadOnly(path string) (*sql.DB, error) {
	if _, err := stat(path); err != nil {
		return nil, err
	}
	dsn := (&url.URL{Scheme: "file", Path: path, RawQuery: "mode=ro"}).String()
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open log store %s: %w", path, err)
	}
	return db, nil
}

func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

var _ ports.LogStore = (*SQLiteStore)(nil)

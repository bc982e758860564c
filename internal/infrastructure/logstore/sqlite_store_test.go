package logstore_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/doeshing/wiz/internal/domain"
	"github.com/doeshing/wiz/internal/infrastructure/logstore"
)

// seedStore creates a database shaped like the llm tool's logs.db.
func seedStore(t *testing.T, withConversations bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cmd.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE responses (
		id TEXT PRIMARY KEY,
		model TEXT,
		prompt TEXT,
		system TEXT,
		response TEXT,
		token_details TEXT,
		datetime_utc TEXT
	)`)
	require.NoError(t, err)

	rows := []struct {
		id, model, prompt, response, details, ts string
	}{
		{"a", "m1", "list files", "ls", `{"cost":0.000100,"prompt_tokens":10}`, "2025-01-01T10:00:00.000001"},
		{"b", "m1", "disk usage", "du -sh .", `{"cost":0.002500}`, "2025-01-03T10:00:00.000001"},
		{"c", "m2", "delete all", "REFUSE", `{"prompt_tokens":3}`, "2025-01-02T10:00:00.000001"},
	}
	for _, r := range rows {
		_, err := db.Exec(`INSERT INTO responses (id, model, prompt, response, token_details, datetime_utc) VALUES (?, ?, ?, ?, ?, ?)`,
			r.id, r.model, r.prompt, r.response, r.details, r.ts)
		require.NoError(t, err)
	}
	_, err = db.Exec(`INSERT INTO responses (id, model, prompt, response) VALUES ('d', 'm3', 'old', 'x')`)
	require.NoError(t, err)

	if withConversations {
		_, err = db.Exec(`CREATE TABLE conversations (id TEXT PRIMARY KEY, name TEXT, model TEXT)`)
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO conversations (id, name, model) VALUES ('c1', 'one', 'm1'), ('c2', 'two', 'm1')`)
		require.NoError(t, err)
	}
	return path
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	path := seedStore(t, true)
	store := logstore.NewSQLiteStore()

	records, err := store.Recent(context.Background(), path, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Equal(t, "disk usage", records[0].Prompt)
	require.Equal(t, "du -sh .", records[0].Response)
	require.InDelta(t, 0.0025, records[0].Cost(), 1e-12)
	require.Equal(t, 2025, records[0].Timestamp.Year())

	require.Equal(t, "delete all", records[1].Prompt)
	require.Equal(t, "m2", records[1].Model)
	require.Zero(t, records[1].Cost())
}

func TestRecentToleratesNullColumns(t *testing.T) {
	path := seedStore(t, false)

	records, err := logstore.NewSQLiteStore().Recent(context.Background(), path, 10)
	require.NoError(t, err)
	require.Len(t, records, 4)

	last := records[len(records)-1]
	require.Equal(t, "old", last.Prompt)
	require.Empty(t, last.TokenDetails)
	require.True(t, last.Timestamp.IsZero())
}

func TestRecentMissingStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.db")

	_, err := logstore.NewSQLiteStore().Recent(context.Background(), path, 5)
	require.ErrorIs(t, err, domain.ErrLogStoreMissing)
	require.Contains(t, err.Error(), path)
}

func TestStatusCountsRows(t *testing.T) {
	path := seedStore(t, true)

	status, err := logstore.NewSQLiteStore().Status(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, path, status.Path)
	require.EqualValues(t, 2, status.Conversations)
	require.EqualValues(t, 4, status.Responses)
	require.Positive(t, status.SizeBytes)
}

func TestStatusMissingTableCountsZero(t *testing.T) {
	path := seedStore(t, false)

	status, err := logstore.NewSQLiteStore().Status(context.Background(), path)
	require.NoError(t, err)
	require.Zero(t, status.Conversations)
	require.EqualValues(t, 4, status.Responses)
}

func TestStatusMissingStore(t *testing.T) {
	_, err := logstore.NewSQLiteStore().Status(context.Background(), filepath.Join(t.TempDir(), "nope.db"))
	require.ErrorIs(t, err, domain.ErrLogStoreMissing)
}

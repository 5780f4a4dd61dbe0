package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/phonebook/internal/config"
	"github.com/thenoetrevino/phonebook/internal/logging"
)

// ============================================================================
// Local Test Helpers (to avoid import cycle with testutil)
// ============================================================================

// setupTestProvider returns a provider for a fresh file-backed SQLite store.
// A file is required because every operation opens its own connection.
func setupTestProvider(t *testing.T) (*Provider, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "phonebook.db")
	p := NewProvider(config.DatabaseConfig{Driver: config.DriverSQLite, Path: path}, logging.Discard())

	require.NoError(t, EnsureSchema(context.Background(), p))
	return p, path
}

// openRaw opens an independent handle for assertions and fixtures
func openRaw(t *testing.T, path string) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

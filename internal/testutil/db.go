package testutil

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/phonebook/internal/config"
	"github.com/thenoetrevino/phonebook/internal/database"
	"github.com/thenoetrevino/phonebook/internal/logging"

	_ "modernc.org/sqlite"
)

// TestDBConfig returns a SQLite configuration for a fresh file under t.TempDir().
// A file is required because every operation opens its own connection.
func TestDBConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "phonebook.db"),
	}
}

// SetupTestProvider creates a provider for a fresh store with the full schema
func SetupTestProvider(t *testing.T) (*database.Provider, config.DatabaseConfig) {
	t.Helper()

	cfg := TestDBConfig(t)
	p := database.NewProvider(cfg, logging.Discard())
	if err := database.EnsureSchema(context.Background(), p); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return p, cfg
}

// OpenRaw opens an independent handle on the test store for fixtures and assertions
func OpenRaw(t *testing.T, cfg config.DatabaseConfig) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", cfg.Path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// WriteFile writes content to name under t.TempDir() and returns the path
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/phonebook/internal/models"
)

func clearDBEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PHONEBOOK_DB_DRIVER", "PHONEBOOK_DB_HOST", "PHONEBOOK_DB_PORT", "PHONEBOOK_DB_NAME",
		"PHONEBOOK_DB_USER", "PHONEBOOK_DB_PASSWORD", "PHONEBOOK_DB_PATH", "PHONEBOOK_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultDatabaseConfig(), cfg.Database)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
}

func TestLoadConfigWithFile(t *testing.T) {
	clearDBEnv(t)
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "phonebook")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	configContent := `database:
  host: db.internal
  name: contacts
  connect_timeout: 3s
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "contacts", cfg.Database.Name)
	assert.Equal(t, 3*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Unspecified values should use defaults
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PHONEBOOK_DB_DRIVER", "sqlite")
	t.Setenv("PHONEBOOK_DB_PATH", "/tmp/phonebook.db")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/phonebook.db", cfg.Database.Path)
}

func TestLoadConfigInvalid(t *testing.T) {
	clearDBEnv(t)

	t.Run("unknown driver", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("database:\n  driver: oracle\n"), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("sqlite without path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("database:\n  driver: sqlite\n"), 0o644))

		_, err := Load(path)
		assert.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("malformed port override", func(t *testing.T) {
		t.Setenv("PHONEBOOK_DB_PORT", "54x2")
		path := filepath.Join(t.TempDir(), "config.yaml")

		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, models.ErrValidation))
		assert.Contains(t, err.Error(), "PHONEBOOK_DB_PORT")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("database: [unclosed"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	clearDBEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Database.Name = "saved"
	require.NoError(t, cfg.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	cfg2, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "saved", cfg2.Database.Name)
	assert.Equal(t, cfg.Database.Password, cfg2.Database.Password)
}

func TestDSN(t *testing.T) {
	t.Run("postgres", func(t *testing.T) {
		d := DefaultDatabaseConfig()
		assert.Equal(t, "host=localhost port=5432 user=postgres password=123456789 dbname=lab10 sslmode=disable", d.DSN())
	})

	t.Run("postgres quotes values with spaces", func(t *testing.T) {
		d := DefaultDatabaseConfig()
		d.Password = "it's secret"
		d.ConnectTimeout = 2 * time.Second
		dsn := d.DSN()
		assert.Contains(t, dsn, `password='it\'s secret'`)
		assert.True(t, strings.HasSuffix(dsn, "connect_timeout=2"))
	})

	t.Run("sub-second timeout rounds up", func(t *testing.T) {
		tests := []struct {
			timeout time.Duration
			want    string
		}{
			{500 * time.Millisecond, "connect_timeout=1"},
			{1500 * time.Millisecond, "connect_timeout=2"},
			{3 * time.Second, "connect_timeout=3"},
		}
		for _, tt := range tests {
			d := DefaultDatabaseConfig()
			d.ConnectTimeout = tt.timeout
			assert.True(t, strings.HasSuffix(d.DSN(), tt.want), tt.timeout.String())
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		d := DatabaseConfig{Driver: DriverSQLite, Path: "/data/pb.db"}
		assert.True(t, strings.HasPrefix(d.DSN(), "/data/pb.db?"))
		assert.Contains(t, d.DSN(), "foreign_keys(1)")
	})
}

func TestRedacted(t *testing.T) {
	d := DefaultDatabaseConfig()
	assert.Equal(t, "postgres://postgres@localhost:5432/lab10", d.Redacted())
	assert.NotContains(t, d.Redacted(), d.Password)
}

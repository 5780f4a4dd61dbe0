package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/phonebook/internal/app"
	"github.com/thenoetrevino/phonebook/internal/config"
	"github.com/thenoetrevino/phonebook/internal/logging"
	"github.com/thenoetrevino/phonebook/internal/models"
	"github.com/thenoetrevino/phonebook/internal/testutil"
)

func TestGetCLIFromContextUsesInjectedApp(t *testing.T) {
	p, _ := testutil.SetupTestProvider(t)
	a := app.New(p, app.WithLogger(logging.Discard()))

	c, err := GetCLIFromContext(WithApp(context.Background(), a), "/does/not/matter.yaml")
	require.NoError(t, err)
	assert.Same(t, a, c.App)
	assert.Nil(t, c.Config)
	assert.NoError(t, c.Close())
}

func TestNewCLI(t *testing.T) {
	t.Run("loads the config file", func(t *testing.T) {
		dir := t.TempDir()
		cfgPath := testutil.WriteFile(t, "config.yaml", `
database:
  driver: sqlite
  path: `+filepath.Join(dir, "phonebook.db")+`
log:
  path: `+filepath.Join(dir, "phonebook.log")+`
  level: debug
`)

		c, err := NewCLI(context.Background(), cfgPath)
		require.NoError(t, err)
		defer func() { assert.NoError(t, c.Close()) }()

		assert.Equal(t, config.DriverSQLite, c.Config.Database.Driver)
		assert.Equal(t, config.DriverSQLite, c.App.Provider().Dialect())
		assert.FileExists(t, filepath.Join(dir, "phonebook.log"))
	})

	t.Run("invalid driver is a validation error", func(t *testing.T) {
		cfgPath := testutil.WriteFile(t, "config.yaml", "database:\n  driver: oracle\n")

		_, err := NewCLI(context.Background(), cfgPath)
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrValidation)
		assert.Equal(t, ExitValidation, ExitCodeFor(err))
	})
}

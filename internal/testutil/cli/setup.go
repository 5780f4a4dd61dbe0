// Package cli holds helpers for command tests. It is separate from testutil
// so that service tests importing testutil do not pull in the cli package.
package cli

import (
	"testing"

	"github.com/thenoetrevino/phonebook/internal/app"
	"github.com/thenoetrevino/phonebook/internal/config"
	"github.com/thenoetrevino/phonebook/internal/logging"
	"github.com/thenoetrevino/phonebook/internal/testutil"
)

// SetupCLITest creates a file-backed store with the full schema and an App on top of it.
// The returned config can be used with testutil.OpenRaw for assertions.
func SetupCLITest(t *testing.T) (*app.App, config.DatabaseConfig) {
	t.Helper()

	provider, cfg := testutil.SetupTestProvider(t)
	return app.New(provider, app.WithLogger(logging.Discard())), cfg
}

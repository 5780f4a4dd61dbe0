package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/phonebook/internal/logging"
	"github.com/thenoetrevino/phonebook/internal/testutil"
)

func TestNew(t *testing.T) {
	p, _ := testutil.SetupTestProvider(t)
	logger := logging.Discard()

	app := New(p, WithLogger(logger))
	require.NotNil(t, app)

	assert.NotNil(t, app.ContactService)
	assert.NotNil(t, app.GameService)
	assert.Same(t, p, app.Provider())
	assert.Same(t, logger, app.Logger())
}

func TestServicesShareTheStore(t *testing.T) {
	ctx := context.Background()
	p, cfg := testutil.SetupTestProvider(t)
	app := New(p, WithLogger(logging.Discard()))

	require.NoError(t, app.ContactService.AddContact(ctx, "Alice", "555-1000"))
	_, _, err := app.GameService.GetOrCreateUser(ctx, "bob")
	require.NoError(t, err)

	db := testutil.OpenRaw(t, cfg)
	assert.Equal(t, 1, testutil.CountRows(t, db, "phonebook"))
	assert.Equal(t, 1, testutil.CountRows(t, db, "users"))
}

func TestClose(t *testing.T) {
	p, _ := testutil.SetupTestProvider(t)
	assert.NoError(t, New(p).Close())
}

package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/phonebook/internal/app"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/testutil"
)

// ExecuteCLICommand executes a command against testApp and captures stdout.
// The app is injected through the command context, so no config file is read.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	cmd.SetContext(cli.WithApp(context.Background(), testApp))
	return testutil.ExecuteCommand(t, cmd, args...)
}

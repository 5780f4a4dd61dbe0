package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// ConfigPath returns the --config flag value, or "" when the command was
// built without the root command's persistent flags
func ConfigPath(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return ""
	}
	return path
}

// Formatter builds an OutputFormatter from the --json and --quiet flags
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// AddOutputFlags registers the agent-friendly output flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}

// Suggestion returns a follow-up hint for an error kind
func Suggestion(err error) string {
	switch {
	case errors.Is(err, models.ErrConnection):
		return "check the database section of your config file or PHONEBOOK_DB_* variables"
	case errors.Is(err, models.ErrMalformedRow):
		return "every row after the header needs a name and a phone"
	case errors.Is(err, models.ErrIO):
		return "check that the file exists and is readable"
	case errors.Is(err, models.ErrUserNotFound):
		return "run 'phonebook game user' without --lookup to register the name"
	default:
		return ""
	}
}

// RunWithCLI resolves the CLI for cmd, runs fn with it and closes it afterwards
func RunWithCLI(cmd *cobra.Command, fn func(ctx context.Context, c *CLI, f *OutputFormatter) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := Formatter(cmd)

	cliInstance, err := GetCLIFromContext(ctx, ConfigPath(cmd))
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	return fn(ctx, cliInstance, formatter)
}

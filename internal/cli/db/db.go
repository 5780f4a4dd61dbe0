// Package db holds the cli commands that manage the store itself
//
// e.g., phonebook db ...
package db

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/database"
)

// DBCmd returns the db parent command
func DBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the phonebook store",
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(PingCmd())

	return cmd
}

// InitCmd returns the db init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the phonebook, users and user_scores tables",
		Long: `Create any missing tables in the configured store.
Existing tables and their rows are left untouched, so running it twice is safe.`,
		RunE: runInit,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		provider := c.App.Provider()
		if err := database.EnsureSchema(ctx, provider); err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			return nil
		}
		if f.JSON {
			return f.JSONSuccess("driver", provider.Dialect())
		}

		fmt.Printf("✓ Schema ready (%s)\n", provider.Dialect())
		return nil
	})
}

// PingCmd returns the db ping subcommand
func PingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check that the store is reachable",
		RunE:  runPing,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runPing(cmd *cobra.Command, args []string) error {
	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		provider := c.App.Provider()
		if err := provider.Ping(ctx); err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			return nil
		}
		if f.JSON {
			return f.JSONSuccess("driver", provider.Dialect())
		}

		fmt.Printf("✓ Connected (%s)\n", provider.Dialect())
		return nil
	})
}

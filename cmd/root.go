package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/contact"
	"github.com/thenoetrevino/phonebook/internal/cli/db"
	"github.com/thenoetrevino/phonebook/internal/cli/game"
	"github.com/thenoetrevino/phonebook/internal/menu"
)

// NewRootCmd builds the phonebook command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phonebook",
		Short: "PhoneBook - a console phonebook with a game score ledger",
		Long: `PhoneBook manages contacts and game scores in a relational store.

Run without arguments for the interactive menu, or use the subcommands
for scripting.`,
		RunE:          runMenu,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/phonebook/config.yaml)")
	rootCmd.Flags().Bool("plain", false, "Read menu answers line by line instead of interactive forms")

	rootCmd.AddCommand(contact.ContactCmd())
	rootCmd.AddCommand(game.GameCmd())
	rootCmd.AddCommand(db.DBCmd())

	return rootCmd
}

func runMenu(cmd *cobra.Command, args []string) error {
	plain, _ := cmd.Flags().GetBool("plain")
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()

	var prompter menu.Prompter
	if plain || !isTerminal(in) {
		prompter = menu.NewLinePrompter(in, out)
	} else {
		prompter = &menu.HuhPrompter{In: in, Out: out}
	}

	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		if err := menu.New(c.App, prompter, out).Run(ctx); err != nil {
			return f.Fail(err)
		}
		return nil
	})
}

// isTerminal reports whether r is a terminal file
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Execute runs the command tree until it finishes or the process is interrupted.
// Errors reported by commands carry their exit code; anything else is a usage error.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var cmdErr *cli.CommandError
	if errors.As(err, &cmdErr) {
		return err
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	fmt.Fprintln(os.Stderr, "Run 'phonebook --help' for usage.")
	return &cli.CommandError{Code: cli.ExitUsage, Err: err}
}

// Package game holds all cli commands related to the game ledger
//
// e.g., phonebook game ...
package game

import (
	"github.com/spf13/cobra"
)

// GameCmd returns the game parent command
func GameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Manage game users and scores",
	}

	cmd.AddCommand(UserCmd())
	cmd.AddCommand(ScoreCmd())
	cmd.AddCommand(PlayCmd())
	cmd.AddCommand(ScoresCmd())

	return cmd
}

package game

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/styles"
	"github.com/thenoetrevino/phonebook/internal/models"
)

// ScoresCmd returns the game scores subcommand
func ScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "List the scores of a user id",
		RunE:  runScores,
	}

	cmd.Flags().Int64("user-id", 0, "Game user id (required)")
	if err := cmd.MarkFlagRequired("user-id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runScores(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetInt64("user-id")

	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		entries, err := c.App.GameService.GetScores(ctx, userID)
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			for _, e := range entries {
				fmt.Printf("%d,%d\n", e.Score, e.Level)
			}
			return nil
		}
		if f.JSON {
			if entries == nil {
				entries = []models.ScoreEntry{}
			}
			return f.JSONSuccess("scores", entries)
		}

		if len(entries) == 0 {
			fmt.Println("No scores recorded")
			return nil
		}

		fmt.Printf("Found %d scores:\n\n", len(entries))
		for _, e := range entries {
			fmt.Printf("  %s %s  %s %s\n",
				styles.LabelStyle.Render("score"), styles.ValueStyle.Render(fmt.Sprint(e.Score)),
				styles.LabelStyle.Render("level"), styles.ValueStyle.Render(fmt.Sprint(e.Level)))
		}
		return nil
	})
}

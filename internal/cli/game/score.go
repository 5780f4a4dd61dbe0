package game

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/phonebook/internal/cli"
	gameservice "github.com/thenoetrevino/phonebook/internal/services/game"
)

// ScoreCmd returns the game score subcommand
func ScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Record a score for a user id",
		Long: `Append one session result to the ledger.

Examples:
  phonebook game score --user-id=1 --score=120 --level=3
`,
		RunE: runScore,
	}

	cmd.Flags().Int64("user-id", 0, "Game user id (required)")
	cmd.Flags().String("score", "", "Score reached (required)")
	cmd.Flags().String("level", "", "Level reached (required)")
	for _, flag := range []string{"user-id", "score", "level"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// scoreFlags parses --score and --level as whole numbers
func scoreFlags(cmd *cobra.Command) (int, int, error) {
	score, _ := cmd.Flags().GetString("score")
	level, _ := cmd.Flags().GetString("level")
	return gameservice.ParseScore(score, level)
}

func runScore(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetInt64("user-id")

	score, level, err := scoreFlags(cmd)
	if err != nil {
		return cli.Formatter(cmd).Fail(err)
	}

	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		if err := c.App.GameService.SaveScore(ctx, userID, score, level); err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			return nil
		}
		if f.JSON {
			return f.JSONSuccess("score", map[string]interface{}{
				"user_id": userID,
				"score":   score,
				"level":   level,
			})
		}

		fmt.Println("✓ Score saved")
		return nil
	})
}

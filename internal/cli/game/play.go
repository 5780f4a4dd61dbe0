package game

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/phonebook/internal/cli"
)

// PlayCmd returns the game play subcommand
func PlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Resolve a player and record one session",
		Long: `Find or create the player, then append the session result.

Examples:
  phonebook game play --score=120 --level=3
  phonebook game play --name="alice" --score=80 --level=2 --json
`,
		RunE: runPlay,
	}

	cmd.Flags().String("name", "", "Username (defaults to the current OS user)")
	cmd.Flags().String("score", "", "Score reached (required)")
	cmd.Flags().String("level", "", "Level reached (required)")
	for _, flag := range []string{"score", "level"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	username := usernameFlag(cmd)

	score, level, err := scoreFlags(cmd)
	if err != nil {
		return cli.Formatter(cmd).Fail(err)
	}

	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		id, created, err := c.App.GameService.GetOrCreateUser(ctx, username)
		if err != nil {
			return f.Fail(err)
		}
		if err := c.App.GameService.SaveScore(ctx, id, score, level); err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			fmt.Printf("%d\n", id)
			return nil
		}
		if f.JSON {
			return f.JSONSuccess("session", map[string]interface{}{
				"user_id":  id,
				"username": username,
				"created":  created,
				"score":    score,
				"level":    level,
			})
		}

		if created {
			fmt.Printf("User '%s' created with ID %d\n", username, id)
		} else {
			fmt.Printf("Welcome back, %s!\n", username)
		}
		fmt.Println("✓ Score saved")
		return nil
	})
}

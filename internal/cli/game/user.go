package game

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/models"
	"github.com/thenoetrevino/phonebook/internal/user"
)

// UserCmd returns the game user subcommand
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Find or create a game user",
		Long: `Resolve a username to its id, registering it on first use.

The name defaults to the current OS user.

Examples:
  phonebook game user
  phonebook game user --name="alice" --quiet

  # Fail instead of registering an unknown name
  phonebook game user --name="alice" --lookup
`,
		RunE: runUser,
	}

	cmd.Flags().String("name", "", "Username (defaults to the current OS user)")
	cmd.Flags().Bool("lookup", false, "Only look the user up; exit 3 if it does not exist")

	cli.AddOutputFlags(cmd)

	return cmd
}

// usernameFlag returns --name, falling back to the OS user when unset
func usernameFlag(cmd *cobra.Command) string {
	name, _ := cmd.Flags().GetString("name")
	if !cmd.Flags().Changed("name") {
		return user.GetCurrentUsername()
	}
	return name
}

func runUser(cmd *cobra.Command, args []string) error {
	username := usernameFlag(cmd)
	lookup, _ := cmd.Flags().GetBool("lookup")

	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		var (
			u       = models.GameUser{Username: username}
			created bool
			err     error
		)
		if lookup {
			u, err = c.App.GameService.LookupUser(ctx, username)
		} else {
			u.ID, created, err = c.App.GameService.GetOrCreateUser(ctx, username)
		}
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			fmt.Printf("%d\n", u.ID)
			return nil
		}
		if f.JSON {
			return f.JSONFields(map[string]interface{}{
				"user":    u,
				"created": created,
			})
		}

		if created {
			fmt.Printf("✓ User '%s' created with ID %d\n", u.Username, u.ID)
		} else {
			fmt.Printf("User '%s' has ID %d\n", u.Username, u.ID)
		}
		return nil
	})
}

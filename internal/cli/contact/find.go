package contact

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/phonebook/internal/cli"
)

// FindCmd returns the contact find subcommand
func FindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find contacts by exact name",
		Long: `List every contact whose name matches exactly.

Examples:
  phonebook contact find --name="Alice"
  phonebook contact find --name="Alice" --json
`,
		RunE: runFind,
	}

	cmd.Flags().String("name", "", "Contact name to match (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runFind(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")

	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		contacts, err := c.App.ContactService.FindByName(ctx, name)
		if err != nil {
			return f.Fail(err)
		}
		return printContacts(f, contacts, "No contact found with that name")
	})
}

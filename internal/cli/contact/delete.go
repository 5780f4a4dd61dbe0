package contact

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/phonebook/internal/cli"
)

// DeleteCmd returns the contact delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete every contact with a name",
		Long: `Delete every contact whose name matches exactly.
Matching no contacts is not an error.

Examples:
  phonebook contact delete --name="Alice"
`,
		RunE: runDelete,
	}

	cmd.Flags().String("name", "", "Contact name to delete (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")

	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		n, err := c.App.ContactService.DeleteByName(ctx, name)
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			fmt.Printf("%d\n", n)
			return nil
		}
		if f.JSON {
			return f.JSONSuccess("deleted", n)
		}

		fmt.Printf("✓ Deleted %d contact(s) named '%s'\n", n, name)
		return nil
	})
}

package contact

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/phonebook/internal/cli"
)

// UpdateCmd returns the contact update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change the phone of every contact with a name",
		Long: `Set a new phone number on every contact whose name matches exactly.
Matching no contacts is not an error.

Examples:
  phonebook contact update --name="Alice" --phone="555-2000"
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("name", "", "Contact name to match (required)")
	cmd.Flags().String("phone", "", "New phone number (required)")
	for _, flag := range []string{"name", "phone"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	phone, _ := cmd.Flags().GetString("phone")

	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		n, err := c.App.ContactService.UpdatePhone(ctx, name, phone)
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			fmt.Printf("%d\n", n)
			return nil
		}
		if f.JSON {
			return f.JSONSuccess("updated", n)
		}

		fmt.Printf("✓ Updated %d contact(s) named '%s'\n", n, name)
		return nil
	})
}

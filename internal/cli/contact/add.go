package contact

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/models"
)

// AddCmd returns the contact add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contact",
		Long: `Add a single contact.

Examples:
  phonebook contact add --name="Alice" --phone="555-1000"

  # JSON output for scripts
  phonebook contact add --name="Alice" --phone="555-1000" --json
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("name", "", "Contact name (required)")
	cmd.Flags().String("phone", "", "Phone number (required)")
	for _, flag := range []string{"name", "phone"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	phone, _ := cmd.Flags().GetString("phone")

	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		if err := c.App.ContactService.AddContact(ctx, name, phone); err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			return nil
		}
		if f.JSON {
			return f.JSONSuccess("contact", models.Contact{Name: name, Phone: phone})
		}

		fmt.Printf("✓ Contact '%s' added\n", name)
		return nil
	})
}

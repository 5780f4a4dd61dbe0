package contact

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/styles"
	"github.com/thenoetrevino/phonebook/internal/models"
)

const tableWidth = 80

// ListCmd returns the contact list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all contacts",
		Long:  "List every contact in the phonebook in store order.",
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		contacts, err := c.App.ContactService.ListContacts(ctx)
		if err != nil {
			return f.Fail(err)
		}
		return printContacts(f, contacts, "The phonebook is empty")
	})
}

// printContacts writes contacts in the formatter's mode. Quiet mode prints
// name,phone lines.
func printContacts(f *cli.OutputFormatter, contacts []models.Contact, emptyMessage string) error {
	if f.Quiet {
		for _, c := range contacts {
			fmt.Printf("%s,%s\n", c.Name, c.Phone)
		}
		return nil
	}

	if f.JSON {
		if contacts == nil {
			contacts = []models.Contact{}
		}
		return f.JSONSuccess("contacts", contacts)
	}

	if len(contacts) == 0 {
		fmt.Println(emptyMessage)
		return nil
	}

	fmt.Printf("Found %d contacts:\n\n", len(contacts))
	fmt.Println(styles.RenderContactTable(contacts, tableWidth))
	return nil
}

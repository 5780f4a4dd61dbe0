package contact

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/phonebook/internal/cli"
)

// ImportCmd returns the contact import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import contacts from a CSV file",
		Long: `Import contacts from a comma-separated file.

The first row is a header and is skipped. Every following row needs at least
two fields: name, phone. Nothing is imported if any row fails.

Examples:
  phonebook contact import contacts.csv

  # Print only the number of imported rows
  phonebook contact import contacts.csv --quiet
`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	return cli.RunWithCLI(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		n, err := c.App.ContactService.ImportFile(ctx, path)
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			fmt.Printf("%d\n", n)
			return nil
		}
		if f.JSON {
			return f.JSONSuccess("imported", n)
		}

		fmt.Printf("✓ Imported %d contacts from %s\n", n, path)
		return nil
	})
}

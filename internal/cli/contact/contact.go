// Package contact holds all cli commands related to the phonebook
//
// e.g., phonebook contact ...
package contact

import (
	"github.com/spf13/cobra"
)

// ContactCmd returns the contact parent command
func ContactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Manage phonebook contacts",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ImportCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(FindCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

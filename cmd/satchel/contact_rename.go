// Contact rename command re-keys a record under a new name.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dovetail-labs/satchel/pkg/types"
)

var contactRenameCmd = &cobra.Command{
	Use:   "rename OLD_NAME NEW_NAME",
	Short: "Rename a contact",
	Long: `Rename changes a contact's name and re-keys it in the book in one
step, so the contact never disappears mid-rename. Renaming onto an
existing contact is rejected.

Example:
  satchel contact rename Emily Emilia`,
	Args: cobra.ExactArgs(2),
	RunE: runContactRename,
}

func runContactRename(cmd *cobra.Command, args []string) error {
	oldName, newName := args[0], args[1]

	return updateBook(func(book *types.Book) error {
		if err := book.Rename(oldName, newName); err != nil {
			return err
		}
		fmt.Println("Contact renamed.")
		return nil
	})
}

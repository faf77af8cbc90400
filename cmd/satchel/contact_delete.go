// Contact delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dovetail-labs/satchel/pkg/types"
)

var contactDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a contact",
	Long: `Delete removes the contact with the given name from the book.

Example:
  satchel contact delete Emily`,
	Args: cobra.ExactArgs(1),
	RunE: runContactDelete,
}

func runContactDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	return updateBook(func(book *types.Book) error {
		if err := book.Delete(name); err != nil {
			return err
		}
		fmt.Println("Contact deleted.")
		return nil
	})
}

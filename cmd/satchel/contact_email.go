// Contact add-email command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dovetail-labs/satchel/pkg/types"
)

var contactAddEmailCmd = &cobra.Command{
	Use:   "add-email NAME EMAIL",
	Short: "Set a contact's email address",
	Long: `Add-email sets or overwrites the contact's email address.

Example:
  satchel contact add-email Emily emily@mail.com`,
	Args: cobra.ExactArgs(2),
	RunE: runContactAddEmail,
}

func runContactAddEmail(cmd *cobra.Command, args []string) error {
	name, email := args[0], args[1]

	return updateBook(func(book *types.Book) error {
		record, err := mustFind(book, name)
		if err != nil {
			return err
		}
		if err := record.SetEmail(email); err != nil {
			return err
		}
		fmt.Println("Email added.")
		return nil
	})
}

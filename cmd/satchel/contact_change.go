// Contact change command replaces one phone number with another.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dovetail-labs/satchel/pkg/types"
)

var contactChangeCmd = &cobra.Command{
	Use:   "change NAME OLD_PHONE NEW_PHONE",
	Short: "Replace a contact's phone number",
	Long: `Change finds the first phone equal to OLD_PHONE on the contact and
replaces it with NEW_PHONE.

Example:
  satchel contact change Emily 1234567890 0987654321`,
	Args: cobra.ExactArgs(3),
	RunE: runContactChange,
}

func runContactChange(cmd *cobra.Command, args []string) error {
	name, oldPhone, newPhone := args[0], args[1], args[2]

	return updateBook(func(book *types.Book) error {
		record, err := mustFind(book, name)
		if err != nil {
			return err
		}
		if err := record.EditPhone(oldPhone, newPhone); err != nil {
			return err
		}
		fmt.Println("Contact updated.")
		return nil
	})
}

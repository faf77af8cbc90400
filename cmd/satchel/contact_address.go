// Contact add-address command.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dovetail-labs/satchel/pkg/types"
)

var contactAddAddressCmd = &cobra.Command{
	Use:   "add-address NAME ADDRESS...",
	Short: "Set a contact's postal address",
	Long: `Add-address sets or overwrites the contact's address. Everything
after the name is joined into the address text.

Example:
  satchel contact add-address Emily 221B Baker Street`,
	Args: cobra.MinimumNArgs(2),
	RunE: runContactAddAddress,
}

func runContactAddAddress(cmd *cobra.Command, args []string) error {
	name := args[0]
	address := strings.Join(args[1:], " ")

	return updateBook(func(book *types.Book) error {
		record, err := mustFind(book, name)
		if err != nil {
			return err
		}
		if err := record.SetAddress(address); err != nil {
			return err
		}
		fmt.Println("Address added.")
		return nil
	})
}

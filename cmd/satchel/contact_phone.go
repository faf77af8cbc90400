// Phone subcommands: add-phone, remove-phone, and phone (show).
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dovetail-labs/satchel/pkg/types"
)

var contactAddPhoneCmd = &cobra.Command{
	Use:   "add-phone NAME PHONE",
	Short: "Add another phone number to a contact",
	Long: `Add-phone appends a phone number to an existing contact. A contact
can hold any number of phones; duplicates are allowed.

Example:
  satchel contact add-phone Emily 1112223333`,
	Args: cobra.ExactArgs(2),
	RunE: runContactAddPhone,
}

func runContactAddPhone(cmd *cobra.Command, args []string) error {
	name, phone := args[0], args[1]

	return updateBook(func(book *types.Book) error {
		record, err := mustFind(book, name)
		if err != nil {
			return err
		}
		if _, err := record.AddPhone(phone); err != nil {
			return err
		}
		fmt.Println("Phone added.")
		return nil
	})
}

var contactRemovePhoneCmd = &cobra.Command{
	Use:   "remove-phone NAME PHONE",
	Short: "Remove a phone number from a contact",
	Long: `Remove-phone removes every phone equal to PHONE from the contact.

Example:
  satchel contact remove-phone Emily 1112223333`,
	Args: cobra.ExactArgs(2),
	RunE: runContactRemovePhone,
}

func runContactRemovePhone(cmd *cobra.Command, args []string) error {
	name, phone := args[0], args[1]

	return updateBook(func(book *types.Book) error {
		record, err := mustFind(book, name)
		if err != nil {
			return err
		}
		if _, ok := record.FindPhone(phone); !ok {
			return fmt.Errorf("phone %s: %w", phone, types.ErrNotFound)
		}
		record.RemovePhone(phone)
		fmt.Println("Phone removed.")
		return nil
	})
}

var contactPhoneCmd = &cobra.Command{
	Use:   "phone NAME",
	Short: "Show a contact's phone numbers",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactPhone,
}

func runContactPhone(cmd *cobra.Command, args []string) error {
	name := args[0]

	return withBook(func(book *types.Book) error {
		record, err := mustFind(book, name)
		if err != nil {
			return err
		}

		phones := make([]string, len(record.Phones))
		for i, p := range record.Phones {
			phones[i] = p.String()
		}

		if flagJSON {
			return printJSON(map[string]any{"name": name, "phones": phones})
		}
		if len(phones) == 0 {
			fmt.Printf("%s has no phone numbers.\n", name)
			return nil
		}
		for _, p := range phones {
			fmt.Println(p)
		}
		return nil
	})
}

// Contact add command creates a new address book entry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dovetail-labs/satchel/pkg/types"
)

var (
	addBirthday string
	addEmail    string
	addAddress  string
)

var contactAddCmd = &cobra.Command{
	Use:   "add NAME PHONE",
	Short: "Add a new contact",
	Long: `Add creates a new contact with the given name and phone number.
The name must be at least 2 characters; the phone exactly 10 digits.
Adding a name that already exists is rejected.

Example:
  satchel contact add Emily 1234567890
  satchel contact add John 0987654321 --birthday 01.01.2000 --email john@mail.com`,
	Args: cobra.ExactArgs(2),
	RunE: runContactAdd,
}

func init() {
	contactAddCmd.Flags().StringVar(&addBirthday, "birthday", "", "birthday in DD.MM.YYYY format")
	contactAddCmd.Flags().StringVar(&addEmail, "email", "", "email address")
	contactAddCmd.Flags().StringVar(&addAddress, "address", "", "postal address")
}

func runContactAdd(cmd *cobra.Command, args []string) error {
	name, phone := args[0], args[1]

	return updateBook(func(book *types.Book) error {
		if _, exists := book.Find(name); exists {
			return fmt.Errorf("contact %q: %w", name, types.ErrDuplicate)
		}

		record, err := types.NewRecord(name)
		if err != nil {
			return err
		}
		if _, err := record.AddPhone(phone); err != nil {
			return err
		}
		if addBirthday != "" {
			if err := record.SetBirthday(addBirthday); err != nil {
				return err
			}
		}
		if addEmail != "" {
			if err := record.SetEmail(addEmail); err != nil {
				return err
			}
		}
		if addAddress != "" {
			if err := record.SetAddress(addAddress); err != nil {
				return err
			}
		}

		book.Add(record)
		fmt.Println("Contact added.")
		return nil
	})
}

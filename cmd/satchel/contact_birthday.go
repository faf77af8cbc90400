// Birthday subcommands: add-birthday and birthday (show).
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dovetail-labs/satchel/pkg/types"
)

var contactAddBirthdayCmd = &cobra.Command{
	Use:   "add-birthday NAME DD.MM.YYYY",
	Short: "Set a contact's birthday",
	Long: `Add-birthday sets or overwrites the contact's birthday. The date
must be a valid calendar date in DD.MM.YYYY format.

Example:
  satchel contact add-birthday Emily 01.01.2000`,
	Args: cobra.ExactArgs(2),
	RunE: runContactAddBirthday,
}

func runContactAddBirthday(cmd *cobra.Command, args []string) error {
	name, birthday := args[0], args[1]

	return updateBook(func(book *types.Book) error {
		record, err := mustFind(book, name)
		if err != nil {
			return err
		}
		if err := record.SetBirthday(birthday); err != nil {
			return err
		}
		fmt.Println("Birthday added.")
		return nil
	})
}

var contactBirthdayCmd = &cobra.Command{
	Use:   "birthday NAME",
	Short: "Show a contact's birthday",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactBirthday,
}

func runContactBirthday(cmd *cobra.Command, args []string) error {
	name := args[0]

	return withBook(func(book *types.Book) error {
		record, err := mustFind(book, name)
		if err != nil {
			return err
		}

		birthday := "---"
		if record.Birthday != nil {
			birthday = record.Birthday.String()
		}

		if flagJSON {
			return printJSON(map[string]string{"name": name, "birthday": birthday})
		}
		fmt.Println(birthday)
		return nil
	})
}

// Contact list and find commands.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dovetail-labs/satchel/pkg/types"
)

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all contacts",
	Long: `List shows every contact in the address book, in the order they
were added.

Example:
  satchel contact list
  satchel contact list --json`,
	Args: cobra.NoArgs,
	RunE: runContactList,
}

func runContactList(cmd *cobra.Command, args []string) error {
	return withBook(func(book *types.Book) error {
		records := book.Contacts()

		if flagJSON {
			rows := make([]contactRow, len(records))
			for i, r := range records {
				rows[i] = newContactRow(r)
			}
			return printJSON(rows)
		}
		printContactTable(records)
		return nil
	})
}

var contactFindCmd = &cobra.Command{
	Use:   "find NAME",
	Short: "Show one contact",
	Long: `Find looks up a contact by exact name and shows all of its fields.

Example:
  satchel contact find Emily`,
	Args: cobra.ExactArgs(1),
	RunE: runContactFind,
}

func runContactFind(cmd *cobra.Command, args []string) error {
	name := args[0]

	return withBook(func(book *types.Book) error {
		record, err := mustFind(book, name)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(newContactRow(record))
		}
		printContactTable([]*types.Record{record})
		return nil
	})
}

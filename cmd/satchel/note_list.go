// Note list command.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dovetail-labs/satchel/pkg/types"
)

var noteListSortTags bool

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Long: `List shows every note in the order it was added. With --sort-tags
notes are grouped by tag, tagged notes first, untagged last.

Example:
  satchel note list
  satchel note list --sort-tags`,
	Args: cobra.NoArgs,
	RunE: runNoteList,
}

func init() {
	noteListCmd.Flags().BoolVar(&noteListSortTags, "sort-tags", false, "group notes by tag")
}

func runNoteList(cmd *cobra.Command, args []string) error {
	return withBook(func(book *types.Book) error {
		var notes []types.Note
		if noteListSortTags {
			notes = book.NotesByTag()
		} else {
			notes = book.Notes()
		}

		if flagJSON {
			return printJSON(noteRows(notes))
		}
		printNoteTable(notes)
		return nil
	})
}

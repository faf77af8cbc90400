// Note search and tags commands.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dovetail-labs/satchel/pkg/types"
)

var noteSearchCmd = &cobra.Command{
	Use:   "search KEYWORD",
	Short: "Search notes by keyword",
	Long: `Search finds notes whose title, body, or tag contains the keyword.
Matching is case-insensitive.

Example:
  satchel note search groceries`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteSearch,
}

func runNoteSearch(cmd *cobra.Command, args []string) error {
	keyword := args[0]

	return withBook(func(book *types.Book) error {
		notes := book.SearchNotes(keyword)

		if flagJSON {
			return printJSON(noteRows(notes))
		}
		printNoteTable(notes)
		return nil
	})
}

var noteTagsCmd = &cobra.Command{
	Use:   "tags TAG",
	Short: "List notes with an exact tag",
	Long: `Tags finds notes whose tag matches exactly, ignoring case.

Example:
  satchel note tags "#errands"`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteTags,
}

func runNoteTags(cmd *cobra.Command, args []string) error {
	tag := args[0]

	return withBook(func(book *types.Book) error {
		notes := book.NotesWithTag(tag)

		if flagJSON {
			return printJSON(noteRows(notes))
		}
		printNoteTable(notes)
		return nil
	})
}

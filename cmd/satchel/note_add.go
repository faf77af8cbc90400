// Note add command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dovetail-labs/satchel/pkg/types"
)

var (
	noteAddText string
	noteAddTag  string
)

var noteAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a new note",
	Long: `Add creates a note with the given title and text, optionally tagged.
Tags conventionally start with "#".

Example:
  satchel note add Todo --text "Buy milk" --tag "#personal"
  satchel note add Work --text "Finish report"`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteAdd,
}

func init() {
	noteAddCmd.Flags().StringVar(&noteAddText, "text", "", "note body text (required)")
	noteAddCmd.Flags().StringVar(&noteAddTag, "tag", "", "optional tag")
	_ = noteAddCmd.MarkFlagRequired("text")
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	title := args[0]

	return updateBook(func(book *types.Book) error {
		book.AddNote(types.Note{Title: title, Body: noteAddText, Tag: noteAddTag})
		fmt.Println("Note added.")
		return nil
	})
}

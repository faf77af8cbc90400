// Note edit command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dovetail-labs/satchel/pkg/types"
)

var (
	noteEditText string
	noteEditTag  string
)

var noteEditCmd = &cobra.Command{
	Use:   "edit TITLE",
	Short: "Edit a note's text or tag",
	Long: `Edit updates the first note with the given title. Pass --text,
--tag, or both; a flag that is not given leaves that part unchanged.
Passing --tag "" clears the tag.

Example:
  satchel note edit Todo --text "Buy milk and eggs"
  satchel note edit Todo --tag "#errands"`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteEdit,
}

func init() {
	noteEditCmd.Flags().StringVar(&noteEditText, "text", "", "new body text")
	noteEditCmd.Flags().StringVar(&noteEditTag, "tag", "", "new tag")
}

func runNoteEdit(cmd *cobra.Command, args []string) error {
	title := args[0]

	var body, tag *string
	if cmd.Flags().Changed("text") {
		body = &noteEditText
	}
	if cmd.Flags().Changed("tag") {
		tag = &noteEditTag
	}
	if body == nil && tag == nil {
		return fmt.Errorf("%w: pass --text and/or --tag", types.ErrMalformedInput)
	}

	return updateBook(func(book *types.Book) error {
		if err := book.EditNote(title, body, tag); err != nil {
			return err
		}
		fmt.Println("Note updated.")
		return nil
	})
}

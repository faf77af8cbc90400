// Note delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dovetail-labs/satchel/pkg/types"
)

var noteDeleteCmd = &cobra.Command{
	Use:   "delete TITLE",
	Short: "Delete all notes with the given title",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteDelete,
}

func runNoteDelete(cmd *cobra.Command, args []string) error {
	title := args[0]

	return updateBook(func(book *types.Book) error {
		removed, err := book.DeleteNotes(title)
		if err != nil {
			return err
		}
		if removed == 1 {
			fmt.Println("Note deleted.")
		} else {
			fmt.Printf("%d notes deleted.\n", removed)
		}
		return nil
	})
}

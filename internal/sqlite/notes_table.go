// Note row access: inserts, Book hydration, and dehydration back to
// JSONL records.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dovetail-labs/satchel/pkg/types"
)

// insertNote writes one note row at the given position. Records loaded
// from older files may lack an ID; one is generated so the primary key
// holds.
func insertNote(db *sql.DB, n noteJSON, position int) error {
	if n.NoteID == "" {
		n.NoteID = newNoteID()
	}
	_, err := db.Exec(
		"INSERT INTO notes (note_id, title, body, tag, position) VALUES (?, ?, ?, ?, ?)",
		n.NoteID, n.Title, n.Body, n.Tag, position,
	)
	if err != nil {
		return fmt.Errorf("inserting note %q: %w", n.Title, err)
	}
	return nil
}

// hydrateNotes appends the stored notes to the book in position order.
func hydrateNotes(db *sql.DB, book *types.Book) error {
	rows, err := db.Query(
		"SELECT note_id, title, body, tag FROM notes ORDER BY position",
	)
	if err != nil {
		return fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var n types.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.Tag); err != nil {
			return fmt.Errorf("scanning note row: %w", err)
		}
		book.AddNote(n)
	}
	return rows.Err()
}

// dehydrateNotes converts the book's notes to JSONL form in insertion
// order, assigning a UUID v7 to any note that has no ID yet.
func dehydrateNotes(book *types.Book) []noteJSON {
	notes := book.Notes()
	out := make([]noteJSON, 0, len(notes))
	for _, n := range notes {
		id := n.ID
		if id == "" {
			id = newNoteID()
		}
		out = append(out, noteJSON{NoteID: id, Title: n.Title, Body: n.Body, Tag: n.Tag})
	}
	return out
}

// newNoteID generates a UUID v7 note ID, falling back to v4 if v7
// generation fails.
func newNoteID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

package types

import (
	"fmt"
	"sort"
	"strings"
)

// Note is a free-form titled note with an optional tag. Titles act as
// de-facto keys in practice but uniqueness is not enforced, and the
// "#" tag prefix is a convention of calling code, not an invariant.
type Note struct {
	ID    string // UUID v7, assigned by the store on first save
	Title string
	Body  string
	Tag   string // empty means untagged
}

// AddNote appends a note to the book. Insertion order is kept.
func (b *Book) AddNote(n Note) {
	b.notes = append(b.notes, n)
}

// Notes returns the note list in insertion order.
func (b *Book) Notes() []Note {
	out := make([]Note, len(b.notes))
	copy(out, b.notes)
	return out
}

// DeleteNotes removes every note whose title equals title exactly.
// Returns the number removed, or ErrNotFound if nothing matched.
func (b *Book) DeleteNotes(title string) (int, error) {
	kept := b.notes[:0]
	for _, n := range b.notes {
		if n.Title != title {
			kept = append(kept, n)
		}
	}
	removed := len(b.notes) - len(kept)
	b.notes = kept
	if removed == 0 {
		return 0, fmt.Errorf("note %q: %w", title, ErrNotFound)
	}
	return removed, nil
}

// EditNote updates the first note whose title equals title. A nil body
// or tag leaves that part unchanged. Returns ErrNotFound if no note
// matches.
func (b *Book) EditNote(title string, body, tag *string) error {
	for i := range b.notes {
		if b.notes[i].Title != title {
			continue
		}
		if body != nil {
			b.notes[i].Body = *body
		}
		if tag != nil {
			b.notes[i].Tag = *tag
		}
		return nil
	}
	return fmt.Errorf("note %q: %w", title, ErrNotFound)
}

// SearchNotes returns every note whose title, body, or tag contains
// keyword, case-insensitively. An empty result is not an error.
func (b *Book) SearchNotes(keyword string) []Note {
	needle := strings.ToLower(keyword)
	var out []Note
	for _, n := range b.notes {
		if strings.Contains(strings.ToLower(n.Title), needle) ||
			strings.Contains(strings.ToLower(n.Body), needle) ||
			strings.Contains(strings.ToLower(n.Tag), needle) {
			out = append(out, n)
		}
	}
	return out
}

// NotesWithTag returns every note whose tag equals tag,
// case-insensitively.
func (b *Book) NotesWithTag(tag string) []Note {
	var out []Note
	for _, n := range b.notes {
		if strings.EqualFold(n.Tag, tag) {
			out = append(out, n)
		}
	}
	return out
}

// NotesByTag returns the notes sorted by tag: tagged notes alphabetical
// by tag, all untagged notes after all tagged ones. The sort is stable,
// so untagged notes keep their insertion order among themselves.
func (b *Book) NotesByTag() []Note {
	out := b.Notes()
	sort.SliceStable(out, func(i, j int) bool {
		if (out[i].Tag == "") != (out[j].Tag == "") {
			return out[i].Tag != ""
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

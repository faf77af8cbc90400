package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBookAddAndListNotes(t *testing.T) {
	b := NewBook()
	b.AddNote(Note{Title: "Todo", Body: "Buy milk", Tag: "#personal"})
	b.AddNote(Note{Title: "Work", Body: "Finish report"})

	notes := b.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, "Todo", notes[0].Title)
	assert.Equal(t, "#personal", notes[0].Tag)
	assert.Equal(t, "", notes[1].Tag, "untagged note keeps an empty tag")
}

func TestBookDeleteNotesRemovesAllMatches(t *testing.T) {
	b := NewBook()
	b.AddNote(Note{Title: "Todo", Body: "one"})
	b.AddNote(Note{Title: "Other", Body: "keep"})
	b.AddNote(Note{Title: "Todo", Body: "two"})

	removed, err := b.DeleteNotes("Todo")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	notes := b.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "Other", notes[0].Title)

	_, err = b.DeleteNotes("Todo")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookEditNote(t *testing.T) {
	tests := []struct {
		name     string
		body     *string
		tag      *string
		wantBody string
		wantTag  string
	}{
		{
			name:     "body only",
			body:     strPtr("Updated content"),
			wantBody: "Updated content",
			wantTag:  "#old",
		},
		{
			name:     "tag only",
			tag:      strPtr("#new"),
			wantBody: "Initial text",
			wantTag:  "#new",
		},
		{
			name:     "both at once",
			body:     strPtr("New text"),
			tag:      strPtr("#new"),
			wantBody: "New text",
			wantTag:  "#new",
		},
		{
			name:     "tag cleared with empty string",
			tag:      strPtr(""),
			wantBody: "Initial text",
			wantTag:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBook()
			b.AddNote(Note{Title: "Plan", Body: "Initial text", Tag: "#old"})

			require.NoError(t, b.EditNote("Plan", tt.body, tt.tag))
			n := b.Notes()[0]
			assert.Equal(t, tt.wantBody, n.Body)
			assert.Equal(t, tt.wantTag, n.Tag)
		})
	}
}

func TestBookEditNoteFirstMatchOnly(t *testing.T) {
	b := NewBook()
	b.AddNote(Note{Title: "Plan", Body: "first"})
	b.AddNote(Note{Title: "Plan", Body: "second"})

	require.NoError(t, b.EditNote("Plan", strPtr("edited"), nil))
	notes := b.Notes()
	assert.Equal(t, "edited", notes[0].Body)
	assert.Equal(t, "second", notes[1].Body)
}

func TestBookEditNoteNotFound(t *testing.T) {
	b := NewBook()
	assert.ErrorIs(t, b.EditNote("Ghost", strPtr("x"), nil), ErrNotFound)
}

func TestBookSearchNotes(t *testing.T) {
	b := NewBook()
	b.AddNote(Note{Title: "Trip", Body: "Pack luggage", Tag: "#travel"})
	b.AddNote(Note{Title: "Meeting", Body: "Discuss agenda", Tag: "#work"})
	b.AddNote(Note{Title: "Groceries", Body: "Milk and eggs"})

	tests := []struct {
		name    string
		keyword string
		want    []string
	}{
		{name: "matches title", keyword: "trip", want: []string{"Trip"}},
		{name: "matches body", keyword: "AGENDA", want: []string{"Meeting"}},
		{name: "matches tag", keyword: "#trav", want: []string{"Trip"}},
		{name: "substring across notes", keyword: "g", want: []string{"Trip", "Meeting", "Groceries"}},
		{name: "no matches", keyword: "zzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.SearchNotes(tt.keyword)
			titles := make([]string, 0, len(got))
			for _, n := range got {
				titles = append(titles, n.Title)
			}
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestBookNotesWithTag(t *testing.T) {
	b := NewBook()
	b.AddNote(Note{Title: "Meeting", Body: "agenda", Tag: "#Work"})
	b.AddNote(Note{Title: "Trip", Body: "luggage", Tag: "#travel"})

	got := b.NotesWithTag("#work")
	require.Len(t, got, 1, "tag match is case-insensitive but exact")
	assert.Equal(t, "Meeting", got[0].Title)

	assert.Empty(t, b.NotesWithTag("#wor"), "prefix does not match")
}

func TestBookNotesByTag(t *testing.T) {
	b := NewBook()
	b.AddNote(Note{Title: "B", Body: "content", Tag: "#beta"})
	b.AddNote(Note{Title: "U1", Body: "no tag"})
	b.AddNote(Note{Title: "A", Body: "content", Tag: "#alpha"})
	b.AddNote(Note{Title: "U2", Body: "no tag either"})

	got := b.NotesByTag()
	titles := make([]string, len(got))
	for i, n := range got {
		titles[i] = n.Title
	}
	// Tagged alphabetically, then untagged in insertion order.
	assert.Equal(t, []string{"A", "B", "U1", "U2"}, titles)

	// The original list is untouched.
	assert.Equal(t, "B", b.Notes()[0].Title)
}

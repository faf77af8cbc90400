package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookWith(t *testing.T, names ...string) *Book {
	t.Helper()
	b := NewBook()
	for _, n := range names {
		b.Add(newTestRecord(t, n))
	}
	return b
}

func TestBookAddAndFind(t *testing.T) {
	b := bookWith(t, "Emily", "John")

	r, ok := b.Find("Emily")
	require.True(t, ok)
	assert.Equal(t, "Emily", r.Name.String())

	_, ok = b.Find("emily")
	assert.False(t, ok, "lookup is case-sensitive")

	_, ok = b.Find("Charlie")
	assert.False(t, ok)
}

func TestBookAddIsBlindUpsert(t *testing.T) {
	b := bookWith(t, "Emily", "John")

	replacement := newTestRecord(t, "Emily")
	_, err := replacement.AddPhone("1234567890")
	require.NoError(t, err)
	b.Add(replacement)

	assert.Equal(t, 2, b.Len())
	r, ok := b.Find("Emily")
	require.True(t, ok)
	assert.Len(t, r.Phones, 1)

	// Overwriting keeps the original position.
	contacts := b.Contacts()
	assert.Equal(t, "Emily", contacts[0].Name.String())
	assert.Equal(t, "John", contacts[1].Name.String())
}

func TestBookDelete(t *testing.T) {
	b := bookWith(t, "Emily", "John")

	require.NoError(t, b.Delete("Emily"))
	_, ok := b.Find("Emily")
	assert.False(t, ok)
	assert.Equal(t, 1, b.Len())

	err := b.Delete("Emily")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookContactsInsertionOrder(t *testing.T) {
	b := bookWith(t, "Charlie", "Alice", "Bob")

	names := make([]string, 0, b.Len())
	for _, r := range b.Contacts() {
		names = append(names, r.Name.String())
	}
	assert.Equal(t, []string{"Charlie", "Alice", "Bob"}, names)

	require.NoError(t, b.Delete("Alice"))
	names = names[:0]
	for _, r := range b.Contacts() {
		names = append(names, r.Name.String())
	}
	assert.Equal(t, []string{"Charlie", "Bob"}, names)
}

func TestBookRename(t *testing.T) {
	b := bookWith(t, "Emily", "John")
	r, _ := b.Find("Emily")
	_, err := r.AddPhone("1234567890")
	require.NoError(t, err)

	require.NoError(t, b.Rename("Emily", "Emilia"))

	_, ok := b.Find("Emily")
	assert.False(t, ok, "old key must be gone")
	renamed, ok := b.Find("Emilia")
	require.True(t, ok, "record must be findable under the new key")
	assert.Equal(t, "Emilia", renamed.Name.String(), "directory key equals the record name")
	assert.Len(t, renamed.Phones, 1, "record state survives the re-key")

	// Position in insertion order is kept.
	assert.Equal(t, "Emilia", b.Contacts()[0].Name.String())
}

func TestBookRenameErrors(t *testing.T) {
	b := bookWith(t, "Emily", "John")

	assert.ErrorIs(t, b.Rename("Ghost", "Casper"), ErrNotFound)
	assert.ErrorIs(t, b.Rename("Emily", "John"), ErrDuplicate)

	var verr *ValidationError
	assert.ErrorAs(t, b.Rename("Emily", "X"), &verr)

	// Renaming to the same name is a no-op.
	require.NoError(t, b.Rename("Emily", "Emily"))
	_, ok := b.Find("Emily")
	assert.True(t, ok)
}

func TestUpcomingBirthdaysWindow(t *testing.T) {
	today := time.Date(2026, time.March, 10, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		birthday string
		window   int
		want     []time.Time
	}{
		{
			name:     "ten days out inside window",
			birthday: "20.03.1990",
			window:   300,
			want:     []time.Time{time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:     "ten days out but window five",
			birthday: "20.03.1990",
			window:   5,
			want:     nil,
		},
		{
			name:     "birthday today included",
			birthday: "10.03.1990",
			window:   7,
			want:     []time.Time{time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:     "exactly window days out included",
			birthday: "17.03.1990",
			window:   7,
			want:     []time.Time{time.Date(2026, time.March, 17, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:     "one past the window excluded",
			birthday: "18.03.1990",
			window:   7,
			want:     nil,
		},
		{
			name:     "passed this year rolls to next year",
			birthday: "01.03.1990",
			window:   360,
			want:     []time.Time{time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:     "passed this year and next year outside window",
			birthday: "01.03.1990",
			window:   30,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBook()
			r := newTestRecord(t, "Emily")
			require.NoError(t, r.SetBirthday(tt.birthday))
			b.Add(r)

			got := b.UpcomingBirthdays(today, tt.window)
			require.Len(t, got, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, "Emily", got[i].Name)
				assert.True(t, want.Equal(got[i].Congratulation),
					"want %s, got %s", want, got[i].Congratulation)
			}
		})
	}
}

func TestUpcomingBirthdaysSkipsRecordsWithout(t *testing.T) {
	b := bookWith(t, "Emily", "John")
	r, _ := b.Find("John")
	require.NoError(t, r.SetBirthday("15.03.1985"))

	got := b.UpcomingBirthdays(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), 7)
	require.Len(t, got, 1)
	assert.Equal(t, "John", got[0].Name)
}

func TestUpcomingBirthdaysLeapDayNormalizes(t *testing.T) {
	b := NewBook()
	r := newTestRecord(t, "Emily")
	require.NoError(t, r.SetBirthday("29.02.2000"))
	b.Add(r)

	// 2026 is not a leap year: the congratulation lands on March 1.
	today := time.Date(2026, time.February, 25, 0, 0, 0, 0, time.UTC)
	got := b.UpcomingBirthdays(today, 7)
	require.Len(t, got, 1)
	assert.True(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC).Equal(got[0].Congratulation))
}

func TestUpcomingBirthdaysInsertionOrder(t *testing.T) {
	b := NewBook()
	for _, n := range []string{"Charlie", "Alice"} {
		r := newTestRecord(t, n)
		require.NoError(t, r.SetBirthday("15.03.1990"))
		b.Add(r)
	}

	got := b.UpcomingBirthdays(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), 7)
	require.Len(t, got, 2)
	assert.Equal(t, "Charlie", got[0].Name)
	assert.Equal(t, "Alice", got[1].Name)
}

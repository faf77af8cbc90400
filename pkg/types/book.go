package types

import (
	"fmt"
	"time"
)

// Book is the keyed collection of contact records plus the note list,
// persisted as one unit. Records are keyed by the current name's string
// value; the key always equals record.Name. Renames go through Rename
// so the re-keying is atomic.
type Book struct {
	order   []string // contact names in insertion order
	records map[string]*Record
	notes   []Note
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{records: make(map[string]*Record)}
}

// Add inserts or overwrites the record under its name. Add is a blind
// upsert; rejecting duplicate names is the caller's responsibility.
// Overwriting keeps the name's original position in insertion order.
func (b *Book) Add(r *Record) {
	key := r.Name.String()
	if _, exists := b.records[key]; !exists {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

// Find returns the record for the given name. Lookup is exact and
// case-sensitive.
func (b *Book) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record for the given name.
// Returns ErrNotFound if no record has that name.
func (b *Book) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("contact %q: %w", name, ErrNotFound)
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Rename re-keys the record from oldName to the validated newRaw and
// updates the record's name, in one step. The record keeps its position
// in insertion order. Returns ErrNotFound for an unknown oldName and
// ErrDuplicate if another record already holds the new name.
func (b *Book) Rename(oldName, newRaw string) error {
	r, ok := b.records[oldName]
	if !ok {
		return fmt.Errorf("contact %q: %w", oldName, ErrNotFound)
	}
	name, err := NewName(newRaw)
	if err != nil {
		return err
	}
	newKey := name.String()
	if newKey == oldName {
		return nil
	}
	if _, taken := b.records[newKey]; taken {
		return fmt.Errorf("contact %q: %w", newKey, ErrDuplicate)
	}

	r.Name = name
	b.records[newKey] = r
	delete(b.records, oldName)
	for i, n := range b.order {
		if n == oldName {
			b.order[i] = newKey
			break
		}
	}
	return nil
}

// Contacts returns all records in insertion order.
func (b *Book) Contacts() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// Len returns the number of contact records.
func (b *Book) Len() int { return len(b.records) }

// Reminder is one upcoming-birthday result: the contact's name and the
// date the congratulation falls on.
type Reminder struct {
	Name           string
	Congratulation time.Time
}

// UpcomingBirthdays returns a reminder for every contact whose birthday
// falls within windowDays of today, inclusive at both ends: a birthday
// today and a birthday exactly windowDays out are both included. The
// congratulation date is this year's anniversary when it has not passed
// yet, otherwise next year's. For February 29 birthdays the date
// normalizes to March 1 in non-leap years. Results follow insertion
// order.
func (b *Book) UpcomingBirthdays(today time.Time, windowDays int) []Reminder {
	today = midnightUTC(today)
	var out []Reminder
	for _, r := range b.Contacts() {
		if r.Birthday == nil {
			continue
		}
		born := r.Birthday.Date()
		thisYear := time.Date(today.Year(), born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
		nextYear := time.Date(today.Year()+1, born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)

		if d := daysBetween(today, thisYear); 0 <= d && d <= windowDays {
			out = append(out, Reminder{Name: r.Name.String(), Congratulation: thisYear})
		} else if d := daysBetween(today, nextYear); 0 <= d && d <= windowDays {
			out = append(out, Reminder{Name: r.Name.String(), Congratulation: nextYear})
		}
	}
	return out
}

// midnightUTC truncates t to its calendar date in UTC.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from a to b. Both must be
// midnight-aligned in the same location.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

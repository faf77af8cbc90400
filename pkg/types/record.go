package types

import (
	"fmt"
	"strings"
)

// Record is the stored representation of one contact: one name, an
// ordered list of phones, and at most one each of birthday, email, and
// address. All mutation goes through methods that re-validate input;
// a Record never holds a value that failed its field invariant.
type Record struct {
	Name     Name
	Phones   []Phone
	Birthday *Birthday
	Email    *Email
	Address  *Address
}

// NewRecord creates a record for the given raw name.
func NewRecord(rawName string) (*Record, error) {
	name, err := NewName(rawName)
	if err != nil {
		return nil, err
	}
	return &Record{Name: name}, nil
}

// AddPhone validates raw and appends it to the phone list. Duplicates
// are allowed; insertion order is preserved.
func (r *Record) AddPhone(raw string) (Phone, error) {
	p, err := NewPhone(raw)
	if err != nil {
		return Phone{}, err
	}
	r.Phones = append(r.Phones, p)
	return p, nil
}

// EditPhone replaces the first phone equal to old with the validated
// replacement, in place. Returns ErrNotFound if no phone matches old.
func (r *Record) EditPhone(old, replacement string) error {
	p, err := NewPhone(replacement)
	if err != nil {
		return err
	}
	for i := range r.Phones {
		if r.Phones[i].String() == old {
			r.Phones[i] = p
			return nil
		}
	}
	return fmt.Errorf("phone %s: %w", old, ErrNotFound)
}

// FindPhone returns the first phone whose value equals value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	for _, p := range r.Phones {
		if p.String() == value {
			return p, true
		}
	}
	return Phone{}, false
}

// RemovePhone removes every phone whose value equals value.
func (r *Record) RemovePhone(value string) {
	kept := r.Phones[:0]
	for _, p := range r.Phones {
		if p.String() != value {
			kept = append(kept, p)
		}
	}
	r.Phones = kept
}

// SetBirthday validates raw and sets or overwrites the birthday.
func (r *Record) SetBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.Birthday = &b
	return nil
}

// SetEmail validates raw and sets or overwrites the email.
func (r *Record) SetEmail(raw string) error {
	e, err := NewEmail(raw)
	if err != nil {
		return err
	}
	r.Email = &e
	return nil
}

// SetAddress validates raw and sets or overwrites the address.
func (r *Record) SetAddress(raw string) error {
	a, err := NewAddress(raw)
	if err != nil {
		return err
	}
	r.Address = &a
	return nil
}

// FieldView is one renderable (label, value) pair of a record. The
// enumeration in Fields is the single place that knows which fields a
// record has; rendering and whole-record search both build on it.
type FieldView struct {
	Label string
	Value string
}

// Fields returns the record's fields in display order. Absent
// single-valued fields render as "---"; phones join with "; ".
func (r *Record) Fields() []FieldView {
	phones := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		phones[i] = p.String()
	}

	birthday := absentField
	if r.Birthday != nil {
		birthday = r.Birthday.String()
	}
	email := absentField
	if r.Email != nil {
		email = r.Email.String()
	}
	address := absentField
	if r.Address != nil {
		address = r.Address.String()
	}

	return []FieldView{
		{Label: "Name", Value: r.Name.String()},
		{Label: "Phones", Value: strings.Join(phones, "; ")},
		{Label: "Birthday", Value: birthday},
		{Label: "Email", Value: email},
		{Label: "Address", Value: address},
	}
}

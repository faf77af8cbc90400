package types

import (
	"regexp"
	"strings"
	"time"
)

// BirthdayLayout is the textual form of birthdays everywhere in the
// system: zero-padded day and month, four-digit year.
const BirthdayLayout = "02.01.2006"

// absentField is rendered for single-valued fields a record does not have.
const absentField = "---"

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[A-Za-z]{2,}$`)
)

// Name is a contact name. Valid once constructed; the stored value is
// the exact original string, not the trimmed form.
type Name struct {
	value string
}

// NewName validates raw as a contact name. The trimmed form must be at
// least two characters long.
func NewName(raw string) (Name, error) {
	if len(strings.TrimSpace(raw)) < 2 {
		return Name{}, newValidationError("name", raw, "must contain at least 2 characters")
	}
	return Name{value: raw}, nil
}

func (n Name) String() string { return n.value }

// IsZero reports whether the name was never constructed.
func (n Name) IsZero() bool { return n.value == "" }

// Phone is a ten-digit phone number.
type Phone struct {
	value string
}

// NewPhone validates raw as exactly 10 ASCII digits. No leading "+",
// no separators.
func NewPhone(raw string) (Phone, error) {
	if !phonePattern.MatchString(raw) {
		return Phone{}, newValidationError("phone", raw, "must be exactly 10 digits")
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string { return p.value }

// Birthday is a calendar date parsed from DD.MM.YYYY form.
type Birthday struct {
	value time.Time
}

// NewBirthday parses raw under BirthdayLayout. Invalid calendar dates
// such as 31.02.2000 are rejected by the parser.
func NewBirthday(raw string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, newValidationError("birthday", raw, "must be a valid date in DD.MM.YYYY format")
	}
	return Birthday{value: t}, nil
}

// Date returns the parsed calendar date.
func (b Birthday) Date() time.Time { return b.value }

func (b Birthday) String() string {
	if b.value.IsZero() {
		return absentField
	}
	return b.value.Format(BirthdayLayout)
}

// Email is a validated email address.
type Email struct {
	value string
}

// NewEmail validates raw as local@domain.zone where local and domain
// are runs of word characters, dots, or dashes and the final zone is at
// least two letters.
func NewEmail(raw string) (Email, error) {
	if !emailPattern.MatchString(raw) {
		return Email{}, newValidationError("email", raw, "must look like name@example.com")
	}
	return Email{value: raw}, nil
}

func (e Email) String() string { return e.value }

// Address is a free-text postal address.
type Address struct {
	value string
}

// NewAddress validates raw as an address: at least two characters after
// trimming. The stored value keeps the original string.
func NewAddress(raw string) (Address, error) {
	if len(strings.TrimSpace(raw)) < 2 {
		return Address{}, newValidationError("address", raw, "must contain at least 2 characters")
	}
	return Address{value: raw}, nil
}

func (a Address) String() string { return a.value }

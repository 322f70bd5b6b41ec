// Package model provides the contact book data model.
package model

import (
	"regexp"
	"time"
)

// BirthdayLayout is the display and parse layout for birthdays (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Name represents a contact name value object.
type Name struct {
	value string
}

// NewName creates a new name value object. Any string is accepted;
// the name is the record's identity key within its address book.
func NewName(value string) *Name {
	return &Name{value: value}
}

// String returns the raw name string.
func (n *Name) String() string {
	return n.value
}

// Phone represents a validated phone number value object.
type Phone struct {
	value string
}

// NewPhone creates a new phone value object. The value must be exactly
// 10 ASCII decimal digits with no separators.
func NewPhone(value string) (*Phone, error) {
	if !phonePattern.MatchString(value) {
		return nil, NewValidationError("Phone number must be 10 digits.")
	}
	return &Phone{value: value}, nil
}

// String returns the 10-digit phone string.
func (p *Phone) String() string {
	return p.value
}

// Birthday represents a validated calendar date value object.
type Birthday struct {
	value time.Time
}

// NewBirthday creates a new birthday value object from a DD.MM.YYYY
// string. Impossible calendar dates (e.g. 31.02.2000) are rejected.
func NewBirthday(value string) (*Birthday, error) {
	t, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return nil, NewValidationError("Invalid date format. Use DD.MM.YYYY")
	}
	return &Birthday{value: t}, nil
}

// Time returns the date value. The time-of-day component is always zero.
func (b *Birthday) Time() time.Time {
	return b.value
}

// String returns the date formatted as DD.MM.YYYY.
func (b *Birthday) String() string {
	return b.value.Format(BirthdayLayout)
}

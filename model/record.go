// Package model provides the contact book data model.
package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Record represents one contact: a name, an ordered list of phone
// numbers (duplicates allowed), and an optional birthday.
type Record struct {
	ID       uuid.UUID
	Name     *Name
	Phones   []*Phone
	Birthday *Birthday
}

// NewRecord creates a new record with the given name and no phones.
func NewRecord(name string) *Record {
	return &Record{
		ID:     uuid.New(),
		Name:   NewName(name),
		Phones: []*Phone{},
	}
}

// LoadRecord rebuilds a stored record. Every field is re-validated so
// a corrupted row cannot produce an invalid in-memory record. An empty
// birthday string means the birthday is not set.
func LoadRecord(id uuid.UUID, name string, phones []string, birthday string) (*Record, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("id is required for loaded record")
	}
	rec := &Record{
		ID:     id,
		Name:   NewName(name),
		Phones: make([]*Phone, 0, len(phones)),
	}
	for _, raw := range phones {
		if err := rec.AddPhone(raw); err != nil {
			return nil, err
		}
	}
	if birthday != "" {
		if err := rec.AddBirthday(birthday); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// AddPhone validates raw and appends it to the phone list.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, phone)
	return nil
}

// RemovePhone removes the first phone whose display value equals raw.
// Removing an absent phone is a no-op.
func (r *Record) RemovePhone(raw string) {
	for i, p := range r.Phones {
		if p.String() == raw {
			r.Phones = append(r.Phones[:i], r.Phones[i+1:]...)
			return
		}
	}
}

// EditPhone replaces the first phone equal to oldRaw with a newly
// validated phone built from newRaw. The replacement is validated
// before the old number is removed, so a failed edit leaves the
// record unchanged. The new number is appended at the end of the list.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	if r.FindPhone(oldRaw) == nil {
		return NewValidationError("Old phone not found.")
	}
	phone, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	r.RemovePhone(oldRaw)
	r.Phones = append(r.Phones, phone)
	return nil
}

// FindPhone returns the first phone whose display value equals raw,
// or nil if no phone matches.
func (r *Record) FindPhone(raw string) *Phone {
	for _, p := range r.Phones {
		if p.String() == raw {
			return p
		}
	}
	return nil
}

// AddBirthday validates raw and sets the birthday, overwriting any
// previously set value.
func (r *Record) AddBirthday(raw string) error {
	birthday, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.Birthday = birthday
	return nil
}

// String renders the record in its canonical one-line form.
func (r *Record) String() string {
	phones := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		phones[i] = p.String()
	}
	birthday := "Not set"
	if r.Birthday != nil {
		birthday = r.Birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.Name, strings.Join(phones, "; "), birthday)
}

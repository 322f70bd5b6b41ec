// Package model provides the contact book data model.
package model

import "time"

// AddressBook is a collection of records keyed by contact name.
// Iteration order is insertion order; overwriting an existing name
// keeps the record's original position.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// AddRecord inserts rec keyed by its name. An existing record with the
// same name is replaced entirely (last write wins, no merge).
func (b *AddressBook) AddRecord(rec *Record) {
	key := rec.Name.String()
	if _, ok := b.records[key]; !ok {
		b.order = append(b.order, key)
	}
	b.records[key] = rec
}

// Find returns the record for name, or nil if no record exists.
func (b *AddressBook) Find(name string) *Record {
	return b.records[name]
}

// Delete removes the record for name. Deleting an absent name is a
// no-op.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			return
		}
	}
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	recs := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		recs = append(recs, b.records[key])
	}
	return recs
}

// Len returns the number of records in the book.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// UpcomingBirthdays returns, in book order, the records whose next
// birthday occurrence falls within [today, today+days] inclusive.
func (b *AddressBook) UpcomingBirthdays(days int) []*Record {
	return b.upcomingSince(time.Now(), days)
}

// upcomingSince computes the upcoming-birthday window relative to now.
// The window starts at the beginning of now's day, so a birthday on
// the current day counts for the whole day. If this year's occurrence
// has already passed, next year's occurrence is considered instead,
// which keeps early-January birthdays visible from late December.
// Feb 29 birthdays land on Mar 1 in non-leap years via time.Date
// normalization.
func (b *AddressBook) upcomingSince(now time.Time, days int) []*Record {
	start := normalizeToBeginOfDay(now)
	end := start.AddDate(0, 0, days)

	var upcoming []*Record
	for _, rec := range b.Records() {
		if rec.Birthday == nil {
			continue
		}
		bd := rec.Birthday.Time()
		next := time.Date(start.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, start.Location())
		if next.Before(start) {
			next = time.Date(start.Year()+1, bd.Month(), bd.Day(), 0, 0, 0, 0, start.Location())
		}
		if !next.After(end) {
			upcoming = append(upcoming, rec)
		}
	}
	return upcoming
}

// normalizeToBeginOfDay normalizes time to beginning of day (00:00:00).
func normalizeToBeginOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

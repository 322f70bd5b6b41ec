// Package store provides persistence for the address book.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"contactbook/db"
	"contactbook/model"
)

// BookStore loads and saves a whole address book. Saving always
// replaces the previously stored state; there is no incremental
// persistence.
type BookStore interface {
	// Load reads the entire stored address book. A store with no
	// persisted state returns an empty book.
	Load(ctx context.Context) (*model.AddressBook, error)
	// Save writes the entire address book, replacing any prior state.
	Save(ctx context.Context, book *model.AddressBook) error
	// Close closes the store's connection.
	Close() error
}

// SQLiteStore is a BookStore backed by a single SQLite database file.
type SQLiteStore struct {
	conn    *sql.DB
	queries *db.Queries
}

// NewSQLiteStore opens (or creates) the database under dataDir and
// applies migrate to it.
func NewSQLiteStore(dataDir string, migrate func(*sql.DB) error) (*SQLiteStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "contacts.db")

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLiteStore{
		conn:    conn,
		queries: db.New(conn),
	}, nil
}

// Load reads every stored contact and rebuilds the address book in
// stored order.
func (s *SQLiteStore) Load(ctx context.Context) (*model.AddressBook, error) {
	contacts, err := s.queries.ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	phones, err := s.queries.ListPhones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list phones: %w", err)
	}

	phonesByContact := make(map[string][]string)
	for _, p := range phones {
		phonesByContact[p.ContactID] = append(phonesByContact[p.ContactID], p.Number)
	}

	book := model.NewAddressBook()
	for _, c := range contacts {
		id, err := uuid.Parse(c.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid contact id %q: %w", c.ID, err)
		}
		rec, err := model.LoadRecord(id, c.Name, phonesByContact[c.ID], c.Birthday.String)
		if err != nil {
			return nil, fmt.Errorf("invalid stored contact %q: %w", c.Name, err)
		}
		book.AddRecord(rec)
	}
	return book, nil
}

// Save replaces the stored state with the given book in a single
// transaction.
func (s *SQLiteStore) Save(ctx context.Context, book *model.AddressBook) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := s.queries.WithTx(tx)

	if err := q.DeleteAllPhones(ctx); err != nil {
		return fmt.Errorf("failed to clear phones: %w", err)
	}
	if err := q.DeleteAllContacts(ctx); err != nil {
		return fmt.Errorf("failed to clear contacts: %w", err)
	}

	for pos, rec := range book.Records() {
		birthday := sql.NullString{}
		if rec.Birthday != nil {
			birthday = sql.NullString{String: rec.Birthday.String(), Valid: true}
		}
		err := q.CreateContact(ctx, db.CreateContactParams{
			ID:       rec.ID.String(),
			Name:     rec.Name.String(),
			Birthday: birthday,
			Position: int64(pos),
		})
		if err != nil {
			return fmt.Errorf("failed to save contact %q: %w", rec.Name, err)
		}
		for i, phone := range rec.Phones {
			err := q.CreatePhone(ctx, db.CreatePhoneParams{
				ContactID: rec.ID.String(),
				Position:  int64(i),
				Number:    phone.String(),
			})
			if err != nil {
				return fmt.Errorf("failed to save phone for %q: %w", rec.Name, err)
			}
		}
	}

	return tx.Commit()
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

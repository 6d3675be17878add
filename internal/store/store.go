package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// Store wraps the database connection and owns every task, group and tag
// record. One Store is constructed per process and handed to all callers;
// there is no ambient global state.
type Store struct {
	db *sql.DB

	// newID and now are swappable in tests.
	newID func() string
	now   func() time.Time
}

// New opens the database at path, creating it and its parent directory if
// needed, and initializes the schema.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStorage, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	// Serialized access keeps multi-statement mutations atomic for readers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return &Store{
		db:    db,
		newID: uuid.NewString,
		now:   time.Now,
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// inTx runs fn inside a transaction, committing on success and rolling back
// on error. Cascading mutations use it so readers never observe a
// half-applied change.
func (s *Store) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

// storageErr tags a driver error with the ErrStorage kind.
func storageErr(err error) error {
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

// today returns the current date in the ISO form due dates are stored in.
func (s *Store) today() string {
	return s.now().Format("2006-01-02")
}

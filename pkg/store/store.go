// Package store implements the persistent database of width overrides.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/elves/wcwidth/pkg/logutil"
	"github.com/elves/wcwidth/pkg/store/storedefs"
	bolt "go.etcd.io/bbolt"
)

var logger = logutil.GetLogger("[store] ")

// DBStore is the permanent storage backend for overrides.
type DBStore interface {
	storedefs.Store
	Close() error
}

var initDB = map[string](func(*bolt.Tx) error){}

type dbStore struct {
	db *bolt.DB
}

func dbWithDefaultOptions(dbname string, readOnly bool) (*bolt.DB, error) {
	db, err := bolt.Open(dbname, 0644,
		&bolt.Options{Timeout: 1 * time.Second, ReadOnly: readOnly})
	logger.Printf("db.Open(%s) -> (%p, %v)", dbname, db, err)
	return db, err
}

// NewStore creates a new Store from the given file, creating the file and its
// parent directory if needed.
func NewStore(dbname string) (DBStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbname), 0700); err != nil {
		return nil, err
	}
	db, err := dbWithDefaultOptions(dbname, false)
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

// OpenReadOnly opens an existing database for reading. Write operations on
// the returned Store fail.
func OpenReadOnly(dbname string) (DBStore, error) {
	db, err := dbWithDefaultOptions(dbname, true)
	if err != nil {
		return nil, err
	}
	return &dbStore{db}, nil
}

// NewStoreFromDB creates a new Store from a bolt DB, initializing all the
// buckets.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")
	st := &dbStore{db}

	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// Close closes the underlying database.
func (s *dbStore) Close() error {
	return s.db.Close()
}

// ReadOverrides returns the overrides stored in the database at path, opened
// read-only. A database that doesn't exist, or an empty path, has no
// overrides.
func ReadOverrides(path string) (map[rune]int, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		logger.Printf("no database at %s", path)
		return nil, nil
	}
	st, err := OpenReadOnly(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer st.Close()
	return st.Overrides()
}

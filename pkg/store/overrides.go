package store

import (
	"encoding/binary"
	"strconv"

	. "github.com/elves/wcwidth/pkg/store/storedefs"
	bolt "go.etcd.io/bbolt"
)

const bucketOverrides = "overrides"

func init() {
	initDB["initialize override table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketOverrides))
		return err
	}
}

// Keys are big-endian so that iteration follows codepoint order.
func marshalRune(r rune) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(r))
	return b
}

func unmarshalRune(b []byte) rune {
	return rune(binary.BigEndian.Uint32(b))
}

// Override returns the stored override width of a rune.
func (s *dbStore) Override(r rune) (int, error) {
	var w int
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketOverrides))
		if b == nil {
			return ErrNoOverride
		}
		v := b.Get(marshalRune(r))
		if v == nil {
			return ErrNoOverride
		}
		var err error
		w, err = strconv.Atoi(string(v))
		return err
	})
	return w, err
}

// SetOverride stores the override width of a rune.
func (s *dbStore) SetOverride(r rune, w int) error {
	if w < 0 || w > MaxWidth {
		return &InvalidWidthError{Rune: r, Width: w}
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketOverrides))
		return b.Put(marshalRune(r), []byte(strconv.Itoa(w)))
	})
}

// DelOverride deletes the override of a rune. It is not an error if there is
// no such override.
func (s *dbStore) DelOverride(r rune) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketOverrides))
		return b.Delete(marshalRune(r))
	})
}

// Overrides returns all the stored overrides.
func (s *dbStore) Overrides() (map[rune]int, error) {
	m := make(map[rune]int)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketOverrides))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			w, err := strconv.Atoi(string(v))
			if err != nil {
				return err
			}
			m[unmarshalRune(k)] = w
			return nil
		})
	})
	return m, err
}

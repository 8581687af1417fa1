// Package bbolt implements the ports.Storage interface using bbolt
// (embedded B+ tree). References live in a single bucket keyed by name
// with JSON values. Writes are transactional — a crash mid-write cannot
// corrupt previously committed references.
package bbolt

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/emilminas/copycheck/internal/ports"
	bolt "go.etcd.io/bbolt"
)

var bucketRefs = []byte("references")

// Store implements ports.Storage backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveReference stores a reference, overwriting any prior one with the
// same name.
func (s *Store) SaveReference(ref *ports.Reference) error {
	if ref == nil {
		return fmt.Errorf("nil reference")
	}
	if ref.Name == "" {
		return fmt.Errorf("reference name must not be empty")
	}

	data, err := json.Marshal(ref)
	if err != nil {
		return fmt.Errorf("marshal reference: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketRefs)
		if err != nil {
			return err
		}
		return b.Put([]byte(ref.Name), data)
	})
}

// LoadReference retrieves a reference by name.
// Returns nil, nil when no such reference exists.
func (s *Store) LoadReference(name string) (*ports.Reference, error) {
	var data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRefs)
		if b == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := b.Get([]byte(name)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var ref ports.Reference
	if err := json.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("unmarshal reference %q: %w", name, err)
	}
	return &ref, nil
}

// ListReferences returns all stored references sorted by name.
func (s *Store) ListReferences() ([]*ports.Reference, error) {
	var refs []*ports.Reference

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRefs)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var ref ports.Reference
			if err := json.Unmarshal(v, &ref); err != nil {
				return fmt.Errorf("unmarshal reference %q: %w", k, err)
			}
			refs = append(refs, &ref)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

// DeleteReference removes a reference by name. Idempotent.
func (s *Store) DeleteReference(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRefs)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(name))
	})
}

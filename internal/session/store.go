package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
)

var (
	bucketSession = []byte("session")
	keySession    = []byte("current")
)

// Store persists the server session record in BoltDB. A single key
// holds the serialized session; last write wins. Absence or an
// unparseable record is equivalent to "no session".
type Store struct {
	db *bolt.DB
}

// NewStore opens (creating if needed) the session database under dir
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "session.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Save persists the full session record, overwriting any prior value.
// Field shapes are the caller's responsibility.
func (s *Store) Save(sess domain.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put(keySession, data)
	})
}

// Load returns the stored session, or nil if none exists or the stored
// record cannot be parsed (corrupt data is treated as absent, not as
// an error).
func (s *Store) Load() (*domain.Session, error) {
	var sess *domain.Session

	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketSession).Get(keySession)
		if data == nil {
			return nil
		}

		var decoded domain.Session
		if err := json.Unmarshal(data, &decoded); err != nil {
			return nil
		}
		sess = &decoded
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sess, nil
}

// Clear removes the stored session unconditionally; idempotent
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Delete(keySession)
	})
}

// Close releases the underlying database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

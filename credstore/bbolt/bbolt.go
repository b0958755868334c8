// Package bbolt provides a BBolt-backed credential store.
package bbolt

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/minhle/roomstay/credstore"
	"github.com/minhle/roomstay/internal/util"
)

var (
	bucketName = []byte("credentials")
	recordKey  = []byte("current")
)

// Store implements credstore.Store backed by a BBolt database. The
// stored record is sealed with the caller-supplied 32-byte secret, so
// the database file alone does not expose the bearer token.
type Store struct {
	db     *bbolt.DB
	secret []byte
}

var _ credstore.Store = (*Store)(nil)

// NewStore returns a Store backed by the given BBolt database.
func NewStore(db *bbolt.DB, secret []byte) (*Store, error) {
	if len(secret) != util.AESKeySize {
		return nil, fmt.Errorf("%w, got %d", credstore.ErrKeySize, len(secret))
	}
	return &Store{db: db, secret: util.CopyBytes(secret)}, nil
}

// NewStoreFromFile opens a BBolt database at the given path and returns
// a new Store.
func NewStoreFromFile(path string, secret []byte, options *bbolt.Options) (*Store, error) {
	db, err := bbolt.Open(path, 0600, options)
	if err != nil {
		return nil, fmt.Errorf("opening bbolt db: %w", err)
	}
	s, err := NewStore(db, secret)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close wipes the sealing secret and closes the underlying database.
func (s *Store) Close() error {
	util.WipeBytes(s.secret)
	return s.db.Close()
}

func (s *Store) Load() (credstore.Credential, bool, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		if v := b.Get(recordKey); v != nil {
			data = util.CopyBytes(v)
		}
		return nil
	})
	if err != nil {
		return credstore.Credential{}, false, err
	}
	if data == nil {
		return credstore.Credential{}, false, nil
	}

	var env credstore.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		// Corrupt record. Treat as absent; the next Save overwrites it.
		return credstore.Credential{}, false, nil
	}
	cred, err := credstore.OpenCredential(s.secret, &env)
	if err != nil {
		// Wrong keyfile or tampered record. Treat as absent.
		return credstore.Credential{}, false, nil
	}
	return cred, true, nil
}

func (s *Store) Save(cred credstore.Credential) error {
	env, err := credstore.SealCredential(s.secret, cred)
	if err != nil {
		return err
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encoding envelope: %w", err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		return b.Put(recordKey, data)
	})
}

func (s *Store) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		return b.Delete(recordKey)
	})
}

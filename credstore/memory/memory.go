// Package memory provides a thread-safe in-memory credential store.
package memory

import (
	"sync"

	"github.com/minhle/roomstay/credstore"
)

// Store is an in-memory implementation of credstore.Store. Suitable for
// tests and throwaway sessions that should not outlive the process.
type Store struct {
	mu   sync.RWMutex
	cred credstore.Credential
	set  bool
}

var _ credstore.Store = (*Store)(nil)

// NewStore creates a new empty in-memory Store.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load() (credstore.Credential, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return credstore.Credential{}, false, nil
	}
	return s.cred, true, nil
}

func (s *Store) Save(cred credstore.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = cred
	s.set = true
	return nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = credstore.Credential{}
	s.set = false
	return nil
}

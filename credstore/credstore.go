// Package credstore provides durable storage for the single persisted
// credential (bearer token plus user ID) that survives process restarts.
package credstore

import "errors"

// ErrKeySize is returned when a sealing secret of the wrong length is supplied.
var ErrKeySize = errors.New("sealing secret must be exactly 32 bytes")

// Credential is the persisted pair written on successful sign-in and
// erased on sign-out or on a rejected hydration.
type Credential struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
}

// Store abstracts credential persistence so the session layer can run
// against a durable backend (bbolt) or an in-memory one (tests).
type Store interface {
	// Load returns the stored credential. The second return is false when
	// no credential is stored or the stored record cannot be opened.
	Load() (Credential, bool, error)
	// Save replaces the stored credential.
	Save(cred Credential) error
	// Clear erases the stored credential. Clearing an empty store is a no-op.
	Clear() error
}

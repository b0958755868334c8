package session

import (
	"sync"

	"github.com/awnumar/memguard"

	"github.com/minhle/roomstay/credstore"
)

// TokenKeeper holds the bearer token for outgoing requests in a
// memguard enclave (encrypted at rest in memory). It implements
// client.TokenSource.
//
// When the enclave is empty (a fresh process that has not hydrated or
// signed in yet), Token falls back to the credential store, so requests
// issued before hydration still carry the persisted token.
type TokenKeeper struct {
	mu      sync.Mutex
	creds   credstore.Store
	enclave *memguard.Enclave
}

// NewTokenKeeper creates a keeper that falls back to creds when no
// token has been armed. creds may be nil.
func NewTokenKeeper(creds credstore.Store) *TokenKeeper {
	return &TokenKeeper{creds: creds}
}

// Set arms the keeper with a token. An empty token clears it.
func (k *TokenKeeper) Set(token string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if token == "" {
		k.enclave = nil
		return
	}
	k.enclave = memguard.NewEnclave([]byte(token))
}

// Clear drops the held token.
func (k *TokenKeeper) Clear() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.enclave = nil
}

// Token returns the current bearer token. The second return is false
// when no token is armed and none is persisted.
func (k *TokenKeeper) Token() (string, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.enclave == nil {
		if k.creds == nil {
			return "", false
		}
		cred, ok, err := k.creds.Load()
		if err != nil || !ok || cred.Token == "" {
			return "", false
		}
		k.enclave = memguard.NewEnclave([]byte(cred.Token))
		return cred.Token, true
	}

	buf, err := k.enclave.Open()
	if err != nil {
		return "", false
	}
	defer buf.Destroy()
	return string(buf.Bytes()), true
}

package bbolt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/roomstay/credstore"
	"github.com/minhle/roomstay/internal/util"
)

func newTestStore(t *testing.T, secret []byte) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "creds.db")
	s, err := NewStoreFromFile(path, secret, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testSecret(t *testing.T) []byte {
	t.Helper()
	secret, err := util.RandomBytes(32)
	require.NoError(t, err)
	return secret
}

func TestStoreRoundTrip(t *testing.T) {
	s := newTestStore(t, testSecret(t))

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	cred := credstore.Credential{Token: "tok-123", UserID: 7}
	require.NoError(t, s.Save(cred))

	got, ok, err := s.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, cred, got)
}

func TestStoreClear(t *testing.T) {
	s := newTestStore(t, testSecret(t))

	// Clearing an empty store is a no-op.
	require.NoError(t, s.Clear())

	require.NoError(t, s.Save(credstore.Credential{Token: "tok", UserID: 1}))
	require.NoError(t, s.Clear())

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreSurvivesReopen(t *testing.T) {
	secret := testSecret(t)
	path := filepath.Join(t.TempDir(), "creds.db")

	s, err := NewStoreFromFile(path, secret, nil)
	require.NoError(t, err)
	require.NoError(t, s.Save(credstore.Credential{Token: "tok", UserID: 9}))
	require.NoError(t, s.Close())

	s, err = NewStoreFromFile(path, secret, nil)
	require.NoError(t, err)
	defer s.Close()

	got, ok, err := s.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(9), got.UserID)
}

func TestStoreWrongSecretLoadsAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.db")

	s, err := NewStoreFromFile(path, testSecret(t), nil)
	require.NoError(t, err)
	require.NoError(t, s.Save(credstore.Credential{Token: "tok", UserID: 3}))
	require.NoError(t, s.Close())

	s, err = NewStoreFromFile(path, testSecret(t), nil)
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewStoreRejectsShortSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.db")
	_, err := NewStoreFromFile(path, []byte("short"), nil)
	assert.ErrorIs(t, err, credstore.ErrKeySize)
}

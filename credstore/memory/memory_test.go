package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/roomstay/credstore"
)

func TestStore(t *testing.T) {
	s := NewStore()

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	cred := credstore.Credential{Token: "tok", UserID: 5}
	require.NoError(t, s.Save(cred))

	got, ok, err := s.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, cred, got)

	require.NoError(t, s.Clear())
	_, ok, err = s.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	// Clear is idempotent.
	require.NoError(t, s.Clear())
}

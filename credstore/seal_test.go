package credstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/roomstay/internal/util"
)

func TestSealOpenCredential(t *testing.T) {
	secret, err := util.RandomBytes(32)
	require.NoError(t, err)

	cred := Credential{Token: "bearer-token", UserID: 42}

	env, err := SealCredential(secret, cred)
	require.NoError(t, err)
	assert.Equal(t, 1, env.Ver)
	assert.Equal(t, "aes256gcm", env.Scheme)
	assert.Len(t, env.Nonce, 12)

	got, err := OpenCredential(secret, env)
	require.NoError(t, err)
	assert.Equal(t, cred, got)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := util.RandomBytes(32)
		require.NoError(t, err)
		_, err = OpenCredential(other, env)
		assert.Error(t, err)
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		bad := *env
		bad.Ciphertext = util.CopyBytes(env.Ciphertext)
		bad.Ciphertext[0] ^= 0xff
		_, err := OpenCredential(secret, &bad)
		assert.Error(t, err)
	})

	t.Run("unsupported scheme", func(t *testing.T) {
		bad := *env
		bad.Scheme = "raw"
		_, err := OpenCredential(secret, &bad)
		assert.Error(t, err)
	})

	t.Run("short secret", func(t *testing.T) {
		_, err := SealCredential(secret[:16], cred)
		assert.ErrorIs(t, err, ErrKeySize)
	})
}

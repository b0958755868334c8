package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptAESWithAAD(t *testing.T) {
	key, err := RandomBytes(AESKeySize)
	require.NoError(t, err)

	plaintext := []byte("credential record")
	aad := []byte("roomstay:credential:v1")

	sealed, err := EncryptAESWithAAD(plaintext, key, aad)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, sealed)

	opened, err := DecryptAESWithAAD(sealed, key, aad)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)

	t.Run("wrong AAD fails", func(t *testing.T) {
		_, err := DecryptAESWithAAD(sealed, key, []byte("other"))
		assert.Error(t, err)
	})

	t.Run("tampered ciphertext fails", func(t *testing.T) {
		bad := CopyBytes(sealed)
		bad[len(bad)-1] ^= 0xff
		_, err := DecryptAESWithAAD(bad, key, aad)
		assert.Error(t, err)
	})

	t.Run("bad key size", func(t *testing.T) {
		_, err := EncryptAESWithAAD(plaintext, key[:16], aad)
		assert.Error(t, err)
	})
}

func TestHKDF(t *testing.T) {
	seed := []byte("0123456789abcdef0123456789abcdef")

	k1, err := HKDF(seed, nil, []byte("info-a"))
	require.NoError(t, err)
	k2, err := HKDF(seed, nil, []byte("info-a"))
	require.NoError(t, err)
	k3, err := HKDF(seed, nil, []byte("info-b"))
	require.NoError(t, err)

	assert.Len(t, k1, HKDFKeyLength)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}

func TestWipeBytes(t *testing.T) {
	b := []byte{1, 2, 3}
	WipeBytes(b)
	assert.Equal(t, []byte{0, 0, 0}, b)
}

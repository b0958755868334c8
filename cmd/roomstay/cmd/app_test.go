package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/roomstay/internal/util"
)

func TestLoadOrCreateSecret_FirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.key")

	secret, err := loadOrCreateSecret(path)
	require.NoError(t, err)
	assert.Len(t, secret, util.AESKeySize)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadOrCreateSecret_Stable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.key")

	first, err := loadOrCreateSecret(path)
	require.NoError(t, err)
	second, err := loadOrCreateSecret(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLoadOrCreateSecret_RejectsTruncatedKeyfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.key")
	require.NoError(t, os.WriteFile(path, []byte("short"), 0o600))

	_, err := loadOrCreateSecret(path)
	assert.Error(t, err)
}

func TestRoomFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.json")
	payload := `{"tenPhong":"Studio A","giaTien":500000,"khach":2,"maViTri":5}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	room, err := roomFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Studio A", room.Name)
	assert.Equal(t, int64(500000), room.PricePerNight)
	assert.Equal(t, 2, room.MaxGuests)
	assert.Equal(t, int64(5), room.LocationID)
}

func TestRoomFromFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := roomFromFile(path)
	assert.Error(t, err)
}

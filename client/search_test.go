package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/roomstay/client"
)

func TestFilterRooms(t *testing.T) {
	rooms := []client.Room{
		{ID: 1, Name: "Studio Saigon View", Description: "Căn hộ studio trung tâm"},
		{ID: 2, Name: "Garden Villa", Description: "Biệt thự có hồ bơi riêng"},
		{ID: 3, Name: "Loft Đà Lạt", Description: "View đồi thông, gần chợ"},
	}

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got := client.FilterRooms(rooms, "STUDIO")
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("matches description", func(t *testing.T) {
		got := client.FilterRooms(rooms, "hồ bơi")
		require.Len(t, got, 1)
		assert.Equal(t, int64(2), got[0].ID)
	})

	t.Run("blank keyword keeps everything", func(t *testing.T) {
		assert.Len(t, client.FilterRooms(rooms, ""), 3)
		assert.Len(t, client.FilterRooms(rooms, "   "), 3)
	})

	t.Run("keyword is trimmed before matching", func(t *testing.T) {
		got := client.FilterRooms(rooms, "  villa  ")
		require.Len(t, got, 1)
		assert.Equal(t, int64(2), got[0].ID)
	})

	t.Run("no match yields empty", func(t *testing.T) {
		assert.Empty(t, client.FilterRooms(rooms, "penthouse"))
	})
}

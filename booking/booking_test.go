package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"two nights", "2024-01-01", "2024-01-03", 2},
		{"one night", "2024-01-01", "2024-01-02", 1},
		{"same day", "2024-01-01", "2024-01-01", 0},
		{"checkout before checkin", "2024-01-03", "2024-01-01", -2},
		{"across month boundary", "2024-01-31", "2024-02-02", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(date(tt.checkIn), date(tt.checkOut)))
		})
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, int64(1000000), Quote(500000, 2))
	assert.Equal(t, int64(0), Quote(500000, 0))
	assert.Equal(t, int64(0), Quote(500000, -1))
}

func TestClampGuests(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		maxGuests int
		want      int
	}{
		{"within range", 3, 4, 3},
		{"above max", 10, 4, 4},
		{"zero", 0, 4, 1},
		{"negative", -2, 4, 1},
		{"at max", 4, 4, 4},
		{"degenerate max", 2, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampGuests(tt.n, tt.maxGuests))
		})
	}
}

func TestValidateStay(t *testing.T) {
	valid := Stay{
		RoomID:    42,
		CheckIn:   date("2024-01-01"),
		CheckOut:  date("2024-01-03"),
		Guests:    2,
		MaxGuests: 4,
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateStay(valid))
	})

	t.Run("missing dates", func(t *testing.T) {
		s := valid
		s.CheckIn = time.Time{}
		assert.ErrorIs(t, ValidateStay(s), ErrValidation)
	})

	t.Run("checkout equals checkin", func(t *testing.T) {
		s := valid
		s.CheckOut = s.CheckIn
		assert.ErrorIs(t, ValidateStay(s), ErrValidation)
	})

	t.Run("checkout before checkin", func(t *testing.T) {
		s := valid
		s.CheckIn, s.CheckOut = s.CheckOut, s.CheckIn
		assert.ErrorIs(t, ValidateStay(s), ErrValidation)
	})

	t.Run("too many guests", func(t *testing.T) {
		s := valid
		s.Guests = 10
		assert.ErrorIs(t, ValidateStay(s), ErrValidation)
	})

	t.Run("zero guests", func(t *testing.T) {
		s := valid
		s.Guests = 0
		assert.ErrorIs(t, ValidateStay(s), ErrValidation)
	})
}

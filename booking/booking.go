// Package booking holds the client-side stay rules: night counting,
// price quoting, and the validation that blocks a reservation from ever
// reaching the network when it cannot be valid.
package booking

import (
	"math"
	"time"
)

// Nights returns the length of a stay in nights: the difference between
// check-out and check-in rounded to whole days. DST transitions make a
// calendar day slightly shorter or longer than 24h, which is why this
// rounds rather than truncates.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Round(checkOut.Sub(checkIn).Hours() / 24))
}

// Quote is the total price for a stay. Prices are integer VND per
// night; the backend has no fractional prices.
func Quote(pricePerNight int64, nights int) int64 {
	if nights < 0 {
		return 0
	}
	return pricePerNight * int64(nights)
}

// ClampGuests forces a guest count into [1, maxGuests] on every edit.
// A non-positive maxGuests degrades to a limit of one rather than an
// unsatisfiable range.
func ClampGuests(n, maxGuests int) int {
	if maxGuests < 1 {
		maxGuests = 1
	}
	if n < 1 {
		return 1
	}
	if n > maxGuests {
		return maxGuests
	}
	return n
}

// Stay is a reservation request before submission.
type Stay struct {
	RoomID    int64
	CheckIn   time.Time
	CheckOut  time.Time
	Guests    int
	MaxGuests int
}

// ValidateStay enforces the rules the client owns regardless of what
// the backend would also reject: at least one night, and a guest count
// already inside [1, MaxGuests].
func ValidateStay(s Stay) error {
	if s.CheckIn.IsZero() || s.CheckOut.IsZero() {
		return validationErrorf("check-in and check-out dates are required")
	}
	if Nights(s.CheckIn, s.CheckOut) <= 0 {
		return validationErrorf("check-out must be after check-in")
	}
	if s.Guests != ClampGuests(s.Guests, s.MaxGuests) {
		return validationErrorf("guest count %d is outside [1, %d]", s.Guests, s.MaxGuests)
	}
	return nil
}

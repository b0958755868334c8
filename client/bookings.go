package client

import (
	"context"
	"net/http"
	"strconv"
)

// BookingsByUser returns a user's reservations.
func (c *Client) BookingsByUser(ctx context.Context, userID int64) ([]Booking, error) {
	return call[[]Booking](ctx, c, http.MethodGet, "/dat-phong/lay-theo-nguoi-dung/"+strconv.FormatInt(userID, 10), nil, nil)
}

// CreateBooking submits a reservation. Conflict checks are the
// backend's responsibility; callers are expected to have validated the
// stay client-side first (see the booking package).
func (c *Client) CreateBooking(ctx context.Context, input BookingInput) (*Booking, error) {
	return call[*Booking](ctx, c, http.MethodPost, "/dat-phong", nil, input)
}

// DeleteBooking cancels a reservation.
func (c *Client) DeleteBooking(ctx context.Context, bookingID int64) error {
	_, err := call[string](ctx, c, http.MethodDelete, "/dat-phong/"+strconv.FormatInt(bookingID, 10), nil, nil)
	return err
}

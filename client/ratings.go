package client

import (
	"context"
	"net/http"
	"strconv"
)

// RatingsByRoom returns a room's ratings joined with their authors.
func (c *Client) RatingsByRoom(ctx context.Context, roomID int64) ([]RatingWithUser, error) {
	return call[[]RatingWithUser](ctx, c, http.MethodGet, "/binh-luan/lay-binh-luan-theo-phong/"+strconv.FormatInt(roomID, 10), nil, nil)
}

// CreateRating posts a new rating. The backend attributes it to the
// bearer token's user.
func (c *Client) CreateRating(ctx context.Context, input RatingInput) (*Rating, error) {
	return call[*Rating](ctx, c, http.MethodPost, "/binh-luan", nil, input)
}

// UpdateRating replaces an existing rating.
func (c *Client) UpdateRating(ctx context.Context, ratingID int64, input RatingInput) (*Rating, error) {
	return call[*Rating](ctx, c, http.MethodPut, "/binh-luan/"+strconv.FormatInt(ratingID, 10), nil, input)
}

// DeleteRating removes a rating.
func (c *Client) DeleteRating(ctx context.Context, ratingID int64) error {
	_, err := call[string](ctx, c, http.MethodDelete, "/binh-luan/"+strconv.FormatInt(ratingID, 10), nil, nil)
	return err
}

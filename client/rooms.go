package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// ListRooms returns all listings.
func (c *Client) ListRooms(ctx context.Context) ([]Room, error) {
	return call[[]Room](ctx, c, http.MethodGet, "/phong-thue", nil, nil)
}

// GetRoom reads one listing by ID.
func (c *Client) GetRoom(ctx context.Context, roomID int64) (*Room, error) {
	return call[*Room](ctx, c, http.MethodGet, "/phong-thue/"+strconv.FormatInt(roomID, 10), nil, nil)
}

// RoomsByLocation returns the listings in one location.
func (c *Client) RoomsByLocation(ctx context.Context, locationID int64) ([]Room, error) {
	q := url.Values{}
	q.Set("maViTri", strconv.FormatInt(locationID, 10))
	return call[[]Room](ctx, c, http.MethodGet, "/phong-thue/lay-phong-theo-vi-tri", q, nil)
}

// CreateRoom creates a listing. Admin only.
func (c *Client) CreateRoom(ctx context.Context, room Room) (*Room, error) {
	return call[*Room](ctx, c, http.MethodPost, "/phong-thue", nil, room)
}

// UpdateRoom replaces a listing. Admin only.
func (c *Client) UpdateRoom(ctx context.Context, roomID int64, room Room) (*Room, error) {
	return call[*Room](ctx, c, http.MethodPut, "/phong-thue/"+strconv.FormatInt(roomID, 10), nil, room)
}

// DeleteRoom removes a listing. Admin only.
func (c *Client) DeleteRoom(ctx context.Context, roomID int64) error {
	_, err := call[string](ctx, c, http.MethodDelete, "/phong-thue/"+strconv.FormatInt(roomID, 10), nil, nil)
	return err
}

// UploadRoomImage uploads a listing photo. Admin only.
func (c *Client) UploadRoomImage(ctx context.Context, roomID int64, filename string, file io.Reader) (*Room, error) {
	q := url.Values{}
	q.Set("maPhong", strconv.FormatInt(roomID, 10))
	return upload[*Room](ctx, c, "/phong-thue/upload-hinh-phong", q, filename, file)
}

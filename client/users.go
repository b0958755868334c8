package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// GetUser reads a user profile by ID.
func (c *Client) GetUser(ctx context.Context, userID int64) (*User, error) {
	return call[*User](ctx, c, http.MethodGet, "/users/"+strconv.FormatInt(userID, 10), nil, nil)
}

// UpdateUser replaces a user profile. Used both for self-service profile
// edits and by admins.
func (c *Client) UpdateUser(ctx context.Context, userID int64, user User) (*User, error) {
	return call[*User](ctx, c, http.MethodPut, "/users/"+strconv.FormatInt(userID, 10), nil, user)
}

// UploadAvatar uploads a new avatar for the signed-in user and returns
// the updated profile. The backend resolves the target user from the
// bearer token.
func (c *Client) UploadAvatar(ctx context.Context, filename string, file io.Reader) (*User, error) {
	return upload[*User](ctx, c, "/users/upload-avatar", nil, filename, file)
}

// SearchUsers returns one page of the admin user search. pageIndex is
// 1-based; keyword may be empty.
func (c *Client) SearchUsers(ctx context.Context, pageIndex, pageSize int, keyword string) (*UserPage, error) {
	q := url.Values{}
	q.Set("pageIndex", strconv.Itoa(pageIndex))
	q.Set("pageSize", strconv.Itoa(pageSize))
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	return call[*UserPage](ctx, c, http.MethodGet, "/users/phan-trang-tim-kiem", q, nil)
}

// CreateUser creates an account on behalf of an admin.
func (c *Client) CreateUser(ctx context.Context, user User) (*User, error) {
	return call[*User](ctx, c, http.MethodPost, "/users", nil, user)
}

// DeleteUser removes an account. Admin only.
func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	q := url.Values{}
	q.Set("id", strconv.FormatInt(userID, 10))
	_, err := call[string](ctx, c, http.MethodDelete, "/users", q, nil)
	return err
}

package client

import (
	"context"
	"net/http"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn exchanges credentials for a bearer token and the signed-in
// user. The returned token is not persisted here; session ownership
// lives with the caller.
func (c *Client) SignIn(ctx context.Context, email, password string) (*AuthResponse, error) {
	return call[*AuthResponse](ctx, c, http.MethodPost, "/auth/signin", nil, signInRequest{
		Email:    email,
		Password: password,
	})
}

// SignUp creates a new account. The backend does not sign the account
// in; callers follow up with SignIn.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*User, error) {
	return call[*User](ctx, c, http.MethodPost, "/auth/signup", nil, req)
}

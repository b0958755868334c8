package client

import (
	"errors"
	"fmt"
)

// ErrTransport indicates the request never produced a usable backend
// response: network unreachable, timeout, or an unreadable body. It is
// deliberately generic; callers surface one localized failure message
// for the whole class.
var ErrTransport = errors.New("transport failure")

// APIError is a domain failure: the HTTP exchange succeeded but the
// response envelope carries a non-success status code and a message
// meant for the user.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// AsAPIError unwraps err into an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// UserMessage returns the backend's message for domain failures and the
// provided fallback for everything else.
func UserMessage(err error, fallback string) string {
	if apiErr, ok := AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

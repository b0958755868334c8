// Package client is a typed HTTP client for the remote booking
// marketplace API. It owns no business logic: every call is a single
// request/response against the backend, with no retries, caching, or
// timeout policy beyond transport defaults.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"

	"github.com/google/uuid"
)

// The backend requires its static API key on every request under both
// of these header names.
const (
	headerAPIKey      = "TokenCybersoft"
	headerAPIKeyAlias = "tokenByClass"
	headerRequestID   = "X-Request-Id"
)

// TokenSource supplies the bearer token attached to authenticated
// requests. It is an explicit dependency: the client never reads token
// state from anywhere it was not handed.
type TokenSource interface {
	// Token returns the current bearer token. The second return is false
	// when no token is available, in which case the request goes out
	// unauthenticated.
	Token() (string, bool)
}

// StaticToken is a fixed-token TokenSource, mainly for tests.
type StaticToken string

func (t StaticToken) Token() (string, bool) { return string(t), t != "" }

// Doer abstracts the transport so tests can substitute their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the booking backend. Safe for concurrent use.
type Client struct {
	baseURL *url.URL
	apiKey  string
	tokens  TokenSource
	http    Doer
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTokenSource sets the bearer token source for authenticated calls.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithHTTPClient sets the transport. Defaults to http.DefaultClient.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// WithLogger sets the structured logger for request debug logging.
// If not set, a default JSON logger writing to stderr is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.log = logger }
}

// New creates a Client for the backend at baseURL. apiKey is the static
// credential the backend requires on every request.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", baseURL)
	}
	c := &Client{
		baseURL: u,
		apiKey:  apiKey,
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return c, nil
}

// envelope is the uniform response wrapper every backend endpoint uses.
type envelope[T any] struct {
	StatusCode  int    `json:"statusCode"`
	Content     T      `json:"content"`
	DateTime    string `json:"dateTime"`
	Message     string `json:"message"`
	MessageCode int    `json:"messageCode"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerAPIKeyAlias, c.apiKey)
	req.Header.Set(headerRequestID, uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// exec sends the request and decodes the typed envelope. Domain
// failures return *APIError; transport failures wrap ErrTransport.
func exec[T any](c *Client, req *http.Request) (T, error) {
	var zero T

	c.log.Debug("api request",
		"method", req.Method,
		"path", req.URL.Path,
		"request_id", req.Header.Get(headerRequestID))

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		// Not an envelope. Gateways and proxies answer like this; map the
		// HTTP status so callers still get a domain-shaped failure.
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return zero, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return zero, fmt.Errorf("%w: malformed response body: %v", ErrTransport, err)
	}

	if env.StatusCode < 200 || env.StatusCode > 299 {
		c.log.Debug("api domain failure",
			"path", req.URL.Path,
			"status", env.StatusCode,
			"message_code", env.MessageCode)
		return zero, &APIError{StatusCode: env.StatusCode, Message: env.Message}
	}
	return env.Content, nil
}

// call issues a JSON request and decodes the envelope content as T.
func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, payload any) (T, error) {
	var zero T
	var body io.Reader
	contentType := ""
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return zero, fmt.Errorf("encoding payload: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	req, err := c.newRequest(ctx, method, path, query, body, contentType)
	if err != nil {
		return zero, err
	}
	return exec[T](c, req)
}

// upload issues a multipart request with a single file part named
// "formFile", as the backend's upload endpoints expect.
func upload[T any](ctx context.Context, c *Client, path string, query url.Values, filename string, file io.Reader) (T, error) {
	var zero T

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("formFile", filename)
	if err != nil {
		return zero, fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return zero, fmt.Errorf("copying file into multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return zero, fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, query, &buf, mw.FormDataContentType())
	if err != nil {
		return zero, err
	}
	return exec[T](c, req)
}

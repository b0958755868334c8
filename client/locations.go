package client

import (
	"context"
	"net/http"
	"strconv"
)

// ListLocations returns all bookable locations.
func (c *Client) ListLocations(ctx context.Context) ([]Location, error) {
	return call[[]Location](ctx, c, http.MethodGet, "/vi-tri", nil, nil)
}

// GetLocation reads one location by ID.
func (c *Client) GetLocation(ctx context.Context, locationID int64) (*Location, error) {
	return call[*Location](ctx, c, http.MethodGet, "/vi-tri/"+strconv.FormatInt(locationID, 10), nil, nil)
}

package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

// Locations returns reference cities matching query, or only the popular
// ones when popular is set.
func (c *Client) Locations(ctx context.Context, query string, popular bool) ([]domain.LocationOption, error) {
	q := url.Values{}
	if query != "" {
		q.Set("q", query)
	}
	if popular {
		q.Set("popular", "true")
	}

	var resp struct {
		Locations []domain.LocationOption `json:"locations"`
	}
	if err := c.get(ctx, withQuery("/api/v1/locations", q), &resp); err != nil {
		return nil, err
	}
	return resp.Locations, nil
}

// ResolveCity names the reference city containing the position.
func (c *Client) ResolveCity(ctx context.Context, lat, lng float64) (string, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))

	var resp struct {
		City string `json:"city"`
	}
	if err := c.get(ctx, withQuery("/api/v1/locations/resolve", q), &resp); err != nil {
		return "", err
	}
	return resp.City, nil
}

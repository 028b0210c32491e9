package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/donaldgifford/happy-arz/internal/discovery"
)

// DiscoverParams selects the position and filters for discovery calls.
// Lat/Lng are only sent when HasPosition is set.
type DiscoverParams struct {
	Search      string
	Category    string
	City        string
	Lat, Lng    float64
	HasPosition bool
}

func (p *DiscoverParams) values() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	if p.Search != "" {
		q.Set("q", p.Search)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.City != "" {
		q.Set("city", p.City)
	}
	if p.HasPosition {
		q.Set("lat", strconv.FormatFloat(p.Lat, 'f', -1, 64))
		q.Set("lng", strconv.FormatFloat(p.Lng, 'f', -1, 64))
	}
	return q
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// Discover returns the ranked discovery list.
func (c *Client) Discover(ctx context.Context, params *DiscoverParams) (*discovery.Result, error) {
	var resp discovery.Result
	if err := c.get(ctx, withQuery("/api/v1/businesses", params.values()), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Map returns the discovery list partitioned for the map screen.
func (c *Client) Map(ctx context.Context, params *DiscoverParams) (*discovery.MapResult, error) {
	var resp discovery.MapResult
	if err := c.get(ctx, withQuery("/api/v1/map", params.values()), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Saved returns the device's bookmarked businesses. Search is ignored.
func (c *Client) Saved(ctx context.Context, params *DiscoverParams) (*discovery.Result, error) {
	q := params.values()
	q.Del("q")
	var resp discovery.Result
	if err := c.get(ctx, withQuery("/api/v1/saved", q), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

package client

import (
	"context"
	"fmt"
	"net/url"
)

// Bookmarks returns the business IDs bookmarked by the configured device.
func (c *Client) Bookmarks(ctx context.Context) ([]string, error) {
	var resp struct {
		BusinessIDs []string `json:"business_ids"`
	}
	if err := c.get(ctx, "/api/v1/bookmarks", &resp); err != nil {
		return nil, err
	}
	return resp.BusinessIDs, nil
}

// ToggleBookmark flips the bookmark on businessID and reports the new state.
func (c *Client) ToggleBookmark(ctx context.Context, businessID string) (bool, error) {
	var resp struct {
		Bookmarked bool `json:"bookmarked"`
	}
	path := fmt.Sprintf("/api/v1/bookmarks/%s/toggle", url.PathEscape(businessID))
	if err := c.post(ctx, path, nil, &resp); err != nil {
		return false, err
	}
	return resp.Bookmarked, nil
}

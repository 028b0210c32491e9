package client

import (
	"context"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/happy-arz/internal/discovery"
	"github.com/donaldgifford/happy-arz/pkg/ingest"
	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

// Upload sends a spreadsheet for ingestion. The content type is derived
// from the file extension.
func (c *Client) Upload(ctx context.Context, fileName string, data []byte) (*discovery.UploadResult, error) {
	q := url.Values{}
	q.Set("filename", filepath.Base(fileName))

	var resp discovery.UploadResult
	if err := c.postRaw(ctx, withQuery("/api/v1/uploads", q), contentTypeFor(fileName), data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func contentTypeFor(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx":
		return ingest.ContentTypeXLSX
	case ".tsv", ".tab":
		return ingest.ContentTypeTSV
	case ".txt":
		return "text/plain"
	default:
		return "text/csv"
	}
}

// ListUploadsParams filters the upload history.
type ListUploadsParams struct {
	Since    time.Time
	FileName string
	Limit    int
	Offset   int
}

// UploadHistory returns recorded ingestion runs, newest first, with totals.
func (c *Client) UploadHistory(ctx context.Context, params *ListUploadsParams) (*discovery.History, error) {
	q := url.Values{}
	if params != nil {
		if !params.Since.IsZero() {
			q.Set("since", params.Since.Format(time.RFC3339))
		}
		if params.FileName != "" {
			q.Set("filename", params.FileName)
		}
		if params.Limit > 0 {
			q.Set("limit", strconv.Itoa(params.Limit))
		}
		if params.Offset > 0 {
			q.Set("offset", strconv.Itoa(params.Offset))
		}
	}

	var resp discovery.History
	if err := c.get(ctx, withQuery("/api/v1/uploads", q), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verified returns the current verified set.
func (c *Client) Verified(ctx context.Context) ([]domain.Business, error) {
	var resp struct {
		Businesses []domain.Business `json:"businesses"`
	}
	if err := c.get(ctx, "/api/v1/verified", &resp); err != nil {
		return nil, err
	}
	return resp.Businesses, nil
}

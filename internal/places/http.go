package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/donaldgifford/happy-arz/internal/metrics"
	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

const defaultNearbyURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"

// HTTPSource implements Source against a Google-Places-shaped nearby search
// endpoint.
type HTTPSource struct {
	apiKey      string
	nearbyURL   string
	client      *http.Client
	rateLimiter *RateLimiter
}

// HTTPOption configures the HTTPSource.
type HTTPOption func(*HTTPSource)

// WithNearbyURL overrides the default nearby search endpoint.
func WithNearbyURL(u string) HTTPOption {
	return func(s *HTTPSource) {
		s.nearbyURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		s.client = hc
	}
}

// WithRateLimiter makes every Nearby call wait on r first.
func WithRateLimiter(r *RateLimiter) HTTPOption {
	return func(s *HTTPSource) {
		s.rateLimiter = r
	}
}

// NewHTTPSource creates a nearby-places client. apiKey may be empty for
// endpoints that do not require one.
func NewHTTPSource(apiKey string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		apiKey:    apiKey,
		nearbyURL: defaultNearbyURL,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Nearby implements Source.
func (s *HTTPSource) Nearby(ctx context.Context, req NearbyRequest) ([]domain.Business, error) {
	if s.rateLimiter != nil {
		if err := s.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.PlacesDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.PlacesAPICallsTotal.Inc()
		metrics.PlacesDailyUsage.Set(float64(s.rateLimiter.DailyCount()))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.buildURL(req), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing nearby request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places API error (status %d): %s", resp.StatusCode, string(body))
	}

	var apiResp nearbyAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parsing nearby response: %w", err)
	}

	switch apiResp.Status {
	case statusOK, statusZeroResults:
	default:
		return nil, fmt.Errorf("places API status %s: %s", apiResp.Status, apiResp.ErrorMessage)
	}

	return ToBusinesses(apiResp.Results), nil
}

func (s *HTTPSource) buildURL(req NearbyRequest) string {
	params := url.Values{}
	params.Set("location",
		strconv.FormatFloat(req.Latitude, 'f', -1, 64)+","+strconv.FormatFloat(req.Longitude, 'f', -1, 64))

	radius := req.RadiusMeters
	if radius <= 0 {
		radius = DefaultRadiusMeters
	}
	params.Set("radius", strconv.Itoa(radius))

	if req.Type != "" {
		params.Set("type", req.Type)
	}
	if req.Query != "" {
		params.Set("keyword", req.Query)
	}
	if s.apiKey != "" {
		params.Set("key", s.apiKey)
	}

	return s.nearbyURL + "?" + params.Encode()
}

package places_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/happy-arz/internal/places"
)

const siroccoJSON = `{
	"results": [{
		"place_id": "p1",
		"name": "Sirocco Restaurant",
		"formatted_address": "1055 Silom Rd, Bangkok",
		"geometry": {"location": {"lat": 13.7217, "lng": 100.5154}},
		"rating": 4.3,
		"types": ["restaurant", "bar", "establishment"],
		"photos": [{"photo_reference": "https://img.example/sirocco.webp"}],
		"business_status": "OPERATIONAL"
	}],
	"status": "OK"
}`

func TestHTTPSource_Nearby(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        places.NearbyRequest
		handler    http.HandlerFunc
		wantErr    bool
		errContain string
		wantCount  int
	}{
		{
			name: "successful search",
			req:  places.NearbyRequest{Latitude: 13.75, Longitude: 100.5, Type: "restaurant", Query: "sky"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				assert.Equal(t, "13.75,100.5", q.Get("location"))
				assert.Equal(t, "5000", q.Get("radius"))
				assert.Equal(t, "restaurant", q.Get("type"))
				assert.Equal(t, "sky", q.Get("keyword"))
				assert.Equal(t, "test-key", q.Get("key"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(siroccoJSON))
			},
			wantCount: 1,
		},
		{
			name: "zero results",
			req:  places.NearbyRequest{Latitude: 1, Longitude: 1, RadiusMeters: 100},
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "100", r.URL.Query().Get("radius"))
				assert.Empty(t, r.URL.Query().Get("type"))
				_, _ = w.Write([]byte(`{"results": [], "status": "ZERO_RESULTS"}`))
			},
			wantCount: 0,
		},
		{
			name: "provider status error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"results": [], "status": "REQUEST_DENIED", "error_message": "bad key"}`))
			},
			wantErr:    true,
			errContain: "REQUEST_DENIED",
		},
		{
			name: "429 rate limited response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantErr:    true,
			errContain: "status 429",
		},
		{
			name: "invalid JSON response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not valid json"))
			},
			wantErr:    true,
			errContain: "parsing nearby response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			src := places.NewHTTPSource("test-key", places.WithNearbyURL(srv.URL))
			got, err := src.Nearby(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantCount)
		})
	}
}

func TestHTTPSource_Nearby_Converts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(siroccoJSON))
	}))
	defer srv.Close()

	got, err := places.NewHTTPSource("", places.WithNearbyURL(srv.URL)).
		Nearby(context.Background(), places.NearbyRequest{})
	require.NoError(t, err)
	require.Len(t, got, 1)

	b := got[0]
	assert.Equal(t, "p1", b.ID)
	assert.Equal(t, "Sirocco Restaurant", b.Name)
	assert.Equal(t, "https://img.example/sirocco.webp", b.Image)
	assert.InDelta(t, 13.7217, b.Location.Latitude, 1e-9)
	assert.True(t, b.IsActive)
	assert.False(t, b.IsVerified)
	assert.Nil(t, b.CurrentDiscount)
}

func TestHTTPSource_Nearby_RateLimited(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": [], "status": "OK"}`))
	}))
	defer srv.Close()

	// Daily limit of 1.
	src := places.NewHTTPSource("k",
		places.WithNearbyURL(srv.URL),
		places.WithRateLimiter(places.NewRateLimiter(100, 10, 1)),
	)

	_, err := src.Nearby(context.Background(), places.NearbyRequest{})
	require.NoError(t, err)

	_, err = src.Nearby(context.Background(), places.NearbyRequest{})
	require.ErrorIs(t, err, places.ErrDailyLimitReached)
	assert.Contains(t, err.Error(), "rate limit:")
}

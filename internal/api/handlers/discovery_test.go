package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/happy-arz/internal/api/handlers"
	"github.com/donaldgifford/happy-arz/internal/discovery"
	"github.com/donaldgifford/happy-arz/internal/places"
	storeMocks "github.com/donaldgifford/happy-arz/internal/store/mocks"
)

func TestDiscover(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantIDs    []string
	}{
		{name: "ranked verified set", path: "/api/v1/businesses", wantStatus: http.StatusOK, wantIDs: []string{"v-live", "v-plain"}},
		{name: "search", path: "/api/v1/businesses?q=NOODLE", wantStatus: http.StatusOK, wantIDs: []string{"v-plain"}},
		{name: "category", path: "/api/v1/businesses?category=Bar", wantStatus: http.StatusOK, wantIDs: []string{"v-live"}},
		{name: "all category", path: "/api/v1/businesses?category=All", wantStatus: http.StatusOK, wantIDs: []string{"v-live", "v-plain"}},
		{name: "unknown category rejected", path: "/api/v1/businesses?category=Zoo", wantStatus: http.StatusUnprocessableEntity},
		{name: "unknown city", path: "/api/v1/businesses?city=atlantis", wantStatus: http.StatusBadRequest},
		{name: "latitude out of range", path: "/api/v1/businesses?lat=95&lng=100", wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewDiscoveryHandler(newService(seededStore(t)))
			_, api := humatest.New(t)
			handlers.RegisterDiscoveryRoutes(api, h)

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantIDs == nil {
				return
			}

			var body discovery.Result
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			got := make([]string, 0, len(body.Businesses))
			for _, b := range body.Businesses {
				got = append(got, b.ID)
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestDiscover_GPSAddsDistancesAndCity(t *testing.T) {
	t.Parallel()

	svc := newService(seededStore(t), discovery.WithPlaces(places.NewFixtureSource(nil)))
	h := handlers.NewDiscoveryHandler(svc)
	_, api := humatest.New(t)
	handlers.RegisterDiscoveryRoutes(api, h)

	resp := api.Get("/api/v1/businesses?lat=13.7563&lng=100.5018")
	require.Equal(t, http.StatusOK, resp.Code)

	var body discovery.Result
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Bangkok", body.City)
	require.NotEmpty(t, body.Businesses)
	assert.Equal(t, "v-live", body.Businesses[0].ID)
	assert.True(t, body.Businesses[0].DiscountLive)
	assert.NotNil(t, body.Businesses[0].DistanceKm)
	assert.Greater(t, len(body.Businesses), 2, "nearby places are merged in")
}

func TestDiscover_StoreError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetVerifiedBusinesses(mock.Anything).Return(nil, errors.New("connection refused")).Once()

	h := handlers.NewDiscoveryHandler(newService(ms))
	_, api := humatest.New(t)
	handlers.RegisterDiscoveryRoutes(api, h)

	resp := api.Get("/api/v1/businesses")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "connection refused")
}

func TestMap(t *testing.T) {
	t.Parallel()

	h := handlers.NewDiscoveryHandler(newService(seededStore(t)))
	_, api := humatest.New(t)
	handlers.RegisterDiscoveryRoutes(api, h)

	resp := api.Get("/api/v1/map?city=bangkok")
	require.Equal(t, http.StatusOK, resp.Code)

	var body discovery.MapResult
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.WithDiscount, 1)
	assert.Equal(t, "v-live", body.WithDiscount[0].ID)
	require.Len(t, body.WithoutDiscount, 1)
	assert.Equal(t, "v-plain", body.WithoutDiscount[0].ID)
	assert.Equal(t, "Bangkok", body.City)
}

func TestSaved(t *testing.T) {
	t.Parallel()

	st := seededStore(t)
	svc := newService(st)
	_, api := humatest.New(t)
	handlers.RegisterDiscoveryRoutes(api, handlers.NewDiscoveryHandler(svc))
	handlers.RegisterBookmarkRoutes(api, handlers.NewBookmarksHandler(svc))

	resp := api.Post("/api/v1/bookmarks/v-plain/toggle", "X-Device-ID: device-1")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = api.Get("/api/v1/saved", "X-Device-ID: device-1")
	require.Equal(t, http.StatusOK, resp.Code)

	var body discovery.Result
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Businesses, 1)
	assert.Equal(t, "v-plain", body.Businesses[0].ID)
	assert.True(t, body.Businesses[0].IsBookmarked)

	// Another device sees nothing.
	resp = api.Get("/api/v1/saved", "X-Device-ID: device-2")
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Empty(t, body.Businesses)

	// Category filter.
	resp = api.Get("/api/v1/saved?category=Bar", "X-Device-ID: device-1")
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Empty(t, body.Businesses)
}

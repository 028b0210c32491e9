package cmd

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/happy-arz/internal/config"
	"github.com/donaldgifford/happy-arz/internal/places"
	"github.com/donaldgifford/happy-arz/internal/store"
)

const venuesTSV = "name\tdescription\taddress\tcategory\thappy hour start\thappy hour end\n" +
	"Sky Bar\tRooftop cocktails\tSilom, Bangkok\tBar\t17:00\t19:00\n"

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Places.Mode = config.PlacesModeOff
	return cfg
}

func TestNewServer_Routes(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	st := store.NewMemoryStore()
	svc := newService(cfg, st, nil, quietLogger())
	srv := httptest.NewServer(newServer(cfg, st, svc, nil, quietLogger()))
	defer srv.Close()

	tests := []struct {
		name       string
		method     string
		path       string
		header     map[string]string
		body       string
		wantStatus int
	}{
		{name: "healthz", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK},
		{name: "readyz", method: http.MethodGet, path: "/readyz", wantStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "openapi", method: http.MethodGet, path: "/openapi.json", wantStatus: http.StatusOK},
		{name: "businesses", method: http.MethodGet, path: "/api/v1/businesses", wantStatus: http.StatusOK},
		{name: "map", method: http.MethodGet, path: "/api/v1/map?city=bangkok", wantStatus: http.StatusOK},
		{name: "unknown city", method: http.MethodGet, path: "/api/v1/businesses?city=atlantis", wantStatus: http.StatusBadRequest},
		{name: "locations", method: http.MethodGet, path: "/api/v1/locations?popular=true", wantStatus: http.StatusOK},
		{name: "verified", method: http.MethodGet, path: "/api/v1/verified", wantStatus: http.StatusOK},
		{name: "upload history", method: http.MethodGet, path: "/api/v1/uploads", wantStatus: http.StatusOK},
		{name: "places quota", method: http.MethodGet, path: "/api/v1/places/quota", wantStatus: http.StatusOK},
		{
			name:       "invalid device id",
			method:     http.MethodGet,
			path:       "/api/v1/bookmarks",
			header:     map[string]string{"X-Device-ID": "not valid!"},
			wantStatus: http.StatusBadRequest,
		},
		{name: "unknown route", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequestWithContext(t.Context(), tt.method, srv.URL+tt.path, strings.NewReader(tt.body))
			require.NoError(t, err)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestNewServer_UploadThenDiscover(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	st := store.NewMemoryStore()
	svc := newService(cfg, st, nil, quietLogger())
	srv := httptest.NewServer(newServer(cfg, st, svc, nil, quietLogger()))
	defer srv.Close()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost,
		srv.URL+"/api/v1/uploads?filename=venues.tsv", strings.NewReader(venuesTSV))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "text/tab-separated-values")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = srv.Client().Get(srv.URL + "/api/v1/verified")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Businesses []struct {
			Name       string `json:"name"`
			IsVerified bool   `json:"is_verified"`
		} `json:"businesses"`
		Total int `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "Sky Bar", body.Businesses[0].Name)
	assert.True(t, body.Businesses[0].IsVerified)
}

func TestNewPlacesSource(t *testing.T) {
	t.Parallel()

	cfg := config.Default().Places

	cfg.Mode = config.PlacesModeOff
	src, rl := newPlacesSource(&cfg)
	assert.Nil(t, src)
	assert.Nil(t, rl)

	cfg.Mode = config.PlacesModeFixture
	src, rl = newPlacesSource(&cfg)
	assert.IsType(t, &places.FixtureSource{}, src)
	assert.Nil(t, rl)

	cfg.Mode = config.PlacesModeHTTP
	cfg.APIKey = "key"
	cfg.RateLimit.DailyLimit = 250
	src, rl = newPlacesSource(&cfg)
	assert.IsType(t, &places.HTTPSource{}, src)
	require.NotNil(t, rl)
	assert.Equal(t, int64(250), rl.MaxDaily())
}

func TestNewServer_PlacesQuota(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Places.Mode = config.PlacesModeHTTP
	cfg.Places.APIKey = "key"
	cfg.Places.RateLimit.DailyLimit = 40

	st := store.NewMemoryStore()
	src, rl := newPlacesSource(&cfg.Places)
	svc := newService(cfg, st, src, quietLogger())
	require.NoError(t, rl.Wait(t.Context()))

	srv := httptest.NewServer(newServer(cfg, st, svc, rl, quietLogger()))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/api/v1/places/quota")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Enabled    bool  `json:"enabled"`
		DailyLimit int64 `json:"daily_limit"`
		DailyUsed  int64 `json:"daily_used"`
		Remaining  int64 `json:"remaining"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Enabled)
	assert.Equal(t, int64(40), body.DailyLimit)
	assert.Equal(t, int64(1), body.DailyUsed)
	assert.Equal(t, int64(39), body.Remaining)
}

func TestListenAndWait_PortInUse(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	err = listenAndWait(t.Context(), e, ln.Addr().String(), quietLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ln.Addr().String())
}

func TestListenAndWait_ContextDone(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	require.NoError(t, listenAndWait(ctx, e, "127.0.0.1:0", quietLogger()))
	require.NoError(t, e.Shutdown(context.Background()))
}

func TestIngestCommand_DryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venues.tsv")
	require.NoError(t, os.WriteFile(path, []byte(venuesTSV), 0o600))

	var out strings.Builder
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"ingest", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	got := out.String()
	assert.Contains(t, got, "Processed:")
	assert.Contains(t, got, "Sky Bar")
	assert.NotContains(t, got, "History ID")
}

func TestVersionCommand(t *testing.T) {
	var out strings.Builder
	cmd := versionCommand()
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "happyarz dev\n", out.String())
}

// Package main implements a mock nearby-places server for local development.
// It serves the built-in Bangkok venue set in the nearby search response
// shape, so the HTTP places source can run without a real API key.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/happy-arz/internal/places"
	"github.com/donaldgifford/happy-arz/pkg/geo"
)

const defaultRadiusMeters = 1500

type nearbyResponse struct {
	Results      []places.Place `json:"results"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	apiKey := flag.String("key", "", "API key callers must send (empty accepts any)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture := places.BangkokPlaces()
	logger.Info("loaded fixture", "places", len(fixture))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /maps/api/place/nearbysearch/json", nearbyHandler(logger, fixture, *apiKey))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock places server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func nearbyHandler(logger *slog.Logger, fixture []places.Place, apiKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if apiKey != "" && q.Get("key") != apiKey {
			logger.Warn("nearby request with bad key")
			writeJSON(w, http.StatusOK, nearbyResponse{
				Results:      []places.Place{},
				Status:       "REQUEST_DENIED",
				ErrorMessage: "The provided API key is invalid.",
			})
			return
		}

		lat, lng, ok := parseLocation(q.Get("location"))
		if !ok {
			writeJSON(w, http.StatusOK, nearbyResponse{
				Results:      []places.Place{},
				Status:       "INVALID_REQUEST",
				ErrorMessage: "location must be lat,lng",
			})
			return
		}

		radius := defaultRadiusMeters
		if v, err := strconv.Atoi(q.Get("radius")); err == nil && v > 0 {
			radius = v
		}

		placeType := q.Get("type")
		keyword := strings.ToLower(strings.TrimSpace(q.Get("keyword")))

		matched := []places.Place{}
		for i := range fixture {
			p := &fixture[i]
			km := geo.Distance(lat, lng, p.Geometry.Location.Lat, p.Geometry.Location.Lng)
			if km*1000 > float64(radius) {
				continue
			}
			if placeType != "" && placeType != "establishment" && !slices.Contains(p.Types, placeType) {
				continue
			}
			if keyword != "" && !strings.Contains(strings.ToLower(p.Name), keyword) {
				continue
			}
			matched = append(matched, *p)
		}

		status := "OK"
		if len(matched) == 0 {
			status = "ZERO_RESULTS"
		}
		writeJSON(w, http.StatusOK, nearbyResponse{Results: matched, Status: status})
		logger.Info("nearby", "lat", lat, "lng", lng, "radius", radius, "type", placeType, "matched", len(matched))
	}
}

func parseLocation(s string) (lat, lng float64, ok bool) {
	latStr, lngStr, found := strings.Cut(s, ",")
	if !found {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, false
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil || lng < -180 || lng > 180 {
		return 0, 0, false
	}
	return lat, lng, true
}

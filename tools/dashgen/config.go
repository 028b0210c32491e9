package main

import "errors"

// KnownMetrics is the set of metric names exported by happy-arz plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"happyarz_http_request_duration_seconds":        true,
	"happyarz_http_request_duration_seconds_bucket": true,
	"happyarz_http_requests_total":                  true,

	// Health metrics.
	"happyarz_healthz_up": true,
	"happyarz_readyz_up":  true,

	// Ingestion metrics.
	"happyarz_uploads_total":                     true,
	"happyarz_ingestion_rows_total":              true,
	"happyarz_ingestion_duration_seconds_bucket": true,
	"happyarz_verified_businesses":               true,

	// Discovery metrics.
	"happyarz_ranking_duration_seconds_bucket": true,
	"happyarz_ranked_businesses_bucket":        true,
	"happyarz_live_discounts":                  true,
	"happyarz_bookmark_toggles_total":          true,

	// Places API metrics.
	"happyarz_places_api_calls_total":        true,
	"happyarz_places_daily_usage":            true,
	"happyarz_places_daily_limit_hits_total": true,
	"happyarz_places_errors_total":           true,

	// Recording rules.
	"happyarz:http_requests:rate5m":        true,
	"happyarz:http_errors:rate5m":          true,
	"happyarz:ingestion_rows:rate1h":       true,
	"happyarz:ingestion_row_errors:rate1h": true,
	"happyarz:places_api_calls:rate5m":     true,
	"happyarz:places_errors:rate5m":        true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}

// Package metrics defines Prometheus metrics for happy-arz.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "happyarz"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last liveness probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last readiness probe succeeded (1) or failed (0).",
	})
)

// Ingestion metrics.
var (
	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of spreadsheet uploads by outcome.",
	}, []string{"outcome"}) // ok, rejected, failed

	IngestionRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestion_rows_total",
		Help:      "Total number of spreadsheet data rows by result.",
	}, []string{"result"}) // processed, error

	IngestionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ingestion_duration_seconds",
		Help:      "Duration of spreadsheet ingestion runs in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	VerifiedBusinesses = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "verified_businesses",
		Help:      "Number of businesses in the current verified set.",
	})
)

// Discovery metrics.
var (
	RankingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ranking_duration_seconds",
		Help:      "Duration of discovery requests, including store and places lookups.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"view"}) // discover, map, saved

	RankedBusinesses = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ranked_businesses",
		Help:      "Number of businesses returned per discovery request.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1 .. 512
	})

	LiveDiscounts = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "live_discounts",
		Help:      "Number of verified businesses whose discount is live right now.",
	})

	BookmarkTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookmark_toggles_total",
		Help:      "Total number of bookmark toggles by resulting state.",
	}, []string{"state"}) // added, removed
)

// Places API metrics.
var (
	PlacesAPICallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "places_api_calls_total",
		Help:      "Total cumulative nearby-places API calls.",
	})

	PlacesDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "places_daily_usage",
		Help:      "Current places API call count within the rolling 24-hour window.",
	})

	PlacesDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "places_daily_limit_hits_total",
		Help:      "Total number of times the daily places API limit was reached.",
	})

	PlacesErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "places_errors_total",
		Help:      "Total number of failed nearby-places lookups that were degraded to verified-only results.",
	})
)

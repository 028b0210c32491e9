package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/happy-arz/internal/api/handlers"
	"github.com/donaldgifford/happy-arz/internal/api/middleware"
	"github.com/donaldgifford/happy-arz/internal/config"
	"github.com/donaldgifford/happy-arz/internal/discovery"
	"github.com/donaldgifford/happy-arz/internal/places"
	"github.com/donaldgifford/happy-arz/internal/store"
	"github.com/donaldgifford/happy-arz/pkg/ingest"
	"github.com/donaldgifford/happy-arz/pkg/logger"
)

// openStore connects the configured backend. Postgres is migrated before
// use. The returned func releases the connection.
func openStore(ctx context.Context, cfg *config.DatabaseConfig, log *slog.Logger) (store.Store, func(), error) {
	if cfg.Backend == config.BackendMemory {
		log.Warn("using in-memory store; data is lost on restart")
		return store.NewMemoryStore(), func() {}, nil
	}

	pg, err := store.NewPostgresStore(ctx, cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pg.Migrate(ctx); err != nil {
		pg.Close()
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}
	log.Info("connected to postgres", "host", cfg.Host, "database", cfg.Name)
	return pg, pg.Close, nil
}

// newPlacesSource returns a nil source when nearby lookups are switched
// off. The rate limiter is only built for the HTTP source.
func newPlacesSource(cfg *config.PlacesConfig) (places.Source, *places.RateLimiter) {
	switch cfg.Mode {
	case config.PlacesModeHTTP:
		rl := places.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst, cfg.RateLimit.DailyLimit)
		return places.NewHTTPSource(cfg.APIKey,
			places.WithNearbyURL(cfg.URL),
			places.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
			places.WithRateLimiter(rl),
		), rl
	case config.PlacesModeFixture:
		return places.NewFixtureSource(nil), nil
	default:
		return nil, nil
	}
}

func newService(cfg *config.Config, st store.Store, src places.Source, log *slog.Logger) *discovery.Service {
	opts := []discovery.Option{
		discovery.WithLogger(logger.Component(log, "discovery")),
		discovery.WithRadiusMeters(cfg.Places.RadiusMeters),
		discovery.WithIngestOptions(ingestOptions(&cfg.Ingestion)),
	}
	if src != nil {
		opts = append(opts, discovery.WithPlaces(src))
	}
	return discovery.NewService(st, opts...)
}

func ingestOptions(cfg *config.IngestionConfig) ingest.Options {
	return ingest.Options{
		DefaultRating:     cfg.DefaultRating,
		DefaultPercentage: cfg.DefaultPercentage,
		VerifiedBy:        cfg.VerifiedBy,
	}
}

// newServer builds the Echo instance with middleware, probes, metrics and
// every API route registered.
func newServer(
	cfg *config.Config,
	st store.Store,
	svc *discovery.Service,
	quota *places.RateLimiter,
	log *slog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	httpLog := logger.Component(log, "http")
	e.Use(
		middleware.Recovery(httpLog),
		middleware.RequestLog(httpLog),
		middleware.Metrics(),
		middleware.DeviceID(),
	)

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("happy-arz API", Version))
	handlers.RegisterDiscoveryRoutes(api, handlers.NewDiscoveryHandler(svc))
	handlers.RegisterBookmarkRoutes(api, handlers.NewBookmarksHandler(svc))
	handlers.RegisterUploadRoutes(api, handlers.NewUploadsHandler(svc), cfg.Ingestion.MaxUploadBytes)
	handlers.RegisterVerifiedRoutes(api, handlers.NewVerifiedHandler(svc))
	handlers.RegisterLocationRoutes(api)
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(quota))

	return e
}

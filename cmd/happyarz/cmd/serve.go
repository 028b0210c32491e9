package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/happy-arz/internal/discovery"
	"github.com/donaldgifford/happy-arz/internal/telemetry"
	"github.com/donaldgifford/happy-arz/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, &cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}

	st, closeStore, err := openStore(ctx, &cfg.Database, log)
	if err != nil {
		return err
	}
	defer closeStore()

	src, quota := newPlacesSource(&cfg.Places)
	svc := newService(cfg, st, src, log)

	sched, err := discovery.NewScheduler(svc, cfg.Schedule.LiveDiscountInterval, logger.Component(log, "scheduler"))
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()

	e := newServer(cfg, st, svc, quota, log)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server",
		"addr", addr,
		"backend", cfg.Database.Backend,
		"places", cfg.Places.Mode,
		"version", Version,
	)

	var errs []error
	if err := listenAndWait(ctx, e, addr, log); err != nil {
		log.Error("server error", "error", err)
		errs = append(errs, err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("shutting down server: %w", err))
	}

	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn("scheduler did not stop before timeout")
	}

	if err := shutdownTelemetry(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("shutting down telemetry: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	log.Info("server stopped")
	return nil
}

// listenAndWait serves until ctx is done or the listener fails. A failure
// to start, such as the port being taken, is returned.
func listenAndWait(ctx context.Context, e *echo.Echo, addr string, log *slog.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down server")
		return nil
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serving on %s: %w", addr, err)
		}
		return nil
	}
}

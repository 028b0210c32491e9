package discovery

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler refreshes the live-discount gauge on a fixed interval.
type Scheduler struct {
	cron    *cron.Cron
	service *Service
	log     *slog.Logger
}

// NewScheduler creates a new Scheduler that runs service tasks on a schedule.
func NewScheduler(
	svc *Service,
	liveDiscountInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:    c,
		service: svc,
		log:     log,
	}

	if _, err := c.AddFunc(
		"@every "+liveDiscountInterval.String(),
		s.refreshLiveDiscounts,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start runs one refresh immediately and then begins the schedule.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.refreshLiveDiscounts()
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) refreshLiveDiscounts() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.service.RefreshLiveDiscounts(ctx); err != nil {
		s.log.Error("live discount refresh failed", "error", err)
	}
}

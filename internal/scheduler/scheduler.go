package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/robfig/cron/v3"
)

// refreshTimeout bounds a single scheduled refresh.
const refreshTimeout = 30 * time.Second

// Scheduler runs background jobs on cron specs with seconds.
type Scheduler struct {
	Cron      *cron.Cron
	Converter portssvc.RatesFetcher
	Base      string
	Logger    *slog.Logger
	Ctx       context.Context
}

// NewScheduler creates a Scheduler refreshing converter for base.
func NewScheduler(ctx context.Context, converter portssvc.RatesFetcher, base string, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Converter: converter,
		Base:      base,
		Logger:    logger.With(slog.String("component", "scheduler")),
		Ctx:       ctx,
	}
}

// RegisterRatesRefresh schedules the rate refresh job. An empty spec disables it.
func (s *Scheduler) RegisterRatesRefresh(spec string) error {
	if spec == "" {
		s.Logger.Info("Rates refresh job disabled")
		return nil
	}
	if _, err := s.Cron.AddFunc(spec, s.refreshRates); err != nil {
		return fmt.Errorf("register rates refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Logger.Info("Scheduler started", slog.Int("jobs", len(s.Cron.Entries())))
}

// Stop stops the cron scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Logger.Info("Scheduler stopped")
}

// RefreshRatesNow runs the refresh job immediately, e.g. at startup.
func (s *Scheduler) RefreshRatesNow() {
	s.refreshRates()
}

func (s *Scheduler) refreshRates() {
	ctx, cancel := context.WithTimeout(middleware.WithLogger(s.Ctx, s.Logger), refreshTimeout)
	defer cancel()

	table, err := s.Converter.FetchRates(ctx, s.Base)
	if err != nil {
		s.Logger.Error("Scheduled rates refresh failed", slog.String("base", s.Base), slog.String("error", err.Error()))
		return
	}
	s.Logger.Info("Scheduled rates refresh done",
		slog.String("base", table.Base),
		slog.Int("rates", len(table.Rates)),
		slog.String("last_update", table.LastUpdate))
}

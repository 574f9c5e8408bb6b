package watch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the check on a cron schedule in addition to file-change
// triggers, e.g. to catch drift while no one is editing.
type Scheduler struct {
	cron    *cron.Cron
	logger  *slog.Logger
	mu      sync.Mutex
	running bool
}

// NewScheduler creates a new scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		logger: slog.Default().With("component", "watch.scheduler"),
	}
}

// Start schedules job with the given cron expression and begins running.
//
// Common expressions:
//   - "0 * * * *"   - Hourly
//   - "*/5 * * * *" - Every 5 minutes
//   - "0 9 * * 1-5" - Weekday mornings at 9
//
// The scheduler stops when the context is cancelled.
func (s *Scheduler) Start(ctx context.Context, schedule string, job func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if schedule == "" {
		s.logger.Info("no schedule configured, skipping scheduler")
		return nil
	}

	if _, err := cron.ParseStandard(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
	}

	if _, err := s.cron.AddFunc(schedule, job); err != nil {
		return fmt.Errorf("failed to schedule check: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("check scheduler started", "schedule", schedule)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	stopCtx := s.cron.Stop()
	<-stopCtx.Done()

	s.logger.Info("check scheduler stopped")
}

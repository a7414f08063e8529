package loader

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler rescans a data directory on a cron schedule, keeping the
// catalog current for files that change without filesystem events
// (network mounts, clock-skewed copies).
type Scheduler struct {
	loader   *Loader
	dir      string
	schedule string
	cron     *cron.Cron
	mu       sync.Mutex
	logger   *slog.Logger
	running  bool
}

// NewScheduler creates a new rescan scheduler. schedule is a standard
// cron expression; an empty schedule disables the scheduler.
func NewScheduler(loader *Loader, dir, schedule string) *Scheduler {
	return &Scheduler{
		loader:   loader,
		dir:      dir,
		schedule: schedule,
		cron:     cron.New(),
		logger:   slog.Default().With("component", "loader.scheduler"),
	}
}

// Start begins the scheduled rescans.
//
// Common cron expressions:
//   - "0 3 * * *"    - Daily at 3 AM
//   - "*/30 * * * *" - Every 30 minutes
//
// If the schedule is empty, Start does nothing.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule == "" {
		s.logger.Info("rescan schedule not configured, skipping scheduler")
		return nil
	}

	// Validate cron expression
	_, err := cron.ParseStandard(s.schedule)
	if err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}

	_, err = s.cron.AddFunc(s.schedule, func() {
		s.runRescan(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule rescan: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("rescan scheduler started",
		"schedule", s.schedule,
		"dir", s.dir,
	)

	// Wait for context cancellation in background
	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// runRescan executes one rescan cycle.
func (s *Scheduler) runRescan(ctx context.Context) {
	s.logger.Info("starting scheduled rescan", "dir", s.dir)

	results, err := s.loader.LoadDir(ctx, s.dir)
	if err != nil {
		s.logger.Error("scheduled rescan failed",
			"error", err,
		)
		return
	}

	errs := CollectErrors(results)
	if errs.HasErrors() {
		s.logger.Warn("scheduled rescan completed with errors",
			"files", len(results),
			"errors", errs.Count(),
		)
	} else {
		s.logger.Info("scheduled rescan completed",
			"files", len(results),
		)
	}
}

// Stop stops the scheduler and waits for any running jobs to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil && s.running {
		ctx := s.cron.Stop()
		<-ctx.Done() // Wait for running jobs to finish
		s.running = false
		s.logger.Info("rescan scheduler stopped")
	}
}

// IsRunning returns true if the scheduler is running.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// NextRun returns the next scheduled rescan time.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return nil
	}

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}

package loader

import (
	"context"
	"testing"
	"time"
)

func TestScheduler_EmptyScheduleIsNoop(t *testing.T) {
	s := NewScheduler(New(nil, nil, nil, nil), t.TempDir(), "")

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if s.IsRunning() {
		t.Error("scheduler running with empty schedule")
	}
}

func TestScheduler_InvalidSchedule(t *testing.T) {
	s := NewScheduler(New(nil, nil, nil, nil), t.TempDir(), "not a cron expression")

	if err := s.Start(context.Background()); err == nil {
		t.Error("Start succeeded with invalid schedule, want error")
	}
}

func TestScheduler_StartAndStop(t *testing.T) {
	s := NewScheduler(New(nil, nil, nil, nil), t.TempDir(), "0 3 * * *")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !s.IsRunning() {
		t.Fatal("scheduler not running after Start")
	}

	next := s.NextRun()
	if next == nil {
		t.Fatal("NextRun returned nil for a running scheduler")
	}
	if !next.After(time.Now()) {
		t.Errorf("NextRun %v is not in the future", next)
	}

	s.Stop()
	if s.IsRunning() {
		t.Error("scheduler still running after Stop")
	}
}

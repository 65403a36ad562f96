package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// RefreshFunc re-fetches whatever the caller is displaying.
type RefreshFunc func(ctx context.Context)

// Scheduler periodically runs a refresh job.
type Scheduler struct {
	scheduler *gocron.Scheduler
	refresh   RefreshFunc
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler. timeout bounds each run (0 = unbounded).
func New(interval, timeout time.Duration, refresh RefreshFunc) *Scheduler {
	s := gocron.NewScheduler(time.Local)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		refresh:   refresh,
		interval:  interval,
		timeout:   timeout,
	}
}

// Start schedules the refresh job, first run one interval from now.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		return fmt.Errorf("scheduler: interval must be positive, got %s", s.interval)
	}
	if s.refresh == nil {
		return fmt.Errorf("scheduler: no refresh function configured")
	}

	_, err := s.scheduler.Every(s.interval).StartAt(time.Now().Add(s.interval)).Do(func() {
		log.Println("DEBUG: scheduler: running refresh job")

		ctx := context.Background()
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		s.refresh(ctx)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future runs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

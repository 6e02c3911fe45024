// Package scheduler runs the recurring maintenance jobs that drive
// time-based lifecycle transitions outside of request handling.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"pawhaven/internal/usecase"
)

// AdoptionSweeper is the slice of the adoption lifecycle the scheduler
// drives. Re-running a sweep is safe: the cancel guard skips adoptions that
// already reached a terminal state and notification delivery de-duplicates.
type AdoptionSweeper interface {
	SweepExpired(ctx context.Context) (usecase.SweepResult, error)
}

type ExpiryScheduler struct {
	sweeper  AdoptionSweeper
	interval time.Duration
}

func NewExpiryScheduler(sweeper AdoptionSweeper, interval time.Duration) *ExpiryScheduler {
	return &ExpiryScheduler{sweeper: sweeper, interval: interval}
}

// Run sweeps once immediately and then on every tick until ctx is cancelled.
func (s *ExpiryScheduler) Run(ctx context.Context) {
	slog.Info("expiry scheduler started", "interval", s.interval.String())

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("expiry scheduler stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ExpiryScheduler) sweep(ctx context.Context) {
	result, err := s.sweeper.SweepExpired(ctx)
	if err != nil {
		slog.Error("expiry sweep failed", "error", err.Error())
		return
	}
	if result.Attempted > 0 {
		slog.Info("expiry sweep finished",
			"attempted", result.Attempted, "cancelled", result.Cancelled)
	}
}

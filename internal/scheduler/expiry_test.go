//go:build unit

package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"pawhaven/internal/scheduler"
	"pawhaven/internal/usecase"

	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	calls  atomic.Int64
	result usecase.SweepResult
}

func (s *countingSweeper) SweepExpired(_ context.Context) (usecase.SweepResult, error) {
	s.calls.Add(1)
	return s.result, nil
}

func TestRunSweepsImmediatelyAndOnTick(t *testing.T) {
	t.Parallel()
	sweeper := &countingSweeper{result: usecase.SweepResult{Attempted: 1, Cancelled: 1}}
	s := scheduler.NewExpiryScheduler(sweeper, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return sweeper.calls.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancellation")
	}
}

func TestRunStopsBeforeFirstTick(t *testing.T) {
	t.Parallel()
	sweeper := &countingSweeper{}
	s := scheduler.NewExpiryScheduler(sweeper, time.Hour)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(ctx)
	}()

	// The immediate sweep runs, then the loop waits for the first tick.
	require.Eventually(t, func() bool {
		return sweeper.calls.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancellation")
	}
	require.EqualValues(t, 1, sweeper.calls.Load())
}

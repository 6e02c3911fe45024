package bootstrap

import (
	"context"

	"pawhaven/internal/pkg/config"
	"pawhaven/internal/scheduler"
	"pawhaven/internal/usecase"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewExpiryScheduler,
	),
	fx.Invoke(runExpiryScheduler),
)

func NewExpiryScheduler(cfg config.Config, adoptionUseCase usecase.AdoptionUseCase) *scheduler.ExpiryScheduler {
	return scheduler.NewExpiryScheduler(adoptionUseCase, cfg.Scheduler.SweepInterval)
}

func runExpiryScheduler(lc fx.Lifecycle, s *scheduler.ExpiryScheduler) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				s.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

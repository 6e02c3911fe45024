package components

import (
	"pawhaven/internal/notify"
	"pawhaven/internal/pkg/clock"
	"pawhaven/internal/pkg/config"
	"pawhaven/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewNotificationGateway,
		usecase.NewAdoptionUseCase,
		usecase.NewRescueUseCase,
		usecase.NewNotificationUseCase,
		usecase.NewActivityUseCase,
	),
)

func NewNotificationGateway(
	cfg config.Config,
	notifications notify.NotificationStore,
	users notify.RecipientStore,
	clk clock.Clock,
) notify.Gateway {
	return notify.NewStoreGateway(
		notifications,
		users,
		notify.NewMailer(cfg.SMTP),
		notify.NewRedisDedup(cfg.Redis),
		cfg.Notify.DedupWindow,
		cfg.Frontend.URL,
		clk,
	)
}

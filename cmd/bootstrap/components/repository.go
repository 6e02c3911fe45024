package components

import (
	"pawhaven/internal/infra/repository"
	"pawhaven/internal/notify"
	"pawhaven/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewPetRepository,
			fx.As(new(usecase.PetRepository)),
		),
		fx.Annotate(
			repository.NewAdoptionRepository,
			fx.As(new(usecase.AdoptionRepository)),
		),
		fx.Annotate(
			repository.NewRescueRepository,
			fx.As(new(usecase.RescueRepository)),
		),
		fx.Annotate(
			repository.NewReportRepository,
			fx.As(new(usecase.ReportRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(usecase.NotificationRepository)),
			fx.As(new(notify.NotificationStore)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(notify.RecipientStore)),
		),
		fx.Annotate(
			repository.NewActivityLogRepository,
			fx.As(new(usecase.ActivityLog)),
			fx.As(new(usecase.ActivityLogReader)),
		),
	),
)

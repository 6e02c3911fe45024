package components

import (
	"pawhaven/internal/handler"
	"pawhaven/internal/handler/api"
	"pawhaven/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAdoptionHandler,
		api.NewRescueHandler,
		api.NewNotificationHandler,
		api.NewActivityHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

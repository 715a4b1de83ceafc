package components

import (
	"parkhub/internal/handler"
	"parkhub/internal/handler/api"
	"parkhub/internal/handler/middleware"
	"parkhub/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig {
			return cfg.Cookie
		},
		api.NewAuthHandler,
		api.NewParkingHandler,
		api.NewReservationHandler,
		api.NewSessionHandler,
		api.NewSubscriptionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

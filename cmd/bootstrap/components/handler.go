package components

import (
	"thejulge/internal/handler"
	"thejulge/internal/handler/api"
	"thejulge/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProfileHandler,
		api.NewListingHandler,
		api.NewApplicationHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

package components

import (
	"expertbook/internal/handler"
	"expertbook/internal/handler/api"
	"expertbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewExpertHandler,
		api.NewEventTypeHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

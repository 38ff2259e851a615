package components

import (
	"arbitat/internal/handler"
	"arbitat/internal/handler/api"
	"arbitat/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewListingHandler,
		api.NewMatchHandler,
		api.NewPaymentHandler,
		api.NewOwnerHandler,
		api.NewFavoriteHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

package components

import (
	"pta-storefront/internal/handler"
	"pta-storefront/internal/handler/api"
	"pta-storefront/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewEventHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewWebhookHandler,
		api.NewAdminTransactionHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

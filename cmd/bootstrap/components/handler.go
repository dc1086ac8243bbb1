package components

import (
	"hostel-booking/internal/handler"
	"hostel-booking/internal/handler/api"
	"hostel-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewRoomHandler,
		api.NewWebhookHandler,
		api.NewTaxHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

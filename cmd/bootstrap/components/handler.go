package components

import (
	"staybook/internal/handler"
	"staybook/internal/handler/api"
	"staybook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPropertyHandler,
		api.NewSearchHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewUserHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Property *api.PropertyHandler
	Search   *api.SearchHandler
	Booking  *api.BookingHandler
	Review   *api.ReviewHandler
	User     *api.UserHandler
	Admin    *api.AdminHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Property: p.Property,
		Search:   p.Search,
		Booking:  p.Booking,
		Review:   p.Review,
		User:     p.User,
		Admin:    p.Admin,
	}
}

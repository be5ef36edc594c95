package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"staybook/internal/domain/user"
	"staybook/internal/handler/api"
	"staybook/internal/handler/middleware"
	"staybook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Property *api.PropertyHandler
	Search   *api.SearchHandler
	Booking  *api.BookingHandler
	Review   *api.ReviewHandler
	User     *api.UserHandler
	Admin    *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, auth *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Authenticated by the gateway signature, not a bearer token.
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/webhooks/payments", Handler: h.Booking.Webhook},
		})

		public := apiGroup.Group("")
		addRoutes(public, []route{
			{Method: http.MethodGet, Path: "/properties", Handler: h.Property.List},
			{Method: http.MethodGet, Path: "/properties/:id", Handler: h.Property.Get},
			{Method: http.MethodGet, Path: "/properties/:id/reviews", Handler: h.Review.ListByProperty},
			{Method: http.MethodGet, Path: "/reviews/:id", Handler: h.Review.Get},
			{Method: http.MethodGet, Path: "/search", Handler: h.Search.Search, Mw: []gin.HandlerFunc{auth.OptionalAuth()}},
		})

		authed := apiGroup.Group("")
		authed.Use(auth.RequireAuth())
		ownerOnly := []gin.HandlerFunc{auth.RequireRoleAtLeast(user.RoleOwner)}
		addRoutes(authed, []route{
			{Method: http.MethodPost, Path: "/properties", Handler: h.Property.Create, Mw: ownerOnly},
			{Method: http.MethodPatch, Path: "/properties/:id", Handler: h.Property.Update, Mw: ownerOnly},
			{Method: http.MethodDelete, Path: "/properties/:id", Handler: h.Property.Delete, Mw: ownerOnly},
			{Method: http.MethodPost, Path: "/properties/:id/rooms", Handler: h.Property.CreateRoom, Mw: ownerOnly},
			{Method: http.MethodPatch, Path: "/rooms/:id", Handler: h.Property.UpdateRoom, Mw: ownerOnly},
			{Method: http.MethodDelete, Path: "/rooms/:id", Handler: h.Property.DeleteRoom, Mw: ownerOnly},

			{Method: http.MethodPost, Path: "/bookings/checkout", Handler: h.Booking.Checkout},
			{Method: http.MethodGet, Path: "/payments/:id", Handler: h.Booking.GetPayment},
			{Method: http.MethodPost, Path: "/payments/:id/confirm", Handler: h.Booking.Confirm},
			{Method: http.MethodGet, Path: "/reservations", Handler: h.Booking.ListReservations},
			{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Booking.GetReservation},
			{Method: http.MethodPost, Path: "/reservations/:id/cancel", Handler: h.Booking.Cancel},

			{Method: http.MethodPost, Path: "/reviews", Handler: h.Review.Create},
			{Method: http.MethodPut, Path: "/reviews/:id", Handler: h.Review.Update},
			{Method: http.MethodDelete, Path: "/reviews/:id", Handler: h.Review.Delete},
			{Method: http.MethodGet, Path: "/users/:id/reviews", Handler: h.Review.ListByUser},

			{Method: http.MethodGet, Path: "/users/me", Handler: h.User.Me},
			{Method: http.MethodGet, Path: "/users/me/profile", Handler: h.User.Profile},
			{Method: http.MethodGet, Path: "/users/me/preferences", Handler: h.User.GetPreferences},
			{Method: http.MethodPost, Path: "/users/me/preferences", Handler: h.User.CreatePreferences},
			{Method: http.MethodPatch, Path: "/users/me/preferences", Handler: h.User.UpdatePreferences},
			{Method: http.MethodGet, Path: "/users/me/favorites", Handler: h.User.ListFavorites},
			{Method: http.MethodPost, Path: "/users/me/favorites", Handler: h.User.AddFavorite},
			{Method: http.MethodDelete, Path: "/users/me/favorites/:id", Handler: h.User.RemoveFavorite},

			{Method: http.MethodPost, Path: "/admin/clusters/refresh", Handler: h.Admin.RefreshClusters,
				Mw: []gin.HandlerFunc{auth.RequireRoleAtLeast(user.RoleAdmin)}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		g.Handle(r.Method, r.Path, h)
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

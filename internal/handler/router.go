package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"expertbook/internal/handler/api"
	"expertbook/internal/handler/middleware"
	"expertbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	expertHandler *api.ExpertHandler,
	eventTypeHandler *api.EventTypeHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, expertHandler, eventTypeHandler, bookingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	expertHandler *api.ExpertHandler,
	eventTypeHandler *api.EventTypeHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
				{Method: http.MethodPatch, Path: "/me", Handler: authHandler.UpdateProfile},
				{Method: http.MethodPatch, Path: "/me/password", Handler: authHandler.ChangePassword},
				{Method: http.MethodPost, Path: "/become-expert", Handler: authHandler.BecomeExpert},
			})
		}

		experts := apiGroup.Group("/experts")
		{
			addRoutes(experts, []route{
				{Method: http.MethodGet, Path: "", Handler: expertHandler.ListExperts},
				{
					Method: http.MethodPut, Path: "/availability", Handler: expertHandler.UpdateAvailability,
					Mw: []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireExpert()},
				},
				{Method: http.MethodGet, Path: "/:id", Handler: expertHandler.GetExpert},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: expertHandler.GetAvailability},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: expertHandler.ListSlots},
				{Method: http.MethodGet, Path: "/:id/stream", Handler: expertHandler.StreamSlotEvents},
			})
		}

		eventTypes := apiGroup.Group("/event-types")
		{
			addRoutes(eventTypes, []route{
				{Method: http.MethodGet, Path: "/expert/:expertId", Handler: eventTypeHandler.ListByExpert},
			})

			owning := eventTypes.Group("")
			owning.Use(authMiddleware.RequireAuth(), authMiddleware.RequireExpert())
			addRoutes(owning, []route{
				{Method: http.MethodPost, Path: "", Handler: eventTypeHandler.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: eventTypeHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: eventTypeHandler.Delete},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: bookingHandler.UpdateStatus},
				{Method: http.MethodPost, Path: "/:id/reschedule", Handler: bookingHandler.Reschedule},
				{Method: http.MethodGet, Path: "/:id/calendar", Handler: bookingHandler.DownloadCalendar},
			})
		}
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
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

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"flexin/internal/handler/api"
	"flexin/internal/handler/middleware"
	"flexin/internal/pkg/config"
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
	bookingHandler *api.BookingHandler,
	swapHandler *api.SwapHandler,
	settingsHandler *api.SettingsHandler,
	userHandler *api.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookingHandler, swapHandler, settingsHandler, userHandler, authMiddleware)
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
	bookingHandler *api.BookingHandler,
	swapHandler *api.SwapHandler,
	settingsHandler *api.SettingsHandler,
	userHandler *api.UserHandler,
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
				{Method: http.MethodPost, Path: "/verify-email", Handler: authHandler.VerifyEmail},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
				{Method: http.MethodPost, Path: "/forgot-password", Handler: authHandler.ForgotPassword},
				{Method: http.MethodPost, Path: "/reset-password", Handler: authHandler.ResetPassword},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListMyBookings},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.CancelBooking},
			})
		}

		capacity := apiGroup.Group("/capacity")
		capacity.Use(authMiddleware.RequireAuth())
		{
			addRoutes(capacity, []route{
				{Method: http.MethodGet, Path: "/:date", Handler: bookingHandler.GetDayCapacity},
			})
		}

		swaps := apiGroup.Group("/swap-requests")
		swaps.Use(authMiddleware.RequireAuth())
		{
			addRoutes(swaps, []route{
				{Method: http.MethodPost, Path: "", Handler: swapHandler.CreateSwapRequest},
				{Method: http.MethodGet, Path: "", Handler: swapHandler.ListMySwapRequests},
				{Method: http.MethodGet, Path: "/incoming", Handler: swapHandler.ListIncomingSwapRequests},
				{Method: http.MethodDelete, Path: "/:id", Handler: swapHandler.WithdrawSwapRequest},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: swapHandler.ApproveSwapRequest},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: swapHandler.RejectSwapRequest},
			})
		}

		settings := apiGroup.Group("/settings")
		settings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(settings, []route{
				{Method: http.MethodGet, Path: "", Handler: settingsHandler.GetSettings},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: userHandler.ListUsers},
				{Method: http.MethodPatch, Path: "/me", Handler: userHandler.UpdateProfile},
				{Method: http.MethodGet, Path: "/:id", Handler: userHandler.GetUser},
				{Method: http.MethodGet, Path: "/:id/stats", Handler: userHandler.GetUserStats},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings/pending", Handler: bookingHandler.ListPendingBookings},
				{Method: http.MethodPost, Path: "/bookings/:id/approve", Handler: bookingHandler.ApproveBooking},
				{Method: http.MethodPost, Path: "/bookings/:id/reject", Handler: bookingHandler.RejectBooking},
				{Method: http.MethodPatch, Path: "/settings", Handler: settingsHandler.UpdateSettings},
				{Method: http.MethodPost, Path: "/blocked-dates", Handler: settingsHandler.BlockDate},
				{Method: http.MethodDelete, Path: "/blocked-dates/:date", Handler: settingsHandler.UnblockDate},
				{Method: http.MethodPost, Path: "/announcements", Handler: settingsHandler.PublishAnnouncement},
				{Method: http.MethodDelete, Path: "/announcements", Handler: settingsHandler.ClearAnnouncement},
				{Method: http.MethodDelete, Path: "/users/:id", Handler: userHandler.DeleteUser},
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

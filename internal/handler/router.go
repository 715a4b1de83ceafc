package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parkhub/internal/domain/user"
	"parkhub/internal/handler/api"
	"parkhub/internal/handler/middleware"
	"parkhub/internal/pkg/config"
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
	parkingHandler *api.ParkingHandler,
	reservationHandler *api.ReservationHandler,
	sessionHandler *api.SessionHandler,
	subscriptionHandler *api.SubscriptionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, parkingHandler, reservationHandler, sessionHandler, subscriptionHandler, authMiddleware)
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
	parkingHandler *api.ParkingHandler,
	reservationHandler *api.ReservationHandler,
	sessionHandler *api.SessionHandler,
	subscriptionHandler *api.SubscriptionHandler,
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
			})
		}

		parkings := apiGroup.Group("/parkings")
		{
			addRoutes(parkings, []route{
				{Method: http.MethodGet, Path: "", Handler: parkingHandler.ListParkings},
				{Method: http.MethodGet, Path: "/nearby", Handler: parkingHandler.NearbyParkings},
				{Method: http.MethodGet, Path: "/:id", Handler: parkingHandler.GetParking},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: parkingHandler.GetAvailability},
			})

			ownerRequired := parkings.Group("")
			ownerRequired.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOwner))
			addRoutes(ownerRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: parkingHandler.CreateParking},
				{Method: http.MethodPatch, Path: "/:id", Handler: parkingHandler.UpdateParking},
				{Method: http.MethodDelete, Path: "/:id", Handler: parkingHandler.DeactivateParking},
				{Method: http.MethodGet, Path: "/:id/revenue", Handler: parkingHandler.GetMonthlyRevenue},
				{Method: http.MethodGet, Path: "/:id/overstays", Handler: sessionHandler.ListOverstayingSessions},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.GetUserReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.CancelReservation},
			})
		}

		sessions := apiGroup.Group("/sessions")
		sessions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(sessions, []route{
				{Method: http.MethodPost, Path: "", Handler: sessionHandler.EnterParking},
				{Method: http.MethodGet, Path: "", Handler: sessionHandler.GetUserSessions},
				{Method: http.MethodGet, Path: "/:id", Handler: sessionHandler.GetSession},
				{Method: http.MethodPost, Path: "/:id/exit", Handler: sessionHandler.ExitParking},
			})
		}

		subscriptions := apiGroup.Group("/subscriptions")
		subscriptions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(subscriptions, []route{
				{Method: http.MethodPost, Path: "", Handler: subscriptionHandler.Subscribe},
				{Method: http.MethodGet, Path: "", Handler: subscriptionHandler.GetUserSubscriptions},
				{Method: http.MethodGet, Path: "/:id", Handler: subscriptionHandler.GetSubscription},
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

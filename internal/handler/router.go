package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"arbitat/internal/domain/user"
	"arbitat/internal/handler/api"
	"arbitat/internal/handler/middleware"
	"arbitat/internal/pkg/config"
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
	listingHandler *api.ListingHandler,
	matchHandler *api.MatchHandler,
	paymentHandler *api.PaymentHandler,
	ownerHandler *api.OwnerHandler,
	favoriteHandler *api.FavoriteHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, listingHandler, matchHandler, paymentHandler, ownerHandler, favoriteHandler, authMiddleware)
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
	listingHandler *api.ListingHandler,
	matchHandler *api.MatchHandler,
	paymentHandler *api.PaymentHandler,
	ownerHandler *api.OwnerHandler,
	favoriteHandler *api.FavoriteHandler,
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
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		listings := apiGroup.Group("/listings")
		listings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(listings, []route{
				{Method: http.MethodGet, Path: "", Handler: listingHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: listingHandler.GetByID},
				{Method: http.MethodGet, Path: "/:id/quote", Handler: listingHandler.Quote},
				{Method: http.MethodPost, Path: "", Handler: listingHandler.Create, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleOwner)}},
			})
		}

		renter := apiGroup.Group("")
		renter.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleRenter))
		{
			addRoutes(renter, []route{
				{Method: http.MethodGet, Path: "/feed", Handler: matchHandler.Feed},
				{Method: http.MethodPost, Path: "/decisions", Handler: matchHandler.Decide},
				{Method: http.MethodGet, Path: "/matches", Handler: matchHandler.Matches},
				{Method: http.MethodGet, Path: "/compare", Handler: matchHandler.Compare},
				{Method: http.MethodGet, Path: "/compare/selection", Handler: matchHandler.Selection},
				{Method: http.MethodPost, Path: "/compare/selection", Handler: matchHandler.ToggleCompare},
				{Method: http.MethodGet, Path: "/favorites", Handler: favoriteHandler.List},
				{Method: http.MethodPost, Path: "/favorites", Handler: favoriteHandler.Toggle},
				{Method: http.MethodPost, Path: "/payments", Handler: paymentHandler.Submit},
				{Method: http.MethodGet, Path: "/bookings", Handler: paymentHandler.ListBookings},
			})
		}

		owner := apiGroup.Group("/owner")
		owner.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleOwner))
		{
			addRoutes(owner, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: ownerHandler.Dashboard},
				{Method: http.MethodGet, Path: "/bookings", Handler: ownerHandler.Bookings},
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

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thejulge/internal/handler/api"
	"thejulge/internal/handler/middleware"
	"thejulge/internal/pkg/config"
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
	logger *middleware.Logger,
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	listingHandler *api.ListingHandler,
	applicationHandler *api.ApplicationHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, authHandler, profileHandler, listingHandler, applicationHandler, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	listingHandler *api.ListingHandler,
	applicationHandler *api.ApplicationHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	apiGroup.Use(sessionMiddleware.Attach())
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.Signup},
			})

			authRequired := auth.Group("")
			authRequired.Use(sessionMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/:user_id", Handler: profileHandler.GetUser},
				{Method: http.MethodPut, Path: "/:user_id", Handler: profileHandler.UpdateUser, Mw: []gin.HandlerFunc{sessionMiddleware.RequireAuth()}},
			})
		}

		feed := apiGroup.Group("/feed")
		{
			addRoutes(feed, []route{
				{Method: http.MethodGet, Path: "", Handler: listingHandler.GetFeed},
				{Method: http.MethodPut, Path: "/filter", Handler: listingHandler.ApplyFilter},
				{Method: http.MethodPut, Path: "/page", Handler: listingHandler.SetPage},
				{Method: http.MethodPost, Path: "/refresh", Handler: listingHandler.Refresh},
				{Method: http.MethodDelete, Path: "/error", Handler: listingHandler.DismissError},
			})
		}

		notices := apiGroup.Group("/shops/:shop_id/notices/:notice_id")
		{
			addRoutes(notices, []route{
				{Method: http.MethodGet, Path: "", Handler: listingHandler.GetNoticeDetail},
			})

			applications := notices.Group("/applications")
			applications.Use(sessionMiddleware.RequireAuth())
			addRoutes(applications, []route{
				{Method: http.MethodPost, Path: "", Handler: applicationHandler.Submit},
				{Method: http.MethodPut, Path: "/:application_id", Handler: applicationHandler.UpdateStatus},
			})
		}
	}
}

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

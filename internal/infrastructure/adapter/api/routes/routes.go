package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/session"
)

// Handlers groups the HTTP handlers
type Handlers struct {
	Profile *handler.ProfileHandler
	Funds   *handler.FundsHandler
	Auth    *handler.AuthHandler
	Health  *handler.HealthHandler
	// Metrics serves the Prometheus scrape endpoint, nil to disable
	Metrics http.Handler
}

// Options configures session-bound routes
type Options struct {
	MetricsPath    string
	StaticDir      string
	DevLogin       bool
	AuthCookieName string
	Session        middleware.SessionOptions
	Registry       *session.Registry
	TokenVerifier  middleware.TokenVerifier
	HTTPObserver   middleware.HTTPObserver
	Logger         coreport.Logger
	TimeProvider   coreport.TimeProvider
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, opts Options) {
	router.Use(middleware.ErrorHandler(opts.Logger))
	router.Use(middleware.Logger(opts.Logger, opts.TimeProvider))
	if opts.HTTPObserver != nil {
		router.Use(middleware.Metrics(opts.HTTPObserver, opts.TimeProvider))
	}
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, opts Options) {
	router.GET("/healthz", h.Health.Health)
	if h.Metrics != nil {
		router.GET(opts.MetricsPath, gin.WrapH(h.Metrics))
	}
	if opts.StaticDir != "" {
		router.Static("/static", opts.StaticDir)
	}

	// Everything below is bound to a session and its identity; cookieless
	// bearer clients share one session per principal
	appSession := opts.Session
	if appSession.Verifier == nil {
		appSession.Verifier = opts.TokenVerifier
	}
	app := router.Group("/",
		middleware.Session(opts.Registry, appSession),
		middleware.Auth(opts.TokenVerifier, opts.AuthCookieName, opts.Logger),
	)
	{
		app.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/profile") })
		app.GET("/profile", h.Profile.Page)
		app.POST("/profile/reload", h.Profile.Reload)
		app.POST("/profile/funds/open", h.Funds.Open)
		app.POST("/profile/funds/close", h.Funds.Close)
		app.POST("/profile/funds", h.Funds.Submit)
		app.POST("/logout", h.Auth.Logout)

		app.GET("/api/profile", h.Profile.JSON)
		app.GET("/api/profile/ws", h.Profile.Stream)
		app.POST("/api/profile/funds", h.Funds.AddFunds)
	}

	// Dev login issues its own token, so it only needs the session
	if opts.DevLogin {
		router.GET("/dev/login", middleware.Session(opts.Registry, opts.Session), h.Auth.DevLogin)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
	assetport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/asset"
	messagingport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/usecase/logo"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/usecase/profile"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/usecase/wallet"

	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/api/view"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/asset"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/messaging"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/session"
	timeProvider "github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	warnProductionConfig(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.IsProduction())
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	location, err := time.LoadLocation(cfg.Profile.TimeZone)
	if err != nil {
		location = time.UTC
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	var appMetrics coreport.Metrics = coreport.NoopMetrics{}
	var promMetrics *metrics.Prometheus
	if cfg.Metrics.Enabled {
		promMetrics = metrics.NewPrometheus(registry, cfg.Metrics.Namespace)
		appMetrics = promMetrics
	}

	// Database
	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	if promMetrics != nil {
		dbManager.WithPoolRecorder(promMetrics)
	}
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	if _, err := dbManager.Connect(startupCtx); err != nil {
		cancelStartup()
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(startupCtx, cfg.Database.SeedDemoData); err != nil {
		cancelStartup()
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	accountRepo := repository.NewAccountRepository(dbManager.DB(), appLogger.Named("accounts"))
	tradeRepo := repository.NewTradeRepository(dbManager.DB(), appLogger.Named("trades"))
	eventRepo := repository.NewEventRepository(dbManager.DB(), appLogger.Named("events"))
	walletRepo := repository.NewWalletRepository(dbManager.DB(), tp, appLogger.Named("wallet"))

	// Logo cache: shared through Redis when configured
	var logoCache assetport.LogoCache = asset.NewMemoryCache(tp)
	if cfg.Redis.Addr != "" {
		rdb, err := asset.ConnectRedis(startupCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			appLogger.Warn("Redis unavailable, using in-process logo cache", map[string]any{"error": err.Error()})
		} else {
			defer rdb.Close()
			logoCache = asset.NewRedisCache(rdb, cfg.Redis.KeyPrefix)
		}
	}
	cancelStartup()

	// Funds events
	var publisher messagingport.FundsPublisher = messaging.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		writer := messaging.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		publisher = messaging.NewKafkaPublisher(writer, tp, appLogger.Named("kafka"))
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			appLogger.Warn("Failed to close funds publisher", map[string]any{"error": err.Error()})
		}
	}()

	// Use cases
	loader := profile.NewLoader(accountRepo, tradeRepo, eventRepo, cfg.Profile.FanOutLimit, appLogger.Named("loader"))
	funds := wallet.NewService(walletRepo, publisher, tp, appMetrics, appLogger.Named("funds"))
	logos := logo.NewResolver(
		asset.NewHTTPProber(nil, cfg.Assets.ProbeTimeout),
		logoCache,
		logo.Options{
			URLTemplate:  cfg.Assets.LogoURLTemplate,
			FoundTTL:     cfg.Assets.FoundTTL,
			MissingTTL:   cfg.Assets.MissingTTL,
			ProbeTimeout: cfg.Assets.ProbeTimeout,
		},
		tp, appMetrics, appLogger.Named("logos"),
	)

	pageDeps := profile.PageDeps{
		Loader:       loader,
		Funds:        funds,
		Logos:        logos,
		LoadTimeout:  cfg.Profile.LoadTimeout,
		Location:     location,
		TimeProvider: tp,
		Metrics:      appMetrics,
		Logger:       appLogger.Named("profile"),
	}
	sessions := session.NewRegistry(func(identity *session.IdentityState) *profile.Page {
		return profile.NewPage(identity, pageDeps)
	}, cfg.Session.IdleTTL, tp, appLogger.Named("sessions"))
	if promMetrics != nil {
		sessions.OnCount(promMetrics.SetActiveSessions)
	}
	sessions.StartJanitor(cfg.Session.JanitorInterval)

	tokens := auth.NewTokenService(cfg.Auth.TokenSecret, cfg.Auth.Issuer, tp)

	// HTTP
	templates, err := view.Load()
	if err != nil {
		appLogger.Error("Failed to parse templates", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	router := gin.New()
	router.SetHTMLTemplate(templates)

	opts := routes.Options{
		MetricsPath:    cfg.Metrics.Path,
		StaticDir:      cfg.Assets.StaticDir,
		DevLogin:       cfg.Auth.DevLogin && !cfg.IsProduction(),
		AuthCookieName: cfg.Auth.CookieName,
		Session: middleware.SessionOptions{
			CookieName: cfg.Session.CookieName,
			MaxAge:     int(cfg.Session.IdleTTL.Seconds()),
			Secure:     cfg.Auth.SecureCookies,
		},
		Registry:      sessions,
		TokenVerifier: tokens,
		Logger:        appLogger.Named("http"),
		TimeProvider:  tp,
	}
	handlers := routes.Handlers{
		Profile: handler.NewProfileHandler(appLogger.Named("http")),
		Funds:   handler.NewFundsHandler(appLogger.Named("http")),
		Auth:    handler.NewAuthHandler(tokens, cfg.Auth.CookieName, cfg.Auth.DevTokenTTL, cfg.Auth.SecureCookies, appLogger.Named("http")),
		Health:  handler.NewHealthHandler(dbManager, sessions),
	}
	if promMetrics != nil {
		opts.HTTPObserver = promMetrics
		handlers.Metrics = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	}

	routes.SetupMiddlewares(router, opts)
	routes.SetupRoutes(router, handlers, opts)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	// Stops every session's profile watcher
	sessions.Close()

	appLogger.Info("Server exited gracefully", nil)
}

// warnProductionConfig logs settings that are legal but unsafe in production
func warnProductionConfig(cfg *config.Config) {
	if !cfg.IsProduction() {
		return
	}

	var warnings []string
	sslMode := strings.ToLower(cfg.Database.SSLMode)
	if cfg.Database.Driver == database.DriverPostgres && sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
		warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca', or 'verify-full' in production")
	}
	if cfg.Database.Driver == database.DriverSQLite {
		warnings = append(warnings, "database.driver sqlite is meant for development and tests")
	}
	if !cfg.Auth.SecureCookies {
		warnings = append(warnings, "auth.secureCookies should be enabled in production")
	}
	if cfg.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}

	if len(warnings) > 0 {
		log.Printf("Warning: potential security issues in production configuration: %v", warnings)
	}
}

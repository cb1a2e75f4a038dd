package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/ghuser/menuboard/docs/swagger"
	"github.com/ghuser/menuboard/pkg/app"
	"github.com/ghuser/menuboard/pkg/cache"
	"github.com/ghuser/menuboard/pkg/config"
	"github.com/ghuser/menuboard/pkg/database"
	"github.com/ghuser/menuboard/pkg/events"
	"github.com/ghuser/menuboard/pkg/httpx"
	"github.com/ghuser/menuboard/pkg/logger"
	"github.com/ghuser/menuboard/pkg/telemetry"
	menuApi "github.com/ghuser/menuboard/services/menu/application/api"
	menuSvcs "github.com/ghuser/menuboard/services/menu/application/services"
	"github.com/ghuser/menuboard/services/menu/application/subscribers"
	menuPersistence "github.com/ghuser/menuboard/services/menu/infrastructure/persistence"
)

//	@title			Menuboard API
//	@version		1.0
//	@description	Menu CRUD service with a browser admin page.
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//	@host			localhost:8080
//	@BasePath		/api
//	@schemes		http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	appConfig := &app.Application{Config: cfg, Logger: log}

	if cfg.NeedsDatabase() {
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
		}
		defer pool.Close() //nolint:errcheck
		appConfig.Db = pool
	}

	if cfg.NeedsRedis() {
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure
		}
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")
		appConfig.Redis = redisClient
	}

	switch cfg.EventsBackend {
	case config.EventsPostgres:
		eventBus, err := events.NewEventBusWithForwarder(cfg, log)
		if err != nil {
			log.Error("failed to setup event bus", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer eventBus.Close() //nolint:errcheck
		if err := eventBus.StartForwarder(ctx); err != nil {
			log.Error("failed to start event forwarder", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		appConfig.EventBus = eventBus
	case config.EventsMemory:
		eventBus := events.NewInMemoryEventBus(log)
		defer eventBus.Close() //nolint:errcheck
		appConfig.EventBus = eventBus
		// No worker can reach an in-process bus, so the API audits its own changes.
		if err := subscribers.Register(ctx, appConfig); err != nil {
			log.Error("failed to register subscribers", "error", err)
			os.Exit(1) //nolint:gocritic
		}
	}

	repo, err := menuPersistence.Open(ctx, appConfig)
	if err != nil {
		log.Error("failed to open menu storage", "backend", cfg.MenuBackend, "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("menu storage ready", "backend", cfg.MenuBackend)
	svcs := menuSvcs.New(appConfig, repo)

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RateLimitPerMinute: cfg.RateLimitPerMinute,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		telemetry.HTTPMiddleware(cfg.ServiceName),
	)

	checks := httpx.HealthChecks{"storage": repo}
	if appConfig.Db != nil {
		checks["database"] = appConfig.Db
	}
	if appConfig.Redis != nil {
		checks["redis"] = appConfig.Redis
	}
	if appConfig.EventBus != nil {
		checks["events"] = appConfig.EventBus
	}
	r.Get("/health", httpx.HealthHandler(checks))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	menuApi.AdminRoutes(r, appConfig)
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, svcs)
	})

	srv := httpx.NewServer(cfg.Addr(), r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	stop()
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
func registerRoutes(r chi.Router, menu *menuSvcs.Services) {
	menuApi.MenuRoutes(r, menu)
}

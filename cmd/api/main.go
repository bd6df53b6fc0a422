// srikarboske | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/s225280351srikarboske/project/internal/admin"
	"github.com/s225280351srikarboske/project/internal/auth"
	"github.com/s225280351srikarboske/project/internal/chat"
	"github.com/s225280351srikarboske/project/internal/config"
	"github.com/s225280351srikarboske/project/internal/core"
	"github.com/s225280351srikarboske/project/internal/customer"
	"github.com/s225280351srikarboske/project/internal/health"
	"github.com/s225280351srikarboske/project/internal/issue"
	"github.com/s225280351srikarboske/project/internal/middleware"
	"github.com/s225280351srikarboske/project/internal/property"
	"github.com/s225280351srikarboske/project/internal/server"
	"github.com/s225280351srikarboske/project/internal/tenant"
	"github.com/s225280351srikarboske/project/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	rdb, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.GetKeyID(),
	)

	uploader, err := property.NewImageUploader(cfg.Uploads)
	if err != nil {
		return err
	}

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)

	authSvc := auth.NewService(jwtManager, userSvc)
	authHandler := auth.NewHandler(authSvc)

	propertyRepo := property.NewRepository(db.DB)
	propertySvc := property.NewService(propertyRepo)
	propertyHandler := property.NewHandler(propertySvc, uploader)

	tenantRepo := tenant.NewRepository(db.DB)
	tenantSvc := tenant.NewService(db.DB, tenantRepo, propertySvc)
	tenantHandler := tenant.NewHandler(tenantSvc)

	customerRepo := customer.NewRepository(db.DB)
	customerSvc := customer.NewService(customerRepo)
	customerHandler := customer.NewHandler(customerSvc)

	issueRepo := issue.NewRepository(db.DB)
	issueSvc := issue.NewService(issueRepo, propertySvc)
	issueHandler := issue.NewHandler(issueSvc)

	chatRepo := chat.NewRepository(db.DB)
	chatSvc := chat.NewService(chatRepo, propertySvc)
	chatHandler := chat.NewHandler(chatSvc)

	healthHandler := health.NewHandler()
	healthHandler.AddCheck("database", db.Ping)
	healthHandler.AddCheck("redis", rdb.Ping)
	healthHandler.AddCheck("uploads", health.UploadsDirCheck(cfg.Uploads.Dir))

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		DB:         db.DB,
		DBStats:    db.Stats,
		RedisStats: rdb.PoolStats,
	})

	srv := server.New(server.Config{
		Server: cfg.Server,
		Health: healthHandler,
		Logger: logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(rdb.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())

	uploadsFS := http.FileServer(http.Dir(cfg.Uploads.Dir))
	router.Handle(
		cfg.Uploads.PublicBase+"/*",
		http.StripPrefix(cfg.Uploads.PublicBase+"/", uploadsFS),
	)

	authenticator := middleware.Authenticator(jwtManager)
	optionalAuth := middleware.OptionalAuth(jwtManager)
	adminOnly := middleware.RequireAdmin
	tenantOnly := middleware.RequireTenant

	authLimiter := middleware.NewRateLimiter(
		rdb.Client,
		middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.AuthRequests,
				cfg.RateLimit.AuthBurst,
			),
			FailOpen: true,
		},
	)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authLimiter.Handler)
			authHandler.RegisterRoutes(r)
		})

		propertyHandler.RegisterRoutes(r, optionalAuth, authenticator, adminOnly)
		tenantHandler.RegisterRoutes(r, authenticator, adminOnly)
		customerHandler.RegisterRoutes(r, authenticator, adminOnly, tenantOnly)
		issueHandler.RegisterRoutes(r, optionalAuth, authenticator, adminOnly)
		chatHandler.RegisterRoutes(r, optionalAuth)
		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := rdb.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

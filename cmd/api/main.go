package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"io.winapps.florafauna/internal/catalog"
	"io.winapps.florafauna/internal/config"
	"io.winapps.florafauna/internal/db"
	"io.winapps.florafauna/internal/handlers"
	"io.winapps.florafauna/internal/logging"
	"io.winapps.florafauna/internal/middleware"
	"io.winapps.florafauna/internal/remote"
	"io.winapps.florafauna/internal/render"
	"io.winapps.florafauna/internal/scheduler"
	"io.winapps.florafauna/internal/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Redis
	redisClient, err := db.InitRedis(context.Background(), cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}
	defer redisClient.Close()

	connectOpts := remote.ConnectOptions{
		HTTPClient: &http.Client{Timeout: cfg.LoadTimeout},
		Postgres:   cfg.Postgres,
	}
	service := catalog.NewService(catalog.Options{
		Table:       cfg.Table,
		LoadTimeout: cfg.LoadTimeout,
		Settings:    settings.NewRedisStore(redisClient),
		Fallback:    cfg.Remote,
		Logger:      logger.Named("catalog"),
		Dial: func(ctx context.Context, creds settings.Credentials) (remote.Store, error) {
			return remote.Connect(ctx, cfg.StoreDriver, creds.EndpointURL, creds.AccessKey, connectOpts)
		},
	})
	defer service.Close()

	startCtx, cancelStart := context.WithTimeout(context.Background(), cfg.LoadTimeout+5*time.Second)
	if err := service.Start(startCtx); err != nil {
		cancelStart()
		log.Fatalf("Failed to start catalog: %v", err)
	}
	cancelStart()

	refresh, err := scheduler.New(cfg.RefreshSchedule, service, cfg.LoadTimeout, logger.Named("scheduler"))
	if err != nil {
		log.Fatalf("Failed to initialize scheduler: %v", err)
	}
	refresh.Start()
	defer refresh.Stop()

	tmpl, err := render.Templates()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(
		middleware.RequestIDMiddleware(),
		middleware.RequestLoggingMiddleware(logger.Named("http")),
		middleware.RecoveryMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	catalogHandler := handlers.NewCatalogHandler(service, logger.Named("handlers"))
	handlers.RegisterRoutes(router, catalogHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Infow("server starting", "port", cfg.Port, "driver", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infow("shutting down server")

	// Give a 5 second timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorw("server forced to shutdown", "error", err)
	}

	logger.Infow("server exited")
}

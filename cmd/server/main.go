package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/fairwaylabs/golf-pool/internal/api/handlers"
	"github.com/fairwaylabs/golf-pool/internal/config"
	"github.com/fairwaylabs/golf-pool/internal/providers"
	"github.com/fairwaylabs/golf-pool/internal/roster"
	"github.com/fairwaylabs/golf-pool/internal/services"
	"github.com/fairwaylabs/golf-pool/internal/web"
	"github.com/fairwaylabs/golf-pool/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Initialize structured logger with service context
	structuredLogger := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	logger.WithService("golf-pool").WithFields(logrus.Fields{
		"environment":      cfg.Env,
		"port":             cfg.Port,
		"refresh_interval": cfg.RefreshInterval.String(),
	}).Info("Starting golf pool service")

	// Setup Gin mode
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Load the static roster once; it is immutable for the process lifetime
	teams, err := roster.Load(cfg.RosterPath)
	if err != nil {
		logger.WithService("golf-pool").Fatalf("Failed to load roster: %v", err)
	}
	logger.WithService("golf-pool").WithField("teams", len(teams)).Info("Roster loaded")

	// Connect to Redis for the feed cache (optional)
	var redisClient *redis.Client
	var cache providers.CacheProvider
	if cfg.CacheEnabled {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.WithService("golf-pool").Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient = redis.NewClient(opt)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.WithService("golf-pool").Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		cache = services.NewCacheService(redisClient)
	} else {
		logger.WithService("golf-pool").Warn("Feed cache disabled, every refresh hits the feed")
	}

	// Initialize services
	circuitBreakerService := services.NewCircuitBreakerService(
		cfg.CircuitBreakerThreshold,
		cfg.CircuitBreakerTimeout,
		structuredLogger,
	)
	mastersClient := providers.NewMastersClient(
		cfg.FeedURL,
		cfg.FeedTimeout,
		cfg.FeedCacheTTL,
		cfg.RetryMaxAttempts,
		cache,
		structuredLogger,
	)
	refreshService := services.NewRefreshService(
		mastersClient,
		teams,
		circuitBreakerService,
		cfg.RefreshInterval,
		structuredLogger,
	)

	// Initialize renderer and handlers
	renderer, err := web.NewRenderer(cfg.HeadshotURLTemplate)
	if err != nil {
		logger.WithService("golf-pool").Fatalf("Failed to initialize renderer: %v", err)
	}

	poolHandler := handlers.NewPoolHandler(refreshService, teams, structuredLogger)
	dashboardHandler := handlers.NewDashboardHandler(refreshService, renderer, cfg.RefreshInterval, structuredLogger)
	healthHandler := handlers.NewHealthHandler(redisClient, refreshService, structuredLogger)

	// Initialize router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/", dashboardHandler.GetDashboard)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/leaderboard", poolHandler.GetLeaderboard)
		apiV1.GET("/summary", poolHandler.GetSummary)
		apiV1.GET("/teams", poolHandler.GetTeams)
		apiV1.POST("/refresh", poolHandler.TriggerRefresh)
	}

	router.GET("/health", healthHandler.GetHealth)
	router.HEAD("/health", healthHandler.GetHealth)
	router.GET("/ready", healthHandler.GetReady)
	router.HEAD("/ready", healthHandler.GetReady)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Run the first refresh cycle in the background so startup is not
	// blocked by the feed; the dashboard shows the error panel until a
	// cycle completes.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.RefreshInterval)
		defer cancel()
		if _, err := refreshService.Refresh(ctx); err != nil {
			logger.WithService("golf-pool").WithError(err).Error("Initial refresh cycle failed")
		}
	}()

	// Start the refresh scheduler
	if err := refreshService.Start(); err != nil {
		logger.WithService("golf-pool").Fatalf("Failed to start refresh service: %v", err)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.WithService("golf-pool").WithField("port", cfg.Port).Info("Golf pool service started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithService("golf-pool").Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.WithService("golf-pool").Info("Shutting down golf pool service...")

	refreshService.Stop()

	// The server has 5 seconds to finish the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithService("golf-pool").Fatalf("Golf pool service forced to shutdown: %v", err)
	}

	logger.WithService("golf-pool").Info("Golf pool service exited")
}

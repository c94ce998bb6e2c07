package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pitelleadami/ChirinIvatan/internal/blobstore"
	"github.com/pitelleadami/ChirinIvatan/internal/config"
	"github.com/pitelleadami/ChirinIvatan/internal/handler"
	"github.com/pitelleadami/ChirinIvatan/internal/infrastructure/database"
	"github.com/pitelleadami/ChirinIvatan/internal/logger"
	"github.com/pitelleadami/ChirinIvatan/internal/metrics"
	"github.com/pitelleadami/ChirinIvatan/internal/middleware"
	"github.com/pitelleadami/ChirinIvatan/internal/repository"
	"github.com/pitelleadami/ChirinIvatan/internal/service"
	"github.com/pitelleadami/ChirinIvatan/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize media storage
	mediaStore, err := blobstore.NewLocalStore(cfg.MediaDir, cfg.MediaBaseURL)
	if err != nil {
		logger.Fatal("Failed to initialize media storage",
			slog.String("error", err.Error()))
	}

	// Initialize repositories
	revisionRepo := repository.NewPostgresRevisionRepository(pool)
	entryRepo := repository.NewPostgresEntryRepository(pool)
	reviewRepo := repository.NewPostgresReviewRepository(pool)
	contributionRepo := repository.NewPostgresContributionRepository(pool)
	workflowRepo := repository.NewPostgresWorkflowRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	revisionService := service.NewRevisionService(revisionRepo, mediaStore, v)
	reviewService := service.NewReviewService(workflowRepo, revisionRepo, reviewRepo, cfg.ReviewHistoryLimit)
	dashboardService := service.NewDashboardService(revisionRepo, entryRepo, reviewRepo, contributionRepo, cfg.ReviewHistoryLimit)
	entryService := service.NewEntryService(entryRepo, contributionRepo)

	// Initialize handlers
	revisionHandler := handler.NewRevisionHandler(revisionService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	entryHandler := handler.NewEntryHandler(entryService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded media is served straight off disk.
	router.Static(cfg.MediaBaseURL, cfg.MediaDir)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public read surface: no identity required
		entries := v1.Group("/entries")
		{
			entries.GET("", entryHandler.ListEntries)
			entries.GET("/:id", entryHandler.GetEntry)
		}

		// Everything else requires a resolved identity
		authed := v1.Group("", middleware.Identity())
		{
			revisions := authed.Group("/revisions")
			{
				revisions.POST("", revisionHandler.CreateRevision)
				revisions.GET("", revisionHandler.ListMyRevisions)
				revisions.GET("/:id", revisionHandler.GetRevision)
				revisions.PATCH("/:id", revisionHandler.UpdateRevision)
				revisions.POST("/:id/submit", revisionHandler.SubmitRevision)
				revisions.POST("/:id/decision", reviewHandler.Decide)
			}

			authed.GET("/reviews", reviewHandler.ListMyReviews)
			authed.GET("/contributions", entryHandler.MyContributions)
			authed.GET("/dashboard", dashboardHandler.Overview)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

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
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-cms/internal/config"
	"blog-cms/internal/handler"
	"blog-cms/internal/infrastructure/database"
	"blog-cms/internal/logger"
	"blog-cms/internal/metrics"
	"blog-cms/internal/middleware"
	"blog-cms/internal/repository"
	"blog-cms/internal/service"
	"blog-cms/internal/validator"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	// Bring the schema up to date before serving
	if err := database.Migrate(cfg.MigrationsPath, cfg.DatabaseURL(), database.MigrateUp); err != nil {
		logger.Fatal("Failed to run migrations",
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

	// Initialize repositories
	postRepo := repository.NewPostgresPostRepository(pool)
	authorRepo := repository.NewPostgresAuthorRepository(pool)
	categoryRepo := repository.NewPostgresCategoryRepository(pool)
	tagRepo := repository.NewPostgresTagRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)
	messageRepo := repository.NewPostgresContactMessageRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	contentService := service.NewContentService(postRepo, authorRepo, categoryRepo, tagRepo, commentRepo, messageRepo, v)
	manageService := service.NewManageService(postRepo, authorRepo, categoryRepo, tagRepo, commentRepo, messageRepo, v)
	authService := service.NewAuthService(authorRepo, v, cfg.JWTSecret, cfg.SessionTTL)

	// Rate limiters
	loginLimiter := middleware.NewRateLimiter("login", cfg.LoginRateLimit, cfg.RateLimitWindow)
	defer loginLimiter.Stop()
	publicLimiter := middleware.NewRateLimiter("public", cfg.PublicRateLimit, cfg.RateLimitWindow)
	defer publicLimiter.Stop()

	// Initialize handlers
	paging := handler.Paging{DefaultLimit: cfg.DefaultPageSize, MaxLimit: cfg.MaxPageSize}
	healthHandler := handler.NewHealthHandler(pool, version)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.Session(authService))
	router.Use(middleware.AccessLog())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler.RegisterRoutes(router, handler.Routes{
		Posts:       handler.NewPostHandler(contentService, paging),
		Taxonomy:    handler.NewTaxonomyHandler(contentService, paging),
		Authors:     handler.NewAuthorHandler(contentService, paging),
		Contact:     handler.NewContactHandler(contentService),
		Auth:        handler.NewAuthHandler(authService, cfg.SessionCookieSecure),
		Panel:       handler.NewPanelHandler(manageService, paging),
		LoginLimit:  loginLimiter.Limit(),
		PublicLimit: publicLimiter.Limit(),
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      corsHandler.Handler(router),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("version", version))
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

	metrics.LogPoolStats(pool)
	logger.Info("Server exited")
}

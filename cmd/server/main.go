package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"voltdrive/internal/config"
	"voltdrive/internal/handlers"
	"voltdrive/internal/middleware"
	"voltdrive/internal/repositories/mongodb"
	"voltdrive/internal/services"
	"voltdrive/pkg/cache"
	"voltdrive/pkg/database"
	"voltdrive/pkg/logger"
	"voltdrive/pkg/storage"
	"voltdrive/routes"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:      cfg.App.LogLevel,
		Format:     logFormat(cfg),
		Output:     "stdout",
		TimeFormat: time.RFC3339,
		Colors:     cfg.App.Debug,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Backing stores
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to Redis: %v", err)
	}

	store, err := newStorage(cfg)
	if err != nil {
		appLogger.Fatalf("Failed to initialize storage: %v", err)
	}

	// Repositories
	vehicleRepo := mongodb.NewVehicleRepository(db.Database, redisCache, cfg.Redis.CatalogTTL, appLogger)
	bookingRepo := mongodb.NewBookingRepository(db.Database)
	inquiryRepo := mongodb.NewInquiryRepository(db.Database)

	// Services
	notificationService := services.NewNotificationService(cfg, appLogger)
	catalogService := services.NewCatalogService(vehicleRepo, appLogger)
	bookingService := services.NewBookingService(vehicleRepo, bookingRepo, store, notificationService, cfg.Booking, appLogger)
	inquiryService := services.NewInquiryService(inquiryRepo, notificationService, appLogger)

	// Handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService, cfg.App.Currency)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	healthHandler := handlers.NewHealthHandler(db, redisCache, cfg.App.Version)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware(appLogger))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LocaleMiddleware())

	// API routes
	v1 := router.Group("/api/v1")
	{
		routes.SetupCatalogRoutes(v1, catalogHandler)
		routes.SetupBookingRoutes(v1, bookingHandler)
		routes.SetupInquiryRoutes(v1, inquiryHandler)
	}

	// Health check
	router.GET("/health", healthHandler.Check)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Infof("Starting %s on port %d", cfg.App.Name, cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Errorf("Forced shutdown: %v", err)
	}
	if err := redisCache.Close(); err != nil {
		appLogger.Errorf("Failed to close Redis: %v", err)
	}
	if err := db.Close(); err != nil {
		appLogger.Errorf("Failed to close MongoDB: %v", err)
	}

	appLogger.Info("Server stopped")
}

func logFormat(cfg *config.Config) string {
	if cfg.App.Environment == "production" {
		return "json"
	}
	return "text"
}

func newStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.Storage.Provider == "aws" {
		return storage.NewAWSS3Storage(cfg.Storage.AWS.Region, cfg.Storage.AWS.Bucket, cfg.Storage.AWS.CDNDomain)
	}
	return storage.NewLocalStorage(cfg.Storage.Local.BasePath, cfg.Storage.Local.BaseURL)
}

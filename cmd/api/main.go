package main

// @title Parking Microservice API
// @version 1.0.0
// @description Read-oriented parking-bay location service for the Melbourne CBD. Given an address/landmark query or a coordinate pair, returns nearby parking bays with normalized occupancy status, per-segment summaries and straight-line distance.

// @contact.name API Support
// @contact.email support@parking-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/parking-microservice/docs"
	"github.com/parking-microservice/internal/config"
	httpDelivery "github.com/parking-microservice/internal/delivery/http"
	"github.com/parking-microservice/internal/delivery/http/handler"
	"github.com/parking-microservice/internal/infrastructure/nominatim"
	"github.com/parking-microservice/internal/pkg/logger"
	"github.com/parking-microservice/internal/repository/cache"
	"github.com/parking-microservice/internal/repository/postgres"
	"github.com/parking-microservice/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Parking Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Float64("search_radius_km", cfg.Search.RadiusKm),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	bayRepo := postgres.NewBayRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	geocodeRepo := nominatim.NewClient(&cfg.Geocode, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	spotUC := usecase.NewSpotUseCase(
		bayRepo,
		geocodeRepo,
		cacheRepo,
		log,
		cfg.Search.Bounds,
		cfg.Search.RadiusKm,
		cfg.Search.KeywordLimit,
		cfg.Cache.GeocodeCacheTTL,
	)

	suggestionUC := usecase.NewSuggestionUseCase(
		bayRepo,
		geocodeRepo,
		cacheRepo,
		log,
		cfg.Search.Bounds,
		cfg.Search.SuggestLimit,
		cfg.Search.SuggestGeocoding,
		cfg.Cache.SuggestCacheTTL,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	spotHandler := handler.NewSpotHandler(spotUC, log)
	suggestionHandler := handler.NewSuggestionHandler(suggestionUC, log)

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		spotHandler,
		suggestionHandler,
		db,
		redisClient,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/parking-microservice/internal/config"
	"github.com/parking-microservice/internal/delivery/http/handler"
	"github.com/parking-microservice/internal/delivery/http/middleware"
)

// HealthChecker - зависимость, проверяемая health-эндпоинтом
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	spotHandler       *handler.SpotHandler
	suggestionHandler *handler.SuggestionHandler

	// Health dependencies
	db    HealthChecker
	cache HealthChecker
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	spotHandler *handler.SpotHandler,
	suggestionHandler *handler.SuggestionHandler,
	db HealthChecker,
	cache HealthChecker,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Parking Microservice",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		spotHandler:       spotHandler,
		suggestionHandler: suggestionHandler,
		db:                db,
		cache:             cache,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.healthCheck)

	// Spot routes
	api.Get("/spots", s.spotHandler.ListSpots)
	api.Get("/spots/nearby", s.spotHandler.GetNearbySpots)
	api.Get("/spots/status/:kerbside_id", s.spotHandler.GetSpotStatus)
	api.Get("/spots/available", s.spotHandler.GetAvailableSpots)
	api.Get("/spots/markers", s.spotHandler.GetMarkers)

	// Suggestion routes
	api.Get("/location-suggestions", s.suggestionHandler.GetSuggestions)
}

func (s *Server) healthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	code := fiber.StatusOK

	dbErr := s.db.Health(ctx)
	cacheErr := s.cache.Health(ctx)
	if dbErr != nil || cacheErr != nil {
		status = "degraded"
		code = fiber.StatusServiceUnavailable
		s.logger.Warn("Health check failed",
			zap.NamedError("db", dbErr),
			zap.NamedError("cache", cacheErr),
		)
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"time":   time.Now(),
	})
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error":   "INTERNAL_SERVER_ERROR",
			"message": err.Error(),
			"success": false,
		})
	}
}

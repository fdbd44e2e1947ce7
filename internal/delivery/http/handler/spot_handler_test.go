package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/parking-microservice/internal/delivery/http/handler"
	"github.com/parking-microservice/internal/domain"
	apperrors "github.com/parking-microservice/internal/pkg/errors"
	"github.com/parking-microservice/internal/usecase"
)

type stubBayRepository struct{}

func (stubBayRepository) GetByKerbsideID(ctx context.Context, kerbsideID int) (*domain.ParkingBay, error) {
	return nil, apperrors.ErrSpotNotFound
}

func (stubBayRepository) ListInBounds(ctx context.Context, box domain.BoundingBox) ([]domain.ParkingBay, error) {
	return []domain.ParkingBay{}, nil
}

func (stubBayRepository) SearchBySegment(ctx context.Context, box domain.BoundingBox, term string, limit int) ([]domain.ParkingBay, error) {
	return []domain.ParkingBay{}, nil
}

func (stubBayRepository) List(ctx context.Context, kerbsideIDs []int, limit, offset int) ([]domain.ParkingBay, error) {
	return []domain.ParkingBay{}, nil
}

func (stubBayRepository) ListSegmentLabels(ctx context.Context, box domain.BoundingBox, term string, limit int) ([]string, error) {
	return nil, nil
}

type stubGeocodeRepository struct{}

func (stubGeocodeRepository) Resolve(ctx context.Context, query string) (*domain.Coordinate, error) {
	return nil, apperrors.ErrLocationNotFound
}

type stubCacheRepository struct{}

func (stubCacheRepository) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }
func (stubCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}
func (stubCacheRepository) Delete(ctx context.Context, key string) error       { return nil }
func (stubCacheRepository) Exists(ctx context.Context, key string) (bool, error) { return false, nil }
func (stubCacheRepository) GetGeocode(ctx context.Context, query string) (*domain.Coordinate, error) {
	return nil, nil
}
func (stubCacheRepository) SetGeocode(ctx context.Context, query string, coord *domain.Coordinate, ttl time.Duration) error {
	return nil
}

func newMarkersApp() *fiber.App {
	log := zap.NewNop()
	spotUC := usecase.NewSpotUseCase(
		stubBayRepository{},
		stubGeocodeRepository{},
		stubCacheRepository{},
		log,
		domain.DefaultCBDBounds,
		2.0,
		50,
		time.Hour,
	)
	h := handler.NewSpotHandler(spotUC, log)

	app := fiber.New()
	app.Get("/api/v1/spots/markers", h.GetMarkers)
	return app
}

func TestSpotHandler_GetMarkers(t *testing.T) {
	app := newMarkersApp()

	t.Run("malformed max_distance is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/spots/markers?lat=-37.815&lng=144.965&max_distance=abc", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var envelope map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &envelope))
		assert.Equal(t, apperrors.ErrInvalidRequest.Code, envelope["error"])
		assert.Equal(t, false, envelope["success"])
	})

	t.Run("numeric max_distance is accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/spots/markers?lat=-37.815&lng=144.965&max_distance=1.5", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("omitted max_distance uses the default radius", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/spots/markers?lat=-37.815&lng=144.965", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var markers map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &markers))
		assert.Equal(t, 2.0, markers["max_distance"])
	})

	t.Run("out-of-range max_distance is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/spots/markers?lat=-37.815&lng=144.965&max_distance=50", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing coordinates are rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/spots/markers", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/parking-microservice/internal/config"
	"github.com/parking-microservice/internal/domain"
	"github.com/parking-microservice/internal/domain/repository"
	apperrors "github.com/parking-microservice/internal/pkg/errors"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	qualifier  string
	logger     *zap.Logger
}

// searchResult - один элемент ответа Nominatim search API.
// Nominatim serializes coordinates as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewClient создает новый клиент для Nominatim-совместимого геокодера
func NewClient(cfg *config.GeocodeConfig, logger *zap.Logger) repository.GeocodeRepository {
	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = 8 * time.Second
	}
	return &client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		qualifier: cfg.RegionQualifier,
		logger:    logger,
	}
}

// Resolve переводит текстовый запрос в координаты. The query is augmented
// with the fixed region qualifier so results stay inside the metropolitan
// area. Only the first result is used. Every failure mode is returned as a
// classified AppError, never a raw transport error.
func (c *client) Resolve(ctx context.Context, query string) (*domain.Coordinate, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s, %s", query, c.qualifier))
	params.Set("format", "json")
	params.Set("limit", "1")

	requestURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling geocode provider",
		zap.String("query", query),
		zap.String("url", requestURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		c.logger.Error("Failed to create geocode request", zap.Error(err))
		return nil, apperrors.ErrGeocodeNetwork
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Geocode provider returned error",
			zap.Int("status_code", resp.StatusCode))
		return nil, apperrors.ErrGeocodeProvider
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.Error("Failed to decode geocode response", zap.Error(err))
		return nil, apperrors.ErrGeocodeProvider
	}

	if len(results) == 0 {
		c.logger.Info("Geocode provider returned no results", zap.String("query", query))
		return nil, apperrors.ErrLocationNotFound
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lng, lngErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lngErr != nil {
		c.logger.Error("Geocode provider returned malformed coordinates",
			zap.String("lat", results[0].Lat),
			zap.String("lon", results[0].Lon))
		return nil, apperrors.ErrGeocodeProvider
	}

	c.logger.Debug("Geocode resolved",
		zap.String("query", query),
		zap.Float64("lat", lat),
		zap.Float64("lng", lng),
		zap.String("display_name", results[0].DisplayName))

	return &domain.Coordinate{Lat: lat, Lng: lng}, nil
}

func (c *client) classifyTransportError(err error) *apperrors.AppError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		c.logger.Warn("Geocode request timed out", zap.Error(err))
		return apperrors.ErrGeocodeTimeout
	}

	c.logger.Error("Geocode request failed", zap.Error(err))
	return apperrors.ErrGeocodeNetwork
}

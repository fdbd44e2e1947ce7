package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/parking-microservice/internal/pkg/errors"
	"github.com/parking-microservice/internal/pkg/utils"
	"github.com/parking-microservice/internal/pkg/validator"
	"github.com/parking-microservice/internal/usecase"
	"github.com/parking-microservice/internal/usecase/dto"
)

// SpotHandler - обработчик запросов по парковочным местам
type SpotHandler struct {
	spotUC *usecase.SpotUseCase
	logger *zap.Logger
}

// NewSpotHandler - создание нового SpotHandler
func NewSpotHandler(spotUC *usecase.SpotUseCase, logger *zap.Logger) *SpotHandler {
	return &SpotHandler{
		spotUC: spotUC,
		logger: logger,
	}
}

// GetNearbySpots godoc
// @Summary Nearby parking spots
// @Description Finds parking bays near a free-text location or a coordinate pair, annotated with normalized occupancy status, segment summaries and straight-line distance.
// @Tags Spots
// @Accept json
// @Produce json
// @Param query query string false "Address or landmark text"
// @Param lat query string false "Latitude (decimal degrees)"
// @Param lng query string false "Longitude (decimal degrees)"
// @Param keyword_fallback query bool false "Fall back to a segment-name substring match when no nearby spots are found" default(false)
// @Success 200 {object} dto.NearbySpotsResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 408 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/spots/nearby [get]
func (h *SpotHandler) GetNearbySpots(c *fiber.Ctx) error {
	req := dto.NearbySpotsRequest{
		Query:           c.Query("query"),
		Lat:             c.Query("lat"),
		Lng:             c.Query("lng"),
		KeywordFallback: c.QueryBool("keyword_fallback", false),
	}

	result, err := h.spotUC.FindNearby(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// GetSpotStatus godoc
// @Summary Spot status by kerbside ID
// @Description Returns a single bay with its normalized and raw occupancy status
// @Tags Spots
// @Accept json
// @Produce json
// @Param kerbside_id path int true "Kerbside ID"
// @Success 200 {object} dto.SpotRecord
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/status/{kerbside_id} [get]
func (h *SpotHandler) GetSpotStatus(c *fiber.Ctx) error {
	kerbsideID, err := c.ParamsInt("kerbside_id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.spotUC.GetSpotStatus(c.Context(), kerbsideID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// GetAvailableSpots godoc
// @Summary All available spots in the service area
// @Description Lists every bay inside the service area whose normalized status is Available
// @Tags Spots
// @Accept json
// @Produce json
// @Success 200 {object} dto.AvailableSpotsResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/spots/available [get]
func (h *SpotHandler) GetAvailableSpots(c *fiber.Ctx) error {
	result, err := h.spotUC.ListAvailable(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// GetMarkers godoc
// @Summary Map markers around a point
// @Description Parking bays around a coordinate with per-status color and icon hints, filterable by distance and status
// @Tags Spots
// @Accept json
// @Produce json
// @Param lat query string true "Latitude (decimal degrees)"
// @Param lng query string true "Longitude (decimal degrees)"
// @Param max_distance query number false "Maximum distance in km" default(2.0)
// @Param status_filter query string false "Normalized status filter" Enums(Available, Occupied, Limited, Unknown)
// @Success 200 {object} dto.MarkersResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/spots/markers [get]
func (h *SpotHandler) GetMarkers(c *fiber.Ctx) error {
	// Parsed by hand: QueryFloat would silently turn a malformed value
	// into 0, which the engine treats as "use the default radius".
	maxDistance, err := parseMaxDistance(c.Query("max_distance"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	req := dto.MarkersRequest{
		Lat:           c.Query("lat"),
		Lng:           c.Query("lng"),
		MaxDistanceKm: maxDistance,
		StatusFilter:  c.Query("status_filter"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.spotUC.ListMarkers(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// ListSpots godoc
// @Summary List parking spots
// @Description Paged listing of the bay table, optionally restricted to specific kerbside IDs
// @Tags Spots
// @Accept json
// @Produce json
// @Param ids query string false "Comma-separated kerbside IDs"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListSpotsResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/spots [get]
func (h *SpotHandler) ListSpots(c *fiber.Ctx) error {
	ids, err := parseIDList(c.Query("ids"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	req := dto.ListSpotsRequest{
		KerbsideIDs: ids,
		Limit:       c.QueryInt("limit"),
		Offset:      c.QueryInt("offset"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.spotUC.ListSpots(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

func parseMaxDistance(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func parseIDList(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

package usecase

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/parking-microservice/internal/domain"
	"github.com/parking-microservice/internal/domain/repository"
	"github.com/parking-microservice/internal/pkg/errors"
	"github.com/parking-microservice/internal/pkg/utils"
	"github.com/parking-microservice/internal/usecase/dto"
)

// Human-readable outcome messages for the nearby search.
const (
	MessageSuccess      = "Success"
	MessageNoSpots      = "No spots found in this area"
	MessageOutsideBound = "Location outside service area or no results"
)

const defaultListLimit = 100

// markerHints - подсказки отображения маркера для каждого статуса
var markerHints = map[domain.Status]struct {
	Color string
	Icon  string
}{
	domain.StatusAvailable: {Color: "green", Icon: "parking"},
	domain.StatusLimited:   {Color: "orange", Icon: "parking-limited"},
	domain.StatusUnknown:   {Color: "gray", Icon: "parking-unknown"},
	domain.StatusOccupied:  {Color: "red", Icon: "parking-occupied"},
}

// SpotUseCase - движок поиска парковочных мест. Stateless: every aggregate
// (segment stats, status summary) is request-scoped, so concurrent handler
// invocations need no locking.
type SpotUseCase struct {
	bayRepo      repository.BayRepository
	geocodeRepo  repository.GeocodeRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	bounds       domain.BoundingBox
	radiusKm     float64
	keywordLimit int
	geocodeTTL   time.Duration
}

// NewSpotUseCase - создание нового SpotUseCase
func NewSpotUseCase(
	bayRepo repository.BayRepository,
	geocodeRepo repository.GeocodeRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	bounds domain.BoundingBox,
	radiusKm float64,
	keywordLimit int,
	geocodeTTL time.Duration,
) *SpotUseCase {
	return &SpotUseCase{
		bayRepo:      bayRepo,
		geocodeRepo:  geocodeRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		bounds:       bounds,
		radiusKm:     radiusKm,
		keywordLimit: keywordLimit,
		geocodeTTL:   geocodeTTL,
	}
}

// FindNearby - поиск мест рядом с текстовым запросом или координатами.
// Decision order:
//  1. Query given without coordinates -> geocode; a classified geocode
//     failure short-circuits the whole request.
//  2. Coordinates present -> validate, then bounding-box check; outside the
//     service area is a legitimate non-error outcome.
//  3. In bounds -> bounding-box fetch, haversine filter within the radius;
//     segment stats are built over the whole in-bounds set so a segment
//     summary reflects every visible bay, not only nearby ones.
//  4. Optional keyword fallback over segment labels when nothing was found.
func (uc *SpotUseCase) FindNearby(ctx context.Context, req dto.NearbySpotsRequest) (*dto.NearbySpotsResponse, error) {
	query := strings.TrimSpace(req.Query)

	resp := &dto.NearbySpotsResponse{
		Query:         query,
		CBDBoundaries: uc.bounds,
		Results:       []dto.SpotResult{},
	}

	var center *domain.Coordinate

	if req.Lat != "" || req.Lng != "" {
		lat, lng, err := parseCoordinates(req.Lat, req.Lng)
		if err != nil {
			return nil, err
		}
		center = &domain.Coordinate{Lat: lat, Lng: lng}
	} else if query != "" {
		coord, err := uc.resolveLocation(ctx, query)
		if err != nil {
			return nil, err
		}
		center = coord
	} else {
		// Neither input given: neutral empty shape, not an error.
		resp.Message = MessageOutsideBound
		return resp, nil
	}

	resp.SearchLocation = center

	inBounds := uc.bounds.Contains(center.Lat, center.Lng)
	resp.InCBD = &inBounds

	if !inBounds {
		uc.logger.Info("Search location outside service area",
			zap.Float64("lat", center.Lat),
			zap.Float64("lng", center.Lng))
		resp.Message = MessageOutsideBound
		return resp, nil
	}

	bays, err := uc.bayRepo.ListInBounds(ctx, uc.bounds)
	if err != nil {
		return nil, err
	}

	segments := domain.BuildSegmentStats(bays)

	for i := range bays {
		bay := &bays[i]
		if !bay.HasCoordinates() {
			continue
		}
		distKm := utils.HaversineDistance(center.Lat, center.Lng, *bay.Latitude, *bay.Longitude)
		if distKm > uc.radiusKm {
			continue
		}
		resp.Results = append(resp.Results, uc.buildResult(bay, segments, dto.KnownDistance(utils.RoundKm(distKm))))
	}

	// Fallback to a segment-name match only when explicitly requested: a
	// caller who gave exact coordinates should not silently get keyword
	// matches instead of "nothing nearby".
	if len(resp.Results) == 0 && query != "" && req.KeywordFallback {
		matched, err := uc.bayRepo.SearchBySegment(ctx, uc.bounds, query, uc.keywordLimit)
		if err != nil {
			return nil, err
		}
		segments = domain.BuildSegmentStats(matched)
		for i := range matched {
			resp.Results = append(resp.Results, uc.buildResult(&matched[i], segments, dto.UnknownDistance()))
		}
	}

	sortResults(resp.Results)

	for _, r := range resp.Results {
		resp.StatusSummary.Add(r.Status)
	}

	resp.TotalCount = len(resp.Results)
	resp.Success = true
	if resp.TotalCount > 0 {
		resp.Message = MessageSuccess
	} else {
		resp.Message = MessageNoSpots
	}

	return resp, nil
}

// GetSpotStatus - статус одного места по его идентификатору
func (uc *SpotUseCase) GetSpotStatus(ctx context.Context, kerbsideID int) (*dto.SpotRecord, error) {
	bay, err := uc.bayRepo.GetByKerbsideID(ctx, kerbsideID)
	if err != nil {
		return nil, err
	}

	record := uc.toRecord(bay)
	return &record, nil
}

// ListAvailable - все свободные места в зоне обслуживания
func (uc *SpotUseCase) ListAvailable(ctx context.Context) (*dto.AvailableSpotsResponse, error) {
	bays, err := uc.bayRepo.ListInBounds(ctx, uc.bounds)
	if err != nil {
		return nil, err
	}

	segments := domain.BuildSegmentStats(bays)

	results := []dto.SpotResult{}
	for i := range bays {
		bay := &bays[i]
		if bay.NormalizedStatus() != domain.StatusAvailable {
			continue
		}
		results = append(results, uc.buildResult(bay, segments, dto.UnknownDistance()))
	}

	message := MessageSuccess
	if len(results) == 0 {
		message = MessageNoSpots
	}

	return &dto.AvailableSpotsResponse{
		TotalCount:    len(results),
		CBDBoundaries: uc.bounds,
		Results:       results,
		Success:       true,
		Message:       message,
	}, nil
}

// ListMarkers - маркеры для карты вокруг точки с фильтром по статусу
func (uc *SpotUseCase) ListMarkers(ctx context.Context, req dto.MarkersRequest) (*dto.MarkersResponse, error) {
	lat, lng, err := parseCoordinates(req.Lat, req.Lng)
	if err != nil {
		return nil, err
	}

	maxDistance := req.MaxDistanceKm
	if maxDistance == 0 {
		maxDistance = uc.radiusKm
	}

	resp := &dto.MarkersResponse{
		SearchLocation: &domain.Coordinate{Lat: lat, Lng: lng},
		MaxDistanceKm:  maxDistance,
		StatusFilter:   req.StatusFilter,
		Results:        []dto.MarkerResult{},
	}

	if !uc.bounds.Contains(lat, lng) {
		return resp, nil
	}

	bays, err := uc.bayRepo.ListInBounds(ctx, uc.bounds)
	if err != nil {
		return nil, err
	}

	for i := range bays {
		bay := &bays[i]
		if !bay.HasCoordinates() {
			continue
		}
		status := bay.NormalizedStatus()
		if req.StatusFilter != "" && status != domain.Status(req.StatusFilter) {
			continue
		}
		distKm := utils.HaversineDistance(lat, lng, *bay.Latitude, *bay.Longitude)
		if distKm > maxDistance {
			continue
		}
		hint := markerHints[status]
		resp.Results = append(resp.Results, dto.MarkerResult{
			KerbsideID: bay.KerbsideID,
			Address:    bay.DisplayAddress(),
			Lat:        *bay.Latitude,
			Lng:        *bay.Longitude,
			Status:     status,
			Distance:   dto.KnownDistance(utils.RoundKm(distKm)),
			Color:      hint.Color,
			Icon:       hint.Icon,
		})
	}

	sort.SliceStable(resp.Results, func(i, j int) bool {
		a, b := resp.Results[i], resp.Results[j]
		if a.Status.Priority() != b.Status.Priority() {
			return a.Status.Priority() < b.Status.Priority()
		}
		return a.Distance.SortValue() < b.Distance.SortValue()
	})

	resp.TotalCount = len(resp.Results)
	resp.Success = true
	return resp, nil
}

// ListSpots - постраничный просмотр таблицы мест
func (uc *SpotUseCase) ListSpots(ctx context.Context, req dto.ListSpotsRequest) (*dto.ListSpotsResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	bays, err := uc.bayRepo.List(ctx, req.KerbsideIDs, limit, req.Offset)
	if err != nil {
		return nil, err
	}

	results := make([]dto.SpotRecord, 0, len(bays))
	for i := range bays {
		results = append(results, uc.toRecord(&bays[i]))
	}

	return &dto.ListSpotsResponse{
		TotalCount: len(results),
		Limit:      limit,
		Offset:     req.Offset,
		Results:    results,
		Success:    true,
	}, nil
}

// resolveLocation - геокодирование с кешированием. Cache failures are
// logged and ignored; the provider remains the source of truth.
func (uc *SpotUseCase) resolveLocation(ctx context.Context, query string) (*domain.Coordinate, error) {
	if coord, err := uc.cacheRepo.GetGeocode(ctx, query); err == nil && coord != nil {
		return coord, nil
	} else if err != nil {
		uc.logger.Warn("Geocode cache lookup failed", zap.Error(err))
	}

	coord, err := uc.geocodeRepo.Resolve(ctx, query)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr.WithDetails(map[string]interface{}{"query": query})
		}
		return nil, err
	}

	if err := uc.cacheRepo.SetGeocode(ctx, query, coord, uc.geocodeTTL); err != nil {
		uc.logger.Warn("Geocode cache store failed", zap.Error(err))
	}

	return coord, nil
}

func (uc *SpotUseCase) buildResult(bay *domain.ParkingBay, segments map[string]*domain.SegmentStats, distance dto.Distance) dto.SpotResult {
	raw := bay.RawStatusValue()
	status, recognized := domain.MatchStatus(raw)
	if !recognized && raw != "" {
		// Keep the taxonomy reviewable without ever failing the request.
		uc.logger.Debug("Unrecognized bay status",
			zap.Int("kerbside_id", bay.KerbsideID),
			zap.String("raw_status", raw))
	}

	result := dto.SpotResult{
		KerbsideID:      bay.KerbsideID,
		Address:         bay.DisplayAddress(),
		Status:          status,
		RawStatus:       raw,
		Distance:        distance,
		LastUpdated:     stringOrUnknown(bay.LastUpdated),
		StatusTimestamp: stringOrUnknown(bay.StatusTimestamp),
	}
	if bay.HasCoordinates() {
		result.Lat = *bay.Latitude
		result.Lng = *bay.Longitude
	}

	if segment, ok := segments[result.Address]; ok {
		result.SegmentCounts = dto.SegmentCounts{
			Total:     segment.Total,
			Available: segment.Available,
			Occupied:  segment.Occupied,
			Limited:   segment.Limited,
			Unknown:   segment.Unknown,
		}
		result.SegmentKerbsideIDs = segment.KerbsideIDs
	}

	return result
}

func (uc *SpotUseCase) toRecord(bay *domain.ParkingBay) dto.SpotRecord {
	return dto.SpotRecord{
		KerbsideID:      bay.KerbsideID,
		Address:         bay.DisplayAddress(),
		Lat:             bay.Latitude,
		Lng:             bay.Longitude,
		Status:          bay.NormalizedStatus(),
		RawStatus:       bay.RawStatusValue(),
		LastUpdated:     stringOrUnknown(bay.LastUpdated),
		StatusTimestamp: stringOrUnknown(bay.StatusTimestamp),
	}
}

// sortResults orders by (status priority, distance) ascending; unknown
// distances sort last within their status group.
func sortResults(results []dto.SpotResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Status.Priority() != b.Status.Priority() {
			return a.Status.Priority() < b.Status.Priority()
		}
		return a.Distance.SortValue() < b.Distance.SortValue()
	})
}

func parseCoordinates(latStr, lngStr string) (float64, float64, error) {
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if latErr != nil || lngErr != nil || !utils.ValidateCoordinates(lat, lng) {
		return 0, 0, errors.ErrInvalidCoordinates
	}
	return lat, lng, nil
}

func stringOrUnknown(s *string) string {
	if s == nil || *s == "" {
		return "Unknown"
	}
	return *s
}

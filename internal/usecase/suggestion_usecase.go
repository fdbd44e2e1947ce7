package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/parking-microservice/internal/domain"
	"github.com/parking-microservice/internal/domain/repository"
	"github.com/parking-microservice/internal/usecase/dto"
)

// Suggestion source types.
const (
	SuggestionTypeStreet   = "street"
	SuggestionTypeLandmark = "landmark"
	SuggestionTypeGeocoded = "geocoded"
)

// SuggestionUseCase - автодополнение локаций: названия сегментов улиц плюс
// фиксированный список достопримечательностей. A static table and a
// substring scan with a pure ranking function, nothing fuzzy.
type SuggestionUseCase struct {
	bayRepo      repository.BayRepository
	geocodeRepo  repository.GeocodeRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	bounds       domain.BoundingBox
	defaultLimit int
	useGeocoding bool
	suggestTTL   time.Duration
}

// NewSuggestionUseCase - создание нового SuggestionUseCase
func NewSuggestionUseCase(
	bayRepo repository.BayRepository,
	geocodeRepo repository.GeocodeRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	bounds domain.BoundingBox,
	defaultLimit int,
	useGeocoding bool,
	suggestTTL time.Duration,
) *SuggestionUseCase {
	return &SuggestionUseCase{
		bayRepo:      bayRepo,
		geocodeRepo:  geocodeRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		bounds:       bounds,
		defaultLimit: defaultLimit,
		useGeocoding: useGeocoding,
		suggestTTL:   suggestTTL,
	}
}

// Suggest - варианты автодополнения для текстового запроса
func (uc *SuggestionUseCase) Suggest(ctx context.Context, req dto.SuggestRequest) (*dto.SuggestionsResponse, error) {
	query := strings.TrimSpace(req.Query)
	limit := req.Limit
	if limit == 0 {
		limit = uc.defaultLimit
	}

	cacheKey := fmt.Sprintf("suggest:%s:%d", strings.ToLower(query), limit)
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	labels, err := uc.bayRepo.ListSegmentLabels(ctx, uc.bounds, query, limit)
	if err != nil {
		return nil, err
	}

	suggestions := make([]dto.Suggestion, 0, len(labels))
	for _, label := range labels {
		suggestions = append(suggestions, dto.Suggestion{
			Value: label,
			Type:  SuggestionTypeStreet,
		})
	}

	lowerQuery := strings.ToLower(query)
	for i := range domain.CBDLandmarks {
		landmark := domain.CBDLandmarks[i]
		if strings.Contains(strings.ToLower(landmark.Name), lowerQuery) {
			suggestions = append(suggestions, dto.Suggestion{
				Value: landmark.Name,
				Type:  SuggestionTypeLandmark,
				Lat:   &landmark.Lat,
				Lng:   &landmark.Lng,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		ri, rj := matchRank(suggestions[i].Value, lowerQuery), matchRank(suggestions[j].Value, lowerQuery)
		if ri != rj {
			return ri < rj
		}
		return suggestions[i].Value < suggestions[j].Value
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	// Optional augmentation: when local matches leave room, ask the geocode
	// provider. Provider failures never fail the suggestion request.
	if uc.useGeocoding && len(suggestions) < limit {
		if coord, err := uc.geocodeRepo.Resolve(ctx, query); err == nil {
			suggestions = append(suggestions, dto.Suggestion{
				Value: query,
				Type:  SuggestionTypeGeocoded,
				Lat:   &coord.Lat,
				Lng:   &coord.Lng,
			})
		} else {
			uc.logger.Debug("Suggestion geocode augmentation failed",
				zap.String("query", query), zap.Error(err))
		}
	}

	resp := &dto.SuggestionsResponse{
		Query:       query,
		Suggestions: suggestions,
		Total:       len(suggestions),
		Success:     true,
	}

	uc.toCache(ctx, cacheKey, resp)
	return resp, nil
}

// matchRank - чистая функция ранжирования: точный префикс, затем префикс
// слова, затем просто вхождение подстроки.
func matchRank(value, lowerQuery string) int {
	lower := strings.ToLower(value)
	switch {
	case strings.HasPrefix(lower, lowerQuery):
		return 0
	case strings.Contains(lower, " "+lowerQuery):
		return 1
	default:
		return 2
	}
}

func (uc *SuggestionUseCase) fromCache(ctx context.Context, key string) *dto.SuggestionsResponse {
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Suggestion cache lookup failed", zap.Error(err))
		return nil
	}
	if data == nil {
		return nil
	}

	var resp dto.SuggestionsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		uc.logger.Warn("Failed to unmarshal cached suggestions", zap.Error(err))
		return nil
	}
	return &resp
}

func (uc *SuggestionUseCase) toCache(ctx context.Context, key string, resp *dto.SuggestionsResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		uc.logger.Warn("Failed to marshal suggestions for cache", zap.Error(err))
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.suggestTTL); err != nil {
		uc.logger.Warn("Suggestion cache store failed", zap.Error(err))
	}
}

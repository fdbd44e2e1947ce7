package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/parking-microservice/internal/domain"
	apperrors "github.com/parking-microservice/internal/pkg/errors"
	"github.com/parking-microservice/internal/usecase"
	"github.com/parking-microservice/internal/usecase/dto"
)

func newSuggestionUseCase(bayRepo *MockBayRepository, geocodeRepo *MockGeocodeRepository, cacheRepo *MockCacheRepository, useGeocoding bool) *usecase.SuggestionUseCase {
	return usecase.NewSuggestionUseCase(
		bayRepo,
		geocodeRepo,
		cacheRepo,
		zap.NewNop(),
		domain.DefaultCBDBounds,
		10,
		useGeocoding,
		10*time.Minute,
	)
}

func TestSuggestionUseCase_Suggest(t *testing.T) {
	ctx := context.Background()

	t.Run("streets and landmarks ranked together", func(t *testing.T) {
		bayRepo := &MockBayRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := newSuggestionUseCase(bayRepo, &MockGeocodeRepository{}, cacheRepo, false)

		cacheRepo.On("Get", ctx, "suggest:flinders:10").Return(nil, nil)
		cacheRepo.On("Set", ctx, "suggest:flinders:10", mock.Anything, 10*time.Minute).Return(nil)
		bayRepo.On("ListSegmentLabels", ctx, domain.DefaultCBDBounds, "flinders", 10).
			Return([]string{"Flinders Street", "Flinders Lane"}, nil)

		resp, err := uc.Suggest(ctx, dto.SuggestRequest{Query: "flinders"})
		require.NoError(t, err)

		require.Len(t, resp.Suggestions, 3)
		// All three are prefix matches, so alphabetical within the rank.
		assert.Equal(t, "Flinders Lane", resp.Suggestions[0].Value)
		assert.Equal(t, "Flinders Street", resp.Suggestions[1].Value)
		assert.Equal(t, "Flinders Street Station", resp.Suggestions[2].Value)

		assert.Equal(t, usecase.SuggestionTypeStreet, resp.Suggestions[0].Type)
		assert.Equal(t, usecase.SuggestionTypeLandmark, resp.Suggestions[2].Type)
		require.NotNil(t, resp.Suggestions[2].Lat)
		assert.Equal(t, -37.8183, *resp.Suggestions[2].Lat)
		assert.Nil(t, resp.Suggestions[0].Lat)

		assert.Equal(t, 3, resp.Total)
		assert.True(t, resp.Success)
	})

	t.Run("word prefix outranks bare substring", func(t *testing.T) {
		bayRepo := &MockBayRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := newSuggestionUseCase(bayRepo, &MockGeocodeRepository{}, cacheRepo, false)

		cacheRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
		cacheRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		bayRepo.On("ListSegmentLabels", ctx, domain.DefaultCBDBounds, "station", 10).
			Return([]string{"Stationmaster Lane"}, nil)

		resp, err := uc.Suggest(ctx, dto.SuggestRequest{Query: "station"})
		require.NoError(t, err)

		// "Stationmaster Lane" is an exact prefix; the station landmarks
		// match "station" only at a word boundary.
		require.True(t, len(resp.Suggestions) >= 3)
		assert.Equal(t, "Stationmaster Lane", resp.Suggestions[0].Value)
		assert.Equal(t, "Flinders Street Station", resp.Suggestions[1].Value)
		assert.Equal(t, "Southern Cross Station", resp.Suggestions[2].Value)
	})

	t.Run("limit truncates", func(t *testing.T) {
		bayRepo := &MockBayRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := newSuggestionUseCase(bayRepo, &MockGeocodeRepository{}, cacheRepo, false)

		cacheRepo.On("Get", ctx, "suggest:street:2").Return(nil, nil)
		cacheRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		bayRepo.On("ListSegmentLabels", ctx, domain.DefaultCBDBounds, "street", 2).
			Return([]string{"Collins Street", "Bourke Street"}, nil)

		resp, err := uc.Suggest(ctx, dto.SuggestRequest{Query: "street", Limit: 2})
		require.NoError(t, err)

		assert.Len(t, resp.Suggestions, 2)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("cache hit skips repositories", func(t *testing.T) {
		bayRepo := &MockBayRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := newSuggestionUseCase(bayRepo, &MockGeocodeRepository{}, cacheRepo, false)

		cached := dto.SuggestionsResponse{
			Query:       "collins",
			Suggestions: []dto.Suggestion{{Value: "Collins Street", Type: usecase.SuggestionTypeStreet}},
			Total:       1,
			Success:     true,
		}
		data, err := json.Marshal(cached)
		require.NoError(t, err)
		cacheRepo.On("Get", ctx, "suggest:collins:10").Return(data, nil)

		resp, err := uc.Suggest(ctx, dto.SuggestRequest{Query: "collins"})
		require.NoError(t, err)

		assert.Equal(t, &cached, resp)
		bayRepo.AssertNotCalled(t, "ListSegmentLabels", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("geocode augmentation fills remaining room", func(t *testing.T) {
		bayRepo := &MockBayRepository{}
		geocodeRepo := &MockGeocodeRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := newSuggestionUseCase(bayRepo, geocodeRepo, cacheRepo, true)

		cacheRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
		cacheRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		bayRepo.On("ListSegmentLabels", ctx, domain.DefaultCBDBounds, "hosier lane", 10).
			Return([]string{}, nil)
		geocodeRepo.On("Resolve", ctx, "hosier lane").
			Return(&domain.Coordinate{Lat: -37.8166, Lng: 144.9690}, nil)

		resp, err := uc.Suggest(ctx, dto.SuggestRequest{Query: "hosier lane"})
		require.NoError(t, err)

		require.Len(t, resp.Suggestions, 1)
		assert.Equal(t, usecase.SuggestionTypeGeocoded, resp.Suggestions[0].Type)
		assert.Equal(t, "hosier lane", resp.Suggestions[0].Value)
		require.NotNil(t, resp.Suggestions[0].Lat)
	})

	t.Run("geocode augmentation failure is not fatal", func(t *testing.T) {
		bayRepo := &MockBayRepository{}
		geocodeRepo := &MockGeocodeRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := newSuggestionUseCase(bayRepo, geocodeRepo, cacheRepo, true)

		cacheRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
		cacheRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		bayRepo.On("ListSegmentLabels", ctx, domain.DefaultCBDBounds, "zzz", 10).
			Return([]string{}, nil)
		geocodeRepo.On("Resolve", ctx, "zzz").Return(nil, apperrors.ErrGeocodeNetwork)

		resp, err := uc.Suggest(ctx, dto.SuggestRequest{Query: "zzz"})
		require.NoError(t, err)

		assert.Empty(t, resp.Suggestions)
		assert.True(t, resp.Success)
	})

	t.Run("augmentation disabled leaves provider alone", func(t *testing.T) {
		bayRepo := &MockBayRepository{}
		geocodeRepo := &MockGeocodeRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := newSuggestionUseCase(bayRepo, geocodeRepo, cacheRepo, false)

		cacheRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
		cacheRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		bayRepo.On("ListSegmentLabels", ctx, domain.DefaultCBDBounds, "zzz", 10).
			Return([]string{}, nil)

		_, err := uc.Suggest(ctx, dto.SuggestRequest{Query: "zzz"})
		require.NoError(t, err)

		geocodeRepo.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	})

	t.Run("segment query error fails the request", func(t *testing.T) {
		bayRepo := &MockBayRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := newSuggestionUseCase(bayRepo, &MockGeocodeRepository{}, cacheRepo, false)

		cacheRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
		bayRepo.On("ListSegmentLabels", ctx, domain.DefaultCBDBounds, "collins", 10).
			Return(nil, apperrors.ErrDatabaseError)

		resp, err := uc.Suggest(ctx, dto.SuggestRequest{Query: "collins"})
		assert.Nil(t, resp)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrDatabaseError))
	})

	t.Run("cache read failure falls through to repositories", func(t *testing.T) {
		bayRepo := &MockBayRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := newSuggestionUseCase(bayRepo, &MockGeocodeRepository{}, cacheRepo, false)

		cacheRepo.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("redis down"))
		cacheRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		bayRepo.On("ListSegmentLabels", ctx, domain.DefaultCBDBounds, "collins", 10).
			Return([]string{"Collins Street"}, nil)

		resp, err := uc.Suggest(ctx, dto.SuggestRequest{Query: "collins"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
	})
}

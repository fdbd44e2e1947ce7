package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/parking-microservice/internal/domain"
	"github.com/parking-microservice/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redisConn *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redisConn.Client(),
		logger: redisConn.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetGeocode получает закешированный результат геокодирования
func (r *cacheRepository) GetGeocode(ctx context.Context, query string) (*domain.Coordinate, error) {
	data, err := r.Get(ctx, geocodeKey(query))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var coord domain.Coordinate
	if err := json.Unmarshal(data, &coord); err != nil {
		r.logger.Error("Failed to unmarshal geocode from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal geocode: %w", err)
	}

	return &coord, nil
}

// SetGeocode сохраняет результат геокодирования в кеше
func (r *cacheRepository) SetGeocode(ctx context.Context, query string, coord *domain.Coordinate, ttl time.Duration) error {
	data, err := json.Marshal(coord)
	if err != nil {
		r.logger.Error("Failed to marshal geocode", zap.Error(err))
		return fmt.Errorf("marshal geocode: %w", err)
	}

	return r.Set(ctx, geocodeKey(query), data, ttl)
}

func geocodeKey(query string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(query))
}

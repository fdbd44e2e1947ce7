package repository

import (
	"context"
	"time"

	"github.com/parking-microservice/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу (nil, nil on miss)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetGeocode получает закешированный результат геокодирования (nil, nil on miss)
	GetGeocode(ctx context.Context, query string) (*domain.Coordinate, error)

	// SetGeocode сохраняет результат геокодирования
	SetGeocode(ctx context.Context, query string, coord *domain.Coordinate, ttl time.Duration) error
}

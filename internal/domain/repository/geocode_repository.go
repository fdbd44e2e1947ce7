package repository

import (
	"context"

	"github.com/parking-microservice/internal/domain"
)

// GeocodeRepository определяет методы внешнего геокодера.
// Resolve never returns an unclassified failure: every outcome maps onto
// the error taxonomy (timeout, network, provider, not found).
type GeocodeRepository interface {
	// Resolve преобразует текстовый запрос в координаты внутри региона
	Resolve(ctx context.Context, query string) (*domain.Coordinate, error)
}

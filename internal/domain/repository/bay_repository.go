package repository

import (
	"context"

	"github.com/parking-microservice/internal/domain"
)

// BayRepository определяет методы чтения таблицы парковочных мест.
// The data source is read-only from this service's perspective; the
// bounding-box and substring predicates are pushed down to the store.
type BayRepository interface {
	// GetByKerbsideID возвращает место по его идентификатору
	GetByKerbsideID(ctx context.Context, kerbsideID int) (*domain.ParkingBay, error)

	// ListInBounds возвращает все места внутри bounding box
	ListInBounds(ctx context.Context, box domain.BoundingBox) ([]domain.ParkingBay, error)

	// SearchBySegment ищет места внутри bounding box по подстроке в названии сегмента
	SearchBySegment(ctx context.Context, box domain.BoundingBox, term string, limit int) ([]domain.ParkingBay, error)

	// List возвращает страницу таблицы, опционально отфильтрованную по ID
	List(ctx context.Context, kerbsideIDs []int, limit, offset int) ([]domain.ParkingBay, error)

	// ListSegmentLabels возвращает уникальные названия сегментов по подстроке
	ListSegmentLabels(ctx context.Context, box domain.BoundingBox, term string, limit int) ([]string, error)
}

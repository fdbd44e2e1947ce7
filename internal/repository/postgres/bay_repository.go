package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/parking-microservice/internal/domain"
	"github.com/parking-microservice/internal/domain/repository"
	"github.com/parking-microservice/internal/pkg/errors"
)

const bayColumns = `
	kerbside_id, latitude, longitude, road_segment_description,
	status_description, last_updated, status_timestamp
`

type bayRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewBayRepository(db *DB) repository.BayRepository {
	return &bayRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *bayRepository) GetByKerbsideID(ctx context.Context, kerbsideID int) (*domain.ParkingBay, error) {
	query := `
		SELECT ` + bayColumns + `
		FROM parking_bays
		WHERE kerbside_id = $1
	`

	var bay domain.ParkingBay
	err := r.db.GetContext(ctx, &bay, query, kerbsideID)
	if err == sql.ErrNoRows {
		return nil, errors.ErrSpotNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get bay by kerbside ID", zap.Int("kerbside_id", kerbsideID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &bay, nil
}

// ListInBounds pushes the bounding-box predicate down to SQL so the fetch
// is proportional to the CBD-area row count, not the full table. Bays
// without coordinates never enter spatial operations, so they are filtered
// out here as well.
func (r *bayRepository) ListInBounds(ctx context.Context, box domain.BoundingBox) ([]domain.ParkingBay, error) {
	query := `
		SELECT ` + bayColumns + `
		FROM parking_bays
		WHERE latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4
		ORDER BY kerbside_id
	`

	rows, err := r.db.QueryxContext(ctx, query, box.LatMin, box.LatMax, box.LngMin, box.LngMax)
	if err != nil {
		r.logger.Error("Failed to list bays in bounds", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	return r.scanBays(rows)
}

func (r *bayRepository) SearchBySegment(ctx context.Context, box domain.BoundingBox, term string, limit int) ([]domain.ParkingBay, error) {
	query := `
		SELECT ` + bayColumns + `
		FROM parking_bays
		WHERE latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4
		  AND road_segment_description ILIKE '%' || $5 || '%'
		ORDER BY kerbside_id
		LIMIT $6
	`

	rows, err := r.db.QueryxContext(ctx, query, box.LatMin, box.LatMax, box.LngMin, box.LngMax, term, limit)
	if err != nil {
		r.logger.Error("Failed to search bays by segment", zap.String("term", term), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	return r.scanBays(rows)
}

func (r *bayRepository) List(ctx context.Context, kerbsideIDs []int, limit, offset int) ([]domain.ParkingBay, error) {
	query := `
		SELECT ` + bayColumns + `
		FROM parking_bays
	`
	args := []interface{}{}

	if len(kerbsideIDs) > 0 {
		query += ` WHERE kerbside_id = ANY($1) ORDER BY kerbside_id LIMIT $2 OFFSET $3`
		args = append(args, pq.Array(kerbsideIDs), limit, offset)
	} else {
		query += ` ORDER BY kerbside_id LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list bays", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	return r.scanBays(rows)
}

func (r *bayRepository) ListSegmentLabels(ctx context.Context, box domain.BoundingBox, term string, limit int) ([]string, error) {
	query := `
		SELECT DISTINCT road_segment_description
		FROM parking_bays
		WHERE latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4
		  AND road_segment_description ILIKE '%' || $5 || '%'
		ORDER BY road_segment_description
		LIMIT $6
	`

	var labels []string
	err := r.db.SelectContext(ctx, &labels, query, box.LatMin, box.LatMax, box.LngMin, box.LngMax, term, limit)
	if err != nil {
		r.logger.Error("Failed to list segment labels", zap.String("term", term), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return labels, nil
}

// scanBays collects rows, skipping malformed records. One bad row is logged
// and dropped rather than failing the whole request; a failed iteration is
// a fetch failure and aborts, so callers never see a truncated list.
func (r *bayRepository) scanBays(rows *sqlx.Rows) ([]domain.ParkingBay, error) {
	var bays []domain.ParkingBay
	for rows.Next() {
		var bay domain.ParkingBay
		if err := rows.StructScan(&bay); err != nil {
			r.logger.Warn("Failed to scan bay row, skipping", zap.Error(err))
			continue
		}
		bays = append(bays, bay)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Row iteration error", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return bays, nil
}

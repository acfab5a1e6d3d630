package persistence

import (
	"context"
	"time"

	"github.com/movements/backend/internal/domain/movement"
	"github.com/movements/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormManualMovementRepository is the GORM implementation of movement.ManualMovementRepository
type GormManualMovementRepository struct {
	*GormRepository[movement.ManualMovement, *movement.ManualMovement]
	db *gorm.DB
}

// NewGormManualMovementRepository creates a new manual movement repository
func NewGormManualMovementRepository(db *gorm.DB) *GormManualMovementRepository {
	return &GormManualMovementRepository{
		GormRepository: NewGormRepository[movement.ManualMovement, *movement.ManualMovement](
			db,
			ManualMovementSortFields,
			WithSearchColumns("description", "product_code"),
		),
		db: db,
	}
}

// FindByMonthYear pages through the movements of one accounting period
func (r *GormManualMovementRepository) FindByMonthYear(ctx context.Context, month, year int, filter shared.Filter) (shared.Paginated[movement.ManualMovement], error) {
	filter = filter.Where("month", month).Where("year", year)
	return r.FindWithPagination(ctx, filter)
}

// FindByPeriod pages through every movement dated inside [from, to]
func (r *GormManualMovementRepository) FindByPeriod(ctx context.Context, from, to time.Time, filter shared.Filter) (shared.Paginated[movement.ManualMovement], error) {
	var (
		movements []movement.ManualMovement
		total     int64
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := tx.Model(&movement.ManualMovement{}).
			Where("movement_date BETWEEN ? AND ?", from, to)

		if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
			return err
		}

		query := base.Session(&gorm.Session{}).
			Order("year ASC, month ASC, launch_number ASC")
		if filter.Page > 0 && filter.PageSize > 0 {
			query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
		}
		return query.Find(&movements).Error
	})
	if err != nil {
		return shared.Paginated[movement.ManualMovement]{}, err
	}

	return shared.NewPaginated(movements, total, filter.Page, filter.PageSize), nil
}

// NextLaunchNumber returns max(launch_number)+1 for the period, or 1 when
// the period has no movements yet. Soft-deleted rows still count so a
// number is never reissued.
func (r *GormManualMovementRepository) NextLaunchNumber(ctx context.Context, month, year int) (int, error) {
	var next int
	err := r.db.WithContext(ctx).Model(&movement.ManualMovement{}).
		Select("COALESCE(MAX(launch_number), 0) + 1").
		Where("month = ? AND year = ?", month, year).
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

package persistence

import (
	"context"
	"errors"

	"github.com/movements/backend/internal/domain/catalog"
	"github.com/movements/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductRepository is the GORM implementation of catalog.ProductRepository
type GormProductRepository struct {
	*GormRepository[catalog.Product, *catalog.Product]
	db *gorm.DB
}

// NewGormProductRepository creates a new product repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{
		GormRepository: NewGormRepository[catalog.Product, *catalog.Product](
			db,
			ProductSortFields,
			WithSearchColumns("code", "description"),
		),
		db: db,
	}
}

// FindByCode finds a product by its business code
func (r *GormProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	var product catalog.Product
	err := r.db.WithContext(ctx).First(&product, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// ExistsByCode reports whether any product uses the code
func (r *GormProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&catalog.Product{}).
		Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

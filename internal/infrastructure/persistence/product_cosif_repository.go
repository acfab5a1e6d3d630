package persistence

import (
	"context"
	"errors"

	"github.com/movements/backend/internal/domain/catalog"
	"github.com/movements/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductCosifRepository is the GORM implementation of catalog.ProductCosifRepository
type GormProductCosifRepository struct {
	*GormRepository[catalog.ProductCosif, *catalog.ProductCosif]
	db *gorm.DB
}

// NewGormProductCosifRepository creates a new product COSIF repository
func NewGormProductCosifRepository(db *gorm.DB) *GormProductCosifRepository {
	return &GormProductCosifRepository{
		GormRepository: NewGormRepository[catalog.ProductCosif, *catalog.ProductCosif](
			db,
			ProductCosifSortFields,
			WithSearchColumns("product_code", "cosif_code"),
		),
		db: db,
	}
}

// FindByProductCode returns every COSIF entry linked to the product
func (r *GormProductCosifRepository) FindByProductCode(ctx context.Context, productCode string) ([]catalog.ProductCosif, error) {
	var entries []catalog.ProductCosif
	err := r.db.WithContext(ctx).
		Where("product_code = ?", productCode).
		Order("cosif_code ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByPair finds the entry for a product code and COSIF code pair
func (r *GormProductCosifRepository) FindByPair(ctx context.Context, productCode, cosifCode string) (*catalog.ProductCosif, error) {
	var entry catalog.ProductCosif
	err := r.db.WithContext(ctx).
		First(&entry, "product_code = ? AND cosif_code = ?", productCode, cosifCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// ExistsByPair reports whether the product/COSIF pair is already registered
func (r *GormProductCosifRepository) ExistsByPair(ctx context.Context, productCode, cosifCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&catalog.ProductCosif{}).
		Where("product_code = ? AND cosif_code = ?", productCode, cosifCode).
		Count(&count).Error
	return count > 0, err
}

package catalog

import (
	"context"

	"github.com/movements/backend/internal/domain/shared"
)

// ProductRepository is the persistence contract for products
type ProductRepository interface {
	shared.Repository[Product]

	FindByCode(ctx context.Context, code string) (*Product, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// ProductCosifRepository is the persistence contract for product/COSIF links
type ProductCosifRepository interface {
	shared.Repository[ProductCosif]

	// FindByProductCode returns every COSIF link of one product
	FindByProductCode(ctx context.Context, productCode string) ([]ProductCosif, error)
	FindByPair(ctx context.Context, productCode, cosifCode string) (*ProductCosif, error)
	ExistsByPair(ctx context.Context, productCode, cosifCode string) (bool, error)
}

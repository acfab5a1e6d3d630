package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/movements/backend/internal/domain/catalog"
	"github.com/movements/backend/internal/domain/shared"
)

var createProductRules = shared.RuleSet[CreateProductRequest]{
	{Field: "code", Valid: func(r CreateProductRequest) bool { return shared.NotBlank(r.Code) },
		Message: "Product code cannot be empty"},
	{Field: "description", Valid: func(r CreateProductRequest) bool { return shared.NotBlank(r.Description) },
		Message: "Description cannot be empty"},
}

// ProductService handles product business operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create validates and persists a new product
func (s *ProductService) Create(ctx context.Context, actor string, req CreateProductRequest) (*ProductResponse, error) {
	if err := shared.NewValidationError(createProductRules.Validate(req)); err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	exists, err := s.productRepo.ExistsByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this code already exists")
	}

	product, err := catalog.NewProduct(req.Code, req.Description, actor)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Add(ctx, product, actor); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByCode retrieves a product by its business code
func (s *ProductService) GetByCode(ctx context.Context, code string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (shared.Paginated[ProductResponse], error) {
	domainFilter := shared.Filter{
		Page:     normalizePage(filter.Page),
		PageSize: normalizePageSize(filter.PageSize),
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
	}
	if filter.Status != "" {
		domainFilter = domainFilter.Where("status", filter.Status)
	}

	page, err := s.productRepo.FindWithPagination(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}

	return shared.Paginated[ProductResponse]{
		Items:      ToProductResponses(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// Update changes the product description
func (s *ProductService) Update(ctx context.Context, actor string, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.UpdateDescription(req.Description); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product, actor); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete soft-deletes a product
func (s *ProductService) Delete(ctx context.Context, actor string, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.productRepo.Remove(ctx, product, actor)
}

// Reactivate restores an inactive or soft-deleted product
func (s *ProductService) Reactivate(ctx context.Context, actor string, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Reactivate()
	if err := s.productRepo.Update(ctx, product, actor); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

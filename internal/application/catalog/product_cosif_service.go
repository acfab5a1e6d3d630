package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/movements/backend/internal/domain/catalog"
	"github.com/movements/backend/internal/domain/shared"
)

var createProductCosifRules = shared.RuleSet[CreateProductCosifRequest]{
	{Field: "productCode", Valid: func(r CreateProductCosifRequest) bool { return shared.NotBlank(r.ProductCode) },
		Message: "Product code cannot be empty"},
	{Field: "cosifCode", Valid: func(r CreateProductCosifRequest) bool { return shared.NotBlank(r.CosifCode) },
		Message: "COSIF code cannot be empty"},
}

// ProductCosifService handles product/COSIF link business operations
type ProductCosifService struct {
	cosifRepo   catalog.ProductCosifRepository
	productRepo catalog.ProductRepository
}

// NewProductCosifService creates a new ProductCosifService
func NewProductCosifService(cosifRepo catalog.ProductCosifRepository, productRepo catalog.ProductRepository) *ProductCosifService {
	return &ProductCosifService{
		cosifRepo:   cosifRepo,
		productRepo: productRepo,
	}
}

// Create links a registered product to a COSIF classification code
func (s *ProductCosifService) Create(ctx context.Context, actor string, req CreateProductCosifRequest) (*ProductCosifResponse, error) {
	if err := shared.NewValidationError(createProductCosifRules.Validate(req)); err != nil {
		return nil, err
	}

	productCode := strings.ToUpper(strings.TrimSpace(req.ProductCode))
	productExists, err := s.productRepo.ExistsByCode(ctx, productCode)
	if err != nil {
		return nil, err
	}
	if !productExists {
		return nil, shared.NewDomainError("UNKNOWN_PRODUCT", "Product code is not registered")
	}

	cosifCode := strings.TrimSpace(req.CosifCode)
	exists, err := s.cosifRepo.ExistsByPair(ctx, productCode, cosifCode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product is already linked to this COSIF code")
	}

	entry, err := catalog.NewProductCosif(req.ProductCode, req.CosifCode, req.Classification, actor)
	if err != nil {
		return nil, err
	}

	if err := s.cosifRepo.Add(ctx, entry, actor); err != nil {
		return nil, err
	}

	response := ToProductCosifResponse(entry)
	return &response, nil
}

// GetByID retrieves a product/COSIF link by ID
func (s *ProductCosifService) GetByID(ctx context.Context, id uuid.UUID) (*ProductCosifResponse, error) {
	entry, err := s.cosifRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToProductCosifResponse(entry)
	return &response, nil
}

// ListByProduct returns every COSIF link of one product
func (s *ProductCosifService) ListByProduct(ctx context.Context, productCode string) ([]ProductCosifResponse, error) {
	entries, err := s.cosifRepo.FindByProductCode(ctx, strings.ToUpper(strings.TrimSpace(productCode)))
	if err != nil {
		return nil, err
	}
	return ToProductCosifResponses(entries), nil
}

// List retrieves COSIF links with filtering and pagination
func (s *ProductCosifService) List(ctx context.Context, filter ProductCosifListFilter) (shared.Paginated[ProductCosifResponse], error) {
	domainFilter := shared.Filter{
		Page:     normalizePage(filter.Page),
		PageSize: normalizePageSize(filter.PageSize),
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
	}
	if filter.ProductCode != "" {
		domainFilter = domainFilter.Where("product_code", strings.ToUpper(strings.TrimSpace(filter.ProductCode)))
	}
	if filter.Status != "" {
		domainFilter = domainFilter.Where("status", filter.Status)
	}

	page, err := s.cosifRepo.FindWithPagination(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[ProductCosifResponse]{}, err
	}

	return shared.Paginated[ProductCosifResponse]{
		Items:      ToProductCosifResponses(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// Update changes the classification label of a link
func (s *ProductCosifService) Update(ctx context.Context, actor string, id uuid.UUID, req UpdateProductCosifRequest) (*ProductCosifResponse, error) {
	entry, err := s.cosifRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.UpdateClassification(req.Classification)
	if err := s.cosifRepo.Update(ctx, entry, actor); err != nil {
		return nil, err
	}

	response := ToProductCosifResponse(entry)
	return &response, nil
}

// Delete soft-deletes a product/COSIF link
func (s *ProductCosifService) Delete(ctx context.Context, actor string, id uuid.UUID) error {
	entry, err := s.cosifRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.cosifRepo.Remove(ctx, entry, actor)
}

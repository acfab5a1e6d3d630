package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/movements/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Code        string `json:"code" binding:"required,min=1,max=20"`
	Description string `json:"description" binding:"required,min=1,max=200"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Description string `json:"description" binding:"required,min=1,max=200"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductListFilter represents filter options for the product list
type ProductListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=created active inactive deleted"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
	OrderBy  string `form:"orderBy"`
	OrderDir string `form:"orderDir" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// CreateProductCosifRequest represents a request to link a product to a COSIF code
type CreateProductCosifRequest struct {
	ProductCode    string `json:"productCode" binding:"required,min=1,max=20"`
	CosifCode      string `json:"cosifCode" binding:"required,min=1,max=20"`
	Classification string `json:"classification" binding:"max=200"`
}

// UpdateProductCosifRequest represents a request to update a product/COSIF link
type UpdateProductCosifRequest struct {
	Classification string `json:"classification" binding:"max=200"`
}

// ProductCosifResponse represents a product/COSIF link in API responses
type ProductCosifResponse struct {
	ID             uuid.UUID `json:"id"`
	ProductCode    string    `json:"productCode"`
	CosifCode      string    `json:"cosifCode"`
	Classification string    `json:"classification"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ProductCosifListFilter represents filter options for the COSIF link list
type ProductCosifListFilter struct {
	ProductCode string `form:"productCode"`
	Status      string `form:"status" binding:"omitempty,oneof=created active inactive deleted"`
	Page        int    `form:"page"`
	PageSize    int    `form:"pageSize"`
	OrderBy     string `form:"orderBy"`
	OrderDir    string `form:"orderDir" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// ToProductResponse maps a product entity to its response shape
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Description: p.Description,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses maps a slice of products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

// ToProductCosifResponse maps a product/COSIF link to its response shape
func ToProductCosifResponse(pc *catalog.ProductCosif) ProductCosifResponse {
	return ProductCosifResponse{
		ID:             pc.ID,
		ProductCode:    pc.ProductCode,
		CosifCode:      pc.CosifCode,
		Classification: pc.Classification,
		Status:         string(pc.Status),
		CreatedAt:      pc.CreatedAt,
		UpdatedAt:      pc.UpdatedAt,
	}
}

// ToProductCosifResponses maps a slice of product/COSIF links
func ToProductCosifResponses(entries []catalog.ProductCosif) []ProductCosifResponse {
	responses := make([]ProductCosifResponse, len(entries))
	for i := range entries {
		responses[i] = ToProductCosifResponse(&entries[i])
	}
	return responses
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizePageSize(pageSize int) int {
	if pageSize < 1 {
		return 10
	}
	return pageSize
}

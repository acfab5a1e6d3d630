package catalog

import (
	"regexp"
	"strings"

	"github.com/movements/backend/internal/domain/shared"
)

var productCodePattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9\-]{0,19}$`)

// Product represents a sellable product that accounting movements refer to
type Product struct {
	shared.BaseEntity
	Code        string `gorm:"type:varchar(20);not null;uniqueIndex"`
	Description string `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product with a validated unique code
func NewProduct(code, description, by string) (*Product, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if err := validateProductCode(code); err != nil {
		return nil, err
	}
	if !shared.NotBlank(description) {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}

	return &Product{
		BaseEntity:  shared.NewBaseEntity(by),
		Code:        code,
		Description: strings.TrimSpace(description),
	}, nil
}

// UpdateDescription changes the product description
func (p *Product) UpdateDescription(description string) error {
	if !shared.NotBlank(description) {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	p.Description = strings.TrimSpace(description)
	return nil
}

func validateProductCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if !productCodePattern.MatchString(code) {
		return shared.NewDomainError("INVALID_CODE", "Product code can only contain letters, numbers and hyphens")
	}
	return nil
}

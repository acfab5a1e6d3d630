package catalog

import (
	"regexp"
	"strings"

	"github.com/movements/backend/internal/domain/shared"
)

// COSIF codes follow the Brazilian chart-of-accounts numbering, digits
// optionally separated by dots (e.g. "1.1.2.30.00-9" stored as digits).
var cosifCodePattern = regexp.MustCompile(`^[0-9][0-9.\-]{0,19}$`)

// ProductCosif links a product to a COSIF accounting classification.
// A product may carry several classifications, each pair unique.
type ProductCosif struct {
	shared.BaseEntity
	ProductCode    string `gorm:"type:varchar(20);not null;uniqueIndex:idx_product_cosif_pair,priority:1"`
	CosifCode      string `gorm:"type:varchar(20);not null;uniqueIndex:idx_product_cosif_pair,priority:2"`
	Classification string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (ProductCosif) TableName() string {
	return "product_cosifs"
}

// NewProductCosif creates a new product/COSIF link
func NewProductCosif(productCode, cosifCode, classification, by string) (*ProductCosif, error) {
	productCode = strings.ToUpper(strings.TrimSpace(productCode))
	if err := validateProductCode(productCode); err != nil {
		return nil, err
	}
	cosifCode = strings.TrimSpace(cosifCode)
	if err := ValidateCosifCode(cosifCode); err != nil {
		return nil, err
	}

	return &ProductCosif{
		BaseEntity:     shared.NewBaseEntity(by),
		ProductCode:    productCode,
		CosifCode:      cosifCode,
		Classification: strings.TrimSpace(classification),
	}, nil
}

// UpdateClassification changes the free-text classification label
func (pc *ProductCosif) UpdateClassification(classification string) {
	pc.Classification = strings.TrimSpace(classification)
}

// ValidateCosifCode checks a COSIF code's shape
func ValidateCosifCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_COSIF", "COSIF code cannot be empty")
	}
	if !cosifCodePattern.MatchString(code) {
		return shared.NewDomainError("INVALID_COSIF", "COSIF code can only contain digits, dots and hyphens")
	}
	return nil
}

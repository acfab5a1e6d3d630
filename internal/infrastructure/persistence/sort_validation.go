package persistence

import (
	"strings"

	"github.com/movements/backend/internal/domain/shared"
)

// ValidateSortOrder normalizes the sort direction. Ordering is ascending
// unless "desc" is requested explicitly.
func ValidateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "desc") {
		return "DESC"
	}
	return "ASC"
}

// SortColumn validates an ordering field against the whitelist of
// sortable columns. An empty field means natural order; an unknown field
// is an invalid-argument error rather than a silently dropped clause.
func SortColumn(field string, allowed map[string]bool) (string, error) {
	trimmed := strings.TrimSpace(field)
	if trimmed == "" {
		return "", nil
	}
	if !allowed[trimmed] {
		return "", shared.ErrInvalidSortField
	}
	return trimmed, nil
}

// CommonSortFields contains the audit columns shared by all entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"status":     true,
}

// CustomerSortFields contains allowed sort/filter columns for customers
var CustomerSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"status":     true,
	"name":       true,
	"email":      true,
	"document":   true,
	"gender":     true,
	"birth_date": true,
	"phone":      true,
}

// ProductSortFields contains allowed sort/filter columns for products
var ProductSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"status":      true,
	"code":        true,
	"description": true,
}

// ProductCosifSortFields contains allowed sort/filter columns for product COSIF links
var ProductCosifSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"status":         true,
	"product_code":   true,
	"cosif_code":     true,
	"classification": true,
}

// ManualMovementSortFields contains allowed sort/filter columns for manual movements
var ManualMovementSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"status":        true,
	"month":         true,
	"year":          true,
	"launch_number": true,
	"product_code":  true,
	"cosif_code":    true,
	"description":   true,
	"movement_date": true,
	"user_code":     true,
	"value":         true,
}

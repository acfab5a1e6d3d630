package partner

import (
	"context"

	"github.com/movements/backend/internal/domain/shared"
)

// CustomerRepository is the persistence contract for customers.
// It composes the generic repository with customer-specific lookups.
type CustomerRepository interface {
	shared.Repository[Customer]

	// FindByEmail looks up a customer by exact (normalized) email
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	// FindByDocument looks up a customer by CPF/CNPJ digits
	FindByDocument(ctx context.Context, document string) (*Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByDocument(ctx context.Context, document string) (bool, error)
}

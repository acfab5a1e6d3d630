package partner

import (
	"github.com/google/uuid"
	"github.com/movements/backend/internal/domain/shared"
)

// Address is the customer's single owned address. It has no lifecycle of
// its own: it is created, updated, and removed with its customer.
type Address struct {
	shared.BaseEntity
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Street       string    `gorm:"type:varchar(200);not null"`
	Number       string    `gorm:"type:varchar(20)"`
	Complement   string    `gorm:"type:varchar(100)"`
	Neighborhood string    `gorm:"type:varchar(100);not null"`
	City         string    `gorm:"type:varchar(100);not null"`
	State        string    `gorm:"type:varchar(50);not null"`
	Country      string    `gorm:"type:varchar(100);not null"`
	ZipCode      string    `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (Address) TableName() string {
	return "addresses"
}

// validate checks the required address fields. Number and complement are
// the only optional ones.
func (a Address) validate() error {
	required := map[string]string{
		"street":       a.Street,
		"neighborhood": a.Neighborhood,
		"city":         a.City,
		"state":        a.State,
		"country":      a.Country,
		"zip code":     a.ZipCode,
	}
	for _, field := range []string{"street", "neighborhood", "city", "state", "country", "zip code"} {
		if !shared.NotBlank(required[field]) {
			return shared.NewDomainError("INVALID_ADDRESS", "Address "+field+" cannot be empty")
		}
	}
	return nil
}

package movement

import (
	"strings"
	"time"

	"github.com/movements/backend/internal/domain/catalog"
	"github.com/movements/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ManualMovement is a manually entered accounting transaction, as opposed
// to one generated by other systems. Within a (month, year) period each
// movement carries a sequential launch number starting at 1.
type ManualMovement struct {
	shared.BaseEntity
	Month        int             `gorm:"not null;uniqueIndex:idx_movement_period_launch,priority:1"`
	Year         int             `gorm:"not null;uniqueIndex:idx_movement_period_launch,priority:2"`
	LaunchNumber int             `gorm:"not null;uniqueIndex:idx_movement_period_launch,priority:3"`
	ProductCode  string          `gorm:"type:varchar(20);not null;index"`
	CosifCode    string          `gorm:"type:varchar(20);not null"`
	Description  string          `gorm:"type:varchar(400);not null"`
	MovementDate time.Time       `gorm:"type:date;not null;index"`
	UserCode     string          `gorm:"type:varchar(50);not null"`
	Value        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (ManualMovement) TableName() string {
	return "manual_movements"
}

// NewManualMovement creates a movement with all invariants checked.
// The launch number is assigned by the caller from the repository's
// NextLaunchNumber for the movement's period.
func NewManualMovement(month, year, launchNumber int, productCode, cosifCode, description string,
	movementDate time.Time, userCode string, value decimal.Decimal, by string) (*ManualMovement, error) {

	if err := ValidatePeriod(month, year); err != nil {
		return nil, err
	}
	if launchNumber < 1 {
		return nil, shared.NewDomainError("INVALID_LAUNCH_NUMBER", "Launch number must start at 1")
	}
	productCode = strings.ToUpper(strings.TrimSpace(productCode))
	if productCode == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if err := catalog.ValidateCosifCode(strings.TrimSpace(cosifCode)); err != nil {
		return nil, err
	}
	if !shared.NotBlank(description) {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if !shared.NotBlank(userCode) {
		return nil, shared.NewDomainError("INVALID_USER_CODE", "User code cannot be empty")
	}
	if movementDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Movement date is required")
	}
	if !value.IsPositive() {
		return nil, shared.NewDomainError("INVALID_VALUE", "Value must be greater than zero")
	}

	return &ManualMovement{
		BaseEntity:   shared.NewBaseEntity(by),
		Month:        month,
		Year:         year,
		LaunchNumber: launchNumber,
		ProductCode:  productCode,
		CosifCode:    strings.TrimSpace(cosifCode),
		Description:  strings.TrimSpace(description),
		MovementDate: movementDate,
		UserCode:     strings.TrimSpace(userCode),
		Value:        value,
	}, nil
}

// UpdateDetails changes the mutable fields of a movement. The period and
// launch number are immutable once assigned.
func (m *ManualMovement) UpdateDetails(description string, movementDate time.Time, value decimal.Decimal) error {
	if !shared.NotBlank(description) {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if movementDate.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Movement date is required")
	}
	if !value.IsPositive() {
		return shared.NewDomainError("INVALID_VALUE", "Value must be greater than zero")
	}
	m.Description = strings.TrimSpace(description)
	m.MovementDate = movementDate
	m.Value = value
	return nil
}

// ValidatePeriod checks a (month, year) accounting period
func ValidatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return shared.NewDomainError("INVALID_PERIOD", "Month must be between 1 and 12")
	}
	if year < 1900 || year > 2100 {
		return shared.NewDomainError("INVALID_PERIOD", "Year is out of range")
	}
	return nil
}

package movement

import (
	"time"

	"github.com/google/uuid"
	"github.com/movements/backend/internal/domain/movement"
	"github.com/shopspring/decimal"
)

// CreateMovementRequest represents a request to record a manual movement.
// The launch number is assigned by the service, never by the caller.
type CreateMovementRequest struct {
	Month        int             `json:"month" binding:"required,min=1,max=12"`
	Year         int             `json:"year" binding:"required,min=1900,max=2100"`
	ProductCode  string          `json:"productCode" binding:"required,min=1,max=20"`
	CosifCode    string          `json:"cosifCode" binding:"required,min=1,max=20"`
	Description  string          `json:"description" binding:"required,min=1,max=400"`
	MovementDate time.Time       `json:"movementDate" binding:"required"`
	UserCode     string          `json:"userCode" binding:"required,min=1,max=50"`
	Value        decimal.Decimal `json:"value" binding:"required"`
}

// UpdateMovementRequest represents a request to update a manual movement.
// Period, launch number and product references are immutable.
type UpdateMovementRequest struct {
	Description  string          `json:"description" binding:"required,min=1,max=400"`
	MovementDate time.Time       `json:"movementDate" binding:"required"`
	Value        decimal.Decimal `json:"value" binding:"required"`
}

// MovementResponse represents a manual movement in API responses
type MovementResponse struct {
	ID           uuid.UUID       `json:"id"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	LaunchNumber int             `json:"launchNumber"`
	ProductCode  string          `json:"productCode"`
	CosifCode    string          `json:"cosifCode"`
	Description  string          `json:"description"`
	MovementDate time.Time       `json:"movementDate"`
	UserCode     string          `json:"userCode"`
	Value        decimal.Decimal `json:"value"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// MovementListFilter represents filter options for the movement list
type MovementListFilter struct {
	Month       int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year        int    `form:"year" binding:"omitempty,min=1900,max=2100"`
	ProductCode string `form:"productCode"`
	UserCode    string `form:"userCode"`
	Status      string `form:"status" binding:"omitempty,oneof=created active inactive deleted"`
	Search      string `form:"search"`
	Page        int    `form:"page"`
	PageSize    int    `form:"pageSize"`
	OrderBy     string `form:"orderBy"`
	OrderDir    string `form:"orderDir" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// PeriodFilter selects movements dated inside an inclusive date range
type PeriodFilter struct {
	From     time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To       time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
	Page     int       `form:"page"`
	PageSize int       `form:"pageSize"`
}

// NextLaunchNumberResponse carries the next free launch number of a period
type NextLaunchNumberResponse struct {
	Month            int `json:"month"`
	Year             int `json:"year"`
	NextLaunchNumber int `json:"nextLaunchNumber"`
}

// ToMovementResponse maps a movement entity to its response shape
func ToMovementResponse(m *movement.ManualMovement) MovementResponse {
	return MovementResponse{
		ID:           m.ID,
		Month:        m.Month,
		Year:         m.Year,
		LaunchNumber: m.LaunchNumber,
		ProductCode:  m.ProductCode,
		CosifCode:    m.CosifCode,
		Description:  m.Description,
		MovementDate: m.MovementDate,
		UserCode:     m.UserCode,
		Value:        m.Value,
		Status:       string(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToMovementResponses maps a slice of movements
func ToMovementResponses(movements []movement.ManualMovement) []MovementResponse {
	responses := make([]MovementResponse, len(movements))
	for i := range movements {
		responses[i] = ToMovementResponse(&movements[i])
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

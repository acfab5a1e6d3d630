package movement

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/movements/backend/internal/domain/catalog"
	"github.com/movements/backend/internal/domain/movement"
	"github.com/movements/backend/internal/domain/shared"
)

// createMovementRules collects every invalid field before the launch
// number is consumed.
var createMovementRules = shared.RuleSet[CreateMovementRequest]{
	{Field: "month", Valid: func(r CreateMovementRequest) bool { return r.Month >= 1 && r.Month <= 12 },
		Message: "Month must be between 1 and 12"},
	{Field: "year", Valid: func(r CreateMovementRequest) bool { return r.Year >= 1900 && r.Year <= 2100 },
		Message: "Year is out of range"},
	{Field: "productCode", Valid: func(r CreateMovementRequest) bool { return shared.NotBlank(r.ProductCode) },
		Message: "Product code cannot be empty"},
	{Field: "cosifCode", Valid: func(r CreateMovementRequest) bool { return shared.NotBlank(r.CosifCode) },
		Message: "COSIF code cannot be empty"},
	{Field: "description", Valid: func(r CreateMovementRequest) bool { return shared.NotBlank(r.Description) },
		Message: "Description cannot be empty"},
	{Field: "movementDate", Valid: func(r CreateMovementRequest) bool { return !r.MovementDate.IsZero() },
		Message: "Movement date is required"},
	{Field: "userCode", Valid: func(r CreateMovementRequest) bool { return shared.NotBlank(r.UserCode) },
		Message: "User code cannot be empty"},
	{Field: "value", Valid: func(r CreateMovementRequest) bool { return r.Value.IsPositive() },
		Message: "Value must be greater than zero"},
}

// MovementService handles manual movement business operations
type MovementService struct {
	movementRepo movement.ManualMovementRepository
	cosifRepo    catalog.ProductCosifRepository
}

// NewMovementService creates a new MovementService
func NewMovementService(movementRepo movement.ManualMovementRepository, cosifRepo catalog.ProductCosifRepository) *MovementService {
	return &MovementService{
		movementRepo: movementRepo,
		cosifRepo:    cosifRepo,
	}
}

// Create records a manual movement. The launch number is the next free
// number of the (month, year) period, starting at 1.
func (s *MovementService) Create(ctx context.Context, actor string, req CreateMovementRequest) (*MovementResponse, error) {
	if err := shared.NewValidationError(createMovementRules.Validate(req)); err != nil {
		return nil, err
	}

	productCode := strings.ToUpper(strings.TrimSpace(req.ProductCode))
	cosifCode := strings.TrimSpace(req.CosifCode)
	registered, err := s.cosifRepo.ExistsByPair(ctx, productCode, cosifCode)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, shared.NewDomainError("UNKNOWN_COSIF", "Product is not linked to this COSIF code")
	}

	launchNumber, err := s.movementRepo.NextLaunchNumber(ctx, req.Month, req.Year)
	if err != nil {
		return nil, err
	}

	mov, err := movement.NewManualMovement(req.Month, req.Year, launchNumber,
		req.ProductCode, req.CosifCode, req.Description,
		req.MovementDate, req.UserCode, req.Value, actor)
	if err != nil {
		return nil, err
	}

	if err := s.movementRepo.Add(ctx, mov, actor); err != nil {
		return nil, err
	}

	response := ToMovementResponse(mov)
	return &response, nil
}

// GetByID retrieves a movement by ID
func (s *MovementService) GetByID(ctx context.Context, id uuid.UUID) (*MovementResponse, error) {
	mov, err := s.movementRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToMovementResponse(mov)
	return &response, nil
}

// List retrieves movements with filtering and pagination
func (s *MovementService) List(ctx context.Context, filter MovementListFilter) (shared.Paginated[MovementResponse], error) {
	domainFilter := shared.Filter{
		Page:     normalizePage(filter.Page),
		PageSize: normalizePageSize(filter.PageSize),
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
	}
	if filter.Month != 0 {
		domainFilter = domainFilter.Where("month", filter.Month)
	}
	if filter.Year != 0 {
		domainFilter = domainFilter.Where("year", filter.Year)
	}
	if filter.ProductCode != "" {
		domainFilter = domainFilter.Where("product_code", strings.ToUpper(strings.TrimSpace(filter.ProductCode)))
	}
	if filter.UserCode != "" {
		domainFilter = domainFilter.Where("user_code", filter.UserCode)
	}
	if filter.Status != "" {
		domainFilter = domainFilter.Where("status", filter.Status)
	}

	page, err := s.movementRepo.FindWithPagination(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[MovementResponse]{}, err
	}

	return toPagedResponses(page), nil
}

// ListByMonthYear pages through the movements of one accounting period
func (s *MovementService) ListByMonthYear(ctx context.Context, month, year, page, pageSize int) (shared.Paginated[MovementResponse], error) {
	if err := movement.ValidatePeriod(month, year); err != nil {
		return shared.Paginated[MovementResponse]{}, err
	}

	filter := shared.Filter{Page: normalizePage(page), PageSize: normalizePageSize(pageSize)}
	result, err := s.movementRepo.FindByMonthYear(ctx, month, year, filter)
	if err != nil {
		return shared.Paginated[MovementResponse]{}, err
	}

	return toPagedResponses(result), nil
}

// ListByPeriod pages through movements dated inside an inclusive range
func (s *MovementService) ListByPeriod(ctx context.Context, filter PeriodFilter) (shared.Paginated[MovementResponse], error) {
	if filter.To.Before(filter.From) {
		return shared.Paginated[MovementResponse]{}, shared.NewValidationError([]string{"Period end cannot precede its start"})
	}

	domainFilter := shared.Filter{Page: normalizePage(filter.Page), PageSize: normalizePageSize(filter.PageSize)}
	result, err := s.movementRepo.FindByPeriod(ctx, filter.From, filter.To, domainFilter)
	if err != nil {
		return shared.Paginated[MovementResponse]{}, err
	}

	return toPagedResponses(result), nil
}

// NextLaunchNumber reports the launch number the next movement of the
// period would receive
func (s *MovementService) NextLaunchNumber(ctx context.Context, month, year int) (*NextLaunchNumberResponse, error) {
	if err := movement.ValidatePeriod(month, year); err != nil {
		return nil, err
	}

	next, err := s.movementRepo.NextLaunchNumber(ctx, month, year)
	if err != nil {
		return nil, err
	}

	return &NextLaunchNumberResponse{Month: month, Year: year, NextLaunchNumber: next}, nil
}

// Update changes the mutable fields of a movement
func (s *MovementService) Update(ctx context.Context, actor string, id uuid.UUID, req UpdateMovementRequest) (*MovementResponse, error) {
	mov, err := s.movementRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := mov.UpdateDetails(req.Description, req.MovementDate, req.Value); err != nil {
		return nil, err
	}

	if err := s.movementRepo.Update(ctx, mov, actor); err != nil {
		return nil, err
	}

	response := ToMovementResponse(mov)
	return &response, nil
}

// Delete soft-deletes a movement. Its launch number is never reissued.
func (s *MovementService) Delete(ctx context.Context, actor string, id uuid.UUID) error {
	mov, err := s.movementRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.movementRepo.Remove(ctx, mov, actor)
}

func toPagedResponses(page shared.Paginated[movement.ManualMovement]) shared.Paginated[MovementResponse] {
	return shared.Paginated[MovementResponse]{
		Items:      ToMovementResponses(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}

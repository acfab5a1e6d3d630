package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	movementapp "github.com/movements/backend/internal/application/movement"
	"github.com/movements/backend/internal/domain/catalog"
	"github.com/movements/backend/internal/domain/movement"
	"github.com/movements/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMovementRepository implements movement.ManualMovementRepository for testing
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) FindByID(ctx context.Context, id uuid.UUID) (*movement.ManualMovement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*movement.ManualMovement), args.Error(1)
}

func (m *MockMovementRepository) FindAll(ctx context.Context, filter shared.Filter) ([]movement.ManualMovement, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]movement.ManualMovement), args.Error(1)
}

func (m *MockMovementRepository) FindWithPagination(ctx context.Context, filter shared.Filter) (shared.Paginated[movement.ManualMovement], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[movement.ManualMovement]), args.Error(1)
}

func (m *MockMovementRepository) ExecRaw(ctx context.Context, query string, queryArgs ...any) ([]movement.ManualMovement, error) {
	args := m.Called(ctx, query, queryArgs)
	return args.Get(0).([]movement.ManualMovement), args.Error(1)
}

func (m *MockMovementRepository) Add(ctx context.Context, entity *movement.ManualMovement, by string) error {
	args := m.Called(ctx, entity, by)
	return args.Error(0)
}

func (m *MockMovementRepository) Update(ctx context.Context, entity *movement.ManualMovement, by string) error {
	args := m.Called(ctx, entity, by)
	return args.Error(0)
}

func (m *MockMovementRepository) Remove(ctx context.Context, entity *movement.ManualMovement, by string) error {
	args := m.Called(ctx, entity, by)
	return args.Error(0)
}

func (m *MockMovementRepository) FindByMonthYear(ctx context.Context, month, year int, filter shared.Filter) (shared.Paginated[movement.ManualMovement], error) {
	args := m.Called(ctx, month, year, filter)
	return args.Get(0).(shared.Paginated[movement.ManualMovement]), args.Error(1)
}

func (m *MockMovementRepository) FindByPeriod(ctx context.Context, from, to time.Time, filter shared.Filter) (shared.Paginated[movement.ManualMovement], error) {
	args := m.Called(ctx, from, to, filter)
	return args.Get(0).(shared.Paginated[movement.ManualMovement]), args.Error(1)
}

func (m *MockMovementRepository) NextLaunchNumber(ctx context.Context, month, year int) (int, error) {
	args := m.Called(ctx, month, year)
	return args.Int(0), args.Error(1)
}

// MockCosifRepository implements catalog.ProductCosifRepository for testing
type MockCosifRepository struct {
	mock.Mock
}

func (m *MockCosifRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductCosif, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductCosif), args.Error(1)
}

func (m *MockCosifRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.ProductCosif, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.ProductCosif), args.Error(1)
}

func (m *MockCosifRepository) FindWithPagination(ctx context.Context, filter shared.Filter) (shared.Paginated[catalog.ProductCosif], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[catalog.ProductCosif]), args.Error(1)
}

func (m *MockCosifRepository) ExecRaw(ctx context.Context, query string, queryArgs ...any) ([]catalog.ProductCosif, error) {
	args := m.Called(ctx, query, queryArgs)
	return args.Get(0).([]catalog.ProductCosif), args.Error(1)
}

func (m *MockCosifRepository) Add(ctx context.Context, entity *catalog.ProductCosif, by string) error {
	args := m.Called(ctx, entity, by)
	return args.Error(0)
}

func (m *MockCosifRepository) Update(ctx context.Context, entity *catalog.ProductCosif, by string) error {
	args := m.Called(ctx, entity, by)
	return args.Error(0)
}

func (m *MockCosifRepository) Remove(ctx context.Context, entity *catalog.ProductCosif, by string) error {
	args := m.Called(ctx, entity, by)
	return args.Error(0)
}

func (m *MockCosifRepository) FindByProductCode(ctx context.Context, productCode string) ([]catalog.ProductCosif, error) {
	args := m.Called(ctx, productCode)
	return args.Get(0).([]catalog.ProductCosif), args.Error(1)
}

func (m *MockCosifRepository) FindByPair(ctx context.Context, productCode, cosifCode string) (*catalog.ProductCosif, error) {
	args := m.Called(ctx, productCode, cosifCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductCosif), args.Error(1)
}

func (m *MockCosifRepository) ExistsByPair(ctx context.Context, productCode, cosifCode string) (bool, error) {
	args := m.Called(ctx, productCode, cosifCode)
	return args.Bool(0), args.Error(1)
}

func setupMovementRouter(movementRepo *MockMovementRepository, cosifRepo *MockCosifRepository) *gin.Engine {
	handler := NewMovementHandler(newTestBase(), movementapp.NewMovementService(movementRepo, cosifRepo))

	router := gin.New()
	router.POST("/manual-movements", handler.Create)
	router.GET("/manual-movements", handler.List)
	router.GET("/manual-movements/by-month-year", handler.ListByMonthYear)
	router.GET("/manual-movements/next-launch-number", handler.NextLaunchNumber)
	router.GET("/manual-movements/:id", handler.GetByID)
	return router
}

func seedMovement(t *testing.T, launchNumber int) *movement.ManualMovement {
	t.Helper()
	mv, err := movement.NewManualMovement(3, 2025, launchNumber, "PRD01", "1.1.1.00.00",
		"Monthly adjustment", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		"USR001", decimal.RequireFromString("150.75"), "seed")
	require.NoError(t, err)
	return mv
}

func TestMovementHandler_Create_AssignsLaunchNumber(t *testing.T) {
	movementRepo := new(MockMovementRepository)
	cosifRepo := new(MockCosifRepository)
	cosifRepo.On("ExistsByPair", mock.Anything, "PRD01", "1.1.1.00.00").Return(true, nil)
	movementRepo.On("NextLaunchNumber", mock.Anything, 3, 2025).Return(4, nil)
	movementRepo.On("Add", mock.Anything, mock.AnythingOfType("*movement.ManualMovement"), "USR001").Return(nil)

	router := setupMovementRouter(movementRepo, cosifRepo)
	w := postJSON(router, "/manual-movements", movementapp.CreateMovementRequest{
		Month:        3,
		Year:         2025,
		ProductCode:  "PRD01",
		CosifCode:    "1.1.1.00.00",
		Description:  "Monthly adjustment",
		MovementDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		UserCode:     "USR001",
		Value:        decimal.RequireFromString("150.75"),
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			LaunchNumber int    `json:"launchNumber"`
			Value        string `json:"value"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Data.LaunchNumber)
	assert.Equal(t, "150.75", resp.Data.Value)
	movementRepo.AssertExpectations(t)
}

func TestMovementHandler_Create_UnknownCosifPair(t *testing.T) {
	movementRepo := new(MockMovementRepository)
	cosifRepo := new(MockCosifRepository)
	cosifRepo.On("ExistsByPair", mock.Anything, "PRD01", "9.9.9.99.99").Return(false, nil)

	router := setupMovementRouter(movementRepo, cosifRepo)
	w := postJSON(router, "/manual-movements", movementapp.CreateMovementRequest{
		Month:        3,
		Year:         2025,
		ProductCode:  "PRD01",
		CosifCode:    "9.9.9.99.99",
		Description:  "Monthly adjustment",
		MovementDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		UserCode:     "USR001",
		Value:        decimal.RequireFromString("10.00"),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	movementRepo.AssertNotCalled(t, "Add")
}

func TestMovementHandler_Create_MissingFields(t *testing.T) {
	movementRepo := new(MockMovementRepository)
	cosifRepo := new(MockCosifRepository)

	router := setupMovementRouter(movementRepo, cosifRepo)
	w := postJSON(router, "/manual-movements", map[string]any{"month": 3})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool     `json:"success"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Errors)
	cosifRepo.AssertNotCalled(t, "ExistsByPair")
}

func TestMovementHandler_ListByMonthYear_PagedEnvelope(t *testing.T) {
	movements := make([]movement.ManualMovement, 5)
	for i := range movements {
		movements[i] = *seedMovement(t, i+6)
	}

	movementRepo := new(MockMovementRepository)
	cosifRepo := new(MockCosifRepository)
	movementRepo.On("FindByMonthYear", mock.Anything, 3, 2025, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 2 && f.PageSize == 5
	})).Return(shared.NewPaginated(movements, 12, 2, 5), nil)

	router := setupMovementRouter(movementRepo, cosifRepo)
	req := httptest.NewRequest(http.MethodGet, "/manual-movements/by-month-year?month=3&year=2025&page=2&pageSize=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data            []json.RawMessage `json:"data"`
		Total           int64             `json:"total"`
		TotalPages      int               `json:"totalPages"`
		HasPreviousPage bool              `json:"hasPreviousPage"`
		HasNextPage     bool              `json:"hasNextPage"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 5)
	assert.Equal(t, int64(12), resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasPreviousPage)
	assert.True(t, resp.HasNextPage)
}

func TestMovementHandler_NextLaunchNumber(t *testing.T) {
	movementRepo := new(MockMovementRepository)
	cosifRepo := new(MockCosifRepository)
	movementRepo.On("NextLaunchNumber", mock.Anything, 3, 2025).Return(7, nil)

	router := setupMovementRouter(movementRepo, cosifRepo)
	req := httptest.NewRequest(http.MethodGet, "/manual-movements/next-launch-number?month=3&year=2025", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Month            int `json:"month"`
			Year             int `json:"year"`
			NextLaunchNumber int `json:"nextLaunchNumber"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Month)
	assert.Equal(t, 2025, resp.Data.Year)
	assert.Equal(t, 7, resp.Data.NextLaunchNumber)
}

func TestMovementHandler_NextLaunchNumber_MissingPeriod(t *testing.T) {
	movementRepo := new(MockMovementRepository)
	cosifRepo := new(MockCosifRepository)

	router := setupMovementRouter(movementRepo, cosifRepo)
	req := httptest.NewRequest(http.MethodGet, "/manual-movements/next-launch-number?month=3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	movementRepo.AssertNotCalled(t, "NextLaunchNumber")
}

func TestMovementHandler_GetByID_NotFound(t *testing.T) {
	id := uuid.New()
	movementRepo := new(MockMovementRepository)
	cosifRepo := new(MockCosifRepository)
	movementRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	router := setupMovementRouter(movementRepo, cosifRepo)
	req := httptest.NewRequest(http.MethodGet, "/manual-movements/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

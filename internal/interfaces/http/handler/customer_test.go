package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	partnerapp "github.com/movements/backend/internal/application/partner"
	"github.com/movements/backend/internal/domain/partner"
	"github.com/movements/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustomerRepository implements partner.CustomerRepository for testing
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindWithPagination(ctx context.Context, filter shared.Filter) (shared.Paginated[partner.Customer], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[partner.Customer]), args.Error(1)
}

func (m *MockCustomerRepository) ExecRaw(ctx context.Context, query string, queryArgs ...any) ([]partner.Customer, error) {
	args := m.Called(ctx, query, queryArgs)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Add(ctx context.Context, entity *partner.Customer, by string) error {
	args := m.Called(ctx, entity, by)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, entity *partner.Customer, by string) error {
	args := m.Called(ctx, entity, by)
	return args.Error(0)
}

func (m *MockCustomerRepository) Remove(ctx context.Context, entity *partner.Customer, by string) error {
	args := m.Called(ctx, entity, by)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*partner.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByDocument(ctx context.Context, document string) (*partner.Customer, error) {
	args := m.Called(ctx, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	args := m.Called(ctx, document)
	return args.Bool(0), args.Error(1)
}

func setupCustomerRouter(repo *MockCustomerRepository) *gin.Engine {
	handler := NewCustomerHandler(newTestBase(), partnerapp.NewCustomerService(repo))

	router := gin.New()
	router.POST("/customers", handler.Create)
	router.GET("/customers", handler.List)
	router.GET("/customers/:id", handler.GetByID)
	router.PUT("/customers/:id", handler.Update)
	router.DELETE("/customers/:id", handler.Delete)
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(UserCodeHeader, "USR001")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCustomerHandler_Create_Success(t *testing.T) {
	repo := new(MockCustomerRepository)
	repo.On("ExistsByEmail", mock.Anything, "maria@example.com").Return(false, nil)
	repo.On("ExistsByDocument", mock.Anything, "52998224725").Return(false, nil)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*partner.Customer"), "USR001").Return(nil)

	router := setupCustomerRouter(repo)
	w := postJSON(router, "/customers", partnerapp.CreateCustomerRequest{
		Name:     "Maria Souza",
		Email:    "Maria@Example.com",
		Document: "529.982.247-25",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			ID       uuid.UUID `json:"id"`
			Email    string    `json:"email"`
			Document string    `json:"document"`
		} `json:"data"`
		Success    bool `json:"success"`
		StatusCode int  `json:"statusCode"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEqual(t, uuid.Nil, resp.Data.ID)
	assert.Equal(t, "maria@example.com", resp.Data.Email)
	assert.Equal(t, "52998224725", resp.Data.Document)
	repo.AssertExpectations(t)
}

func TestCustomerHandler_Create_InvalidEmailReportsAllFailures(t *testing.T) {
	repo := new(MockCustomerRepository)
	router := setupCustomerRouter(repo)

	w := postJSON(router, "/customers", partnerapp.CreateCustomerRequest{
		Name:     "Maria Souza",
		Email:    "not-an-email",
		Document: "52998224725",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool     `json:"success"`
		Message *string  `json:"message"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Message)
	assert.Contains(t, *resp.Message, "Email format is invalid")
	assert.NotEmpty(t, resp.Errors)
	repo.AssertNotCalled(t, "Add")
}

func TestCustomerHandler_Create_InvalidDocumentRejectedAtBinding(t *testing.T) {
	repo := new(MockCustomerRepository)
	router := setupCustomerRouter(repo)

	w := postJSON(router, "/customers", partnerapp.CreateCustomerRequest{
		Name:     "Maria Souza",
		Email:    "maria@example.com",
		Document: "111.111.111-11",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool     `json:"success"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, "document: Not a valid CPF or CNPJ")
	repo.AssertNotCalled(t, "ExistsByEmail")
	repo.AssertNotCalled(t, "Add")
}

func TestCustomerHandler_Create_InvalidPhoneRejectedAtBinding(t *testing.T) {
	repo := new(MockCustomerRepository)
	router := setupCustomerRouter(repo)

	w := postJSON(router, "/customers", partnerapp.CreateCustomerRequest{
		Name:     "Maria Souza",
		Email:    "maria@example.com",
		Document: "529.982.247-25",
		Phone:    "not-a-phone",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "phone: Not a valid phone number")
	repo.AssertNotCalled(t, "Add")
}

func TestCustomerHandler_Create_DuplicateEmail(t *testing.T) {
	repo := new(MockCustomerRepository)
	repo.On("ExistsByEmail", mock.Anything, "maria@example.com").Return(true, nil)

	router := setupCustomerRouter(repo)
	w := postJSON(router, "/customers", partnerapp.CreateCustomerRequest{
		Name:     "Maria Souza",
		Email:    "maria@example.com",
		Document: "52998224725",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	repo.AssertNotCalled(t, "Add")
}

func TestCustomerHandler_GetByID_NotFoundKeepsSuccess(t *testing.T) {
	id := uuid.New()
	repo := new(MockCustomerRepository)
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	router := setupCustomerRouter(repo)
	req := httptest.NewRequest(http.MethodGet, "/customers/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Data      any  `json:"data"`
		Success   bool `json:"success"`
		IsSuccess bool `json:"isSuccess"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Data)
	assert.True(t, resp.Success)
	assert.True(t, resp.IsSuccess)
}

func TestCustomerHandler_GetByID_MalformedID(t *testing.T) {
	repo := new(MockCustomerRepository)
	router := setupCustomerRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/customers/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "FindByID")
}

func TestCustomerHandler_List_PagedEnvelope(t *testing.T) {
	customers := make([]partner.Customer, 5)
	for i := range customers {
		c, err := partner.NewCustomer("Customer", "c@example.com", "52998224725", "seed")
		require.NoError(t, err)
		customers[i] = *c
	}

	repo := new(MockCustomerRepository)
	repo.On("FindWithPagination", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 2 && f.PageSize == 5
	})).Return(shared.NewPaginated(customers, 12, 2, 5), nil)

	router := setupCustomerRouter(repo)
	req := httptest.NewRequest(http.MethodGet, "/customers?page=2&pageSize=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data            []json.RawMessage `json:"data"`
		Page            int               `json:"page"`
		PageSize        int               `json:"pageSize"`
		Total           int64             `json:"total"`
		TotalPages      int               `json:"totalPages"`
		HasPreviousPage bool              `json:"hasPreviousPage"`
		HasNextPage     bool              `json:"hasNextPage"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 5)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 5, resp.PageSize)
	assert.Equal(t, int64(12), resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasPreviousPage)
	assert.True(t, resp.HasNextPage)
}

func TestCustomerHandler_Delete(t *testing.T) {
	customer, err := partner.NewCustomer("Maria Souza", "maria@example.com", "52998224725", "seed")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	repo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
	repo.On("Remove", mock.Anything, customer, "system").Return(nil)

	router := setupCustomerRouter(repo)
	req := httptest.NewRequest(http.MethodDelete, "/customers/"+customer.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

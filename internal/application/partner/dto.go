package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/movements/backend/internal/domain/partner"
)

// AddressPayload carries the customer's single address on requests
type AddressPayload struct {
	Street       string `json:"street" binding:"required,max=200"`
	Number       string `json:"number" binding:"max=20"`
	Complement   string `json:"complement" binding:"max=100"`
	Neighborhood string `json:"neighborhood" binding:"required,max=100"`
	City         string `json:"city" binding:"required,max=100"`
	State        string `json:"state" binding:"required,max=50"`
	Country      string `json:"country" binding:"required,max=100"`
	ZipCode      string `json:"zipCode" binding:"required,max=20"`
}

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Name               string          `json:"name" binding:"required,min=1,max=200"`
	Email              string          `json:"email" binding:"required,max=200"`
	Document           string          `json:"document" binding:"required,max=20,cpfcnpj"`
	Gender             string          `json:"gender" binding:"omitempty,oneof=female male other unspecified"`
	BirthDate          *time.Time      `json:"birthDate"`
	Phone              string          `json:"phone" binding:"omitempty,max=20,brphone"`
	PreferredChannel   string          `json:"preferredChannel" binding:"omitempty,oneof=email phone sms none"`
	MarketingConsent   bool            `json:"marketingConsent"`
	DataSharingConsent bool            `json:"dataSharingConsent"`
	Address            *AddressPayload `json:"address"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	Name               *string         `json:"name" binding:"omitempty,min=1,max=200"`
	Email              *string         `json:"email" binding:"omitempty,max=200"`
	Document           *string         `json:"document" binding:"omitempty,max=20,cpfcnpj"`
	Gender             *string         `json:"gender" binding:"omitempty,oneof=female male other unspecified"`
	BirthDate          *time.Time      `json:"birthDate"`
	Phone              *string         `json:"phone" binding:"omitempty,max=20,brphone"`
	PreferredChannel   *string         `json:"preferredChannel" binding:"omitempty,oneof=email phone sms none"`
	MarketingConsent   *bool           `json:"marketingConsent"`
	DataSharingConsent *bool           `json:"dataSharingConsent"`
	Address            *AddressPayload `json:"address"`
}

// AddressResponse represents the customer's address in API responses
type AddressResponse struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	ZipCode      string `json:"zipCode"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID                 uuid.UUID        `json:"id"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Document           string           `json:"document"`
	Gender             string           `json:"gender"`
	BirthDate          *time.Time       `json:"birthDate"`
	Phone              string           `json:"phone"`
	PreferredChannel   string           `json:"preferredChannel"`
	MarketingConsent   bool             `json:"marketingConsent"`
	DataSharingConsent bool             `json:"dataSharingConsent"`
	Address            *AddressResponse `json:"address"`
	Status             string           `json:"status"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// CustomerListFilter represents filter options for the customer list
type CustomerListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=created active inactive deleted"`
	Gender   string `form:"gender" binding:"omitempty,oneof=female male other unspecified"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
	OrderBy  string `form:"orderBy"`
	OrderDir string `form:"orderDir" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// ToCustomerResponse maps a customer entity to its response shape
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Email:              c.Email,
		Document:           c.Document,
		Gender:             string(c.Gender),
		BirthDate:          c.BirthDate,
		Phone:              c.Phone,
		PreferredChannel:   string(c.PreferredChannel),
		MarketingConsent:   c.MarketingConsent,
		DataSharingConsent: c.DataSharingConsent,
		Status:             string(c.Status),
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
	if c.Address.Street != "" {
		resp.Address = &AddressResponse{
			Street:       c.Address.Street,
			Number:       c.Address.Number,
			Complement:   c.Address.Complement,
			Neighborhood: c.Address.Neighborhood,
			City:         c.Address.City,
			State:        c.Address.State,
			Country:      c.Address.Country,
			ZipCode:      c.Address.ZipCode,
		}
	}
	return resp
}

// ToCustomerResponses maps a slice of customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}

func normalizedEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
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

func toDomainAddress(p *AddressPayload) partner.Address {
	return partner.Address{
		Street:       p.Street,
		Number:       p.Number,
		Complement:   p.Complement,
		Neighborhood: p.Neighborhood,
		City:         p.City,
		State:        p.State,
		Country:      p.Country,
		ZipCode:      p.ZipCode,
	}
}

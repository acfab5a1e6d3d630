package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/movements/backend/internal/domain/partner"
	"github.com/movements/backend/internal/domain/shared"
)

// createCustomerRules collects every invalid field of a create request
// before the aggregate is touched.
var createCustomerRules = shared.RuleSet[CreateCustomerRequest]{
	{Field: "name", Valid: func(r CreateCustomerRequest) bool { return shared.NotBlank(r.Name) },
		Message: "Name cannot be empty"},
	{Field: "email", Valid: func(r CreateCustomerRequest) bool { return shared.ValidEmail(r.Email) },
		Message: "Email format is invalid"},
	{Field: "document", Valid: func(r CreateCustomerRequest) bool { return shared.ValidDocument(r.Document) },
		Message: "Document number is not a valid CPF or CNPJ"},
	{Field: "phone", Valid: func(r CreateCustomerRequest) bool { return r.Phone == "" || shared.ValidPhone(r.Phone) },
		Message: "Phone number format is invalid"},
}

// CustomerService handles customer business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Create validates and persists a new customer with its optional address
func (s *CustomerService) Create(ctx context.Context, actor string, req CreateCustomerRequest) (*CustomerResponse, error) {
	if err := shared.NewValidationError(createCustomerRules.Validate(req)); err != nil {
		return nil, err
	}

	exists, err := s.customerRepo.ExistsByEmail(ctx, normalizedEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this email already exists")
	}

	exists, err = s.customerRepo.ExistsByDocument(ctx, shared.DocumentDigits(req.Document))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this document already exists")
	}

	customer, err := partner.NewCustomer(req.Name, req.Email, req.Document, actor)
	if err != nil {
		return nil, err
	}

	if req.Gender != "" || req.BirthDate != nil || req.Phone != "" {
		if err := customer.UpdateProfile(req.Name, partner.Gender(req.Gender), req.BirthDate, req.Phone); err != nil {
			return nil, err
		}
	}
	if err := customer.SetPreferences(partner.ContactChannel(req.PreferredChannel), req.MarketingConsent, req.DataSharingConsent); err != nil {
		return nil, err
	}
	if req.Address != nil {
		if err := customer.SetAddress(toDomainAddress(req.Address)); err != nil {
			return nil, err
		}
	}

	if err := s.customerRepo.Add(ctx, customer, actor); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByEmail retrieves a customer by its normalized email
func (s *CustomerService) GetByEmail(ctx context.Context, email string) (*CustomerResponse, error) {
	if !shared.ValidEmail(email) {
		return nil, shared.NewValidationError([]string{"Email format is invalid"})
	}

	customer, err := s.customerRepo.FindByEmail(ctx, normalizedEmail(email))
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByDocument retrieves a customer by CPF/CNPJ
func (s *CustomerService) GetByDocument(ctx context.Context, document string) (*CustomerResponse, error) {
	if !shared.ValidDocument(document) {
		return nil, shared.NewValidationError([]string{"Document number is not a valid CPF or CNPJ"})
	}

	customer, err := s.customerRepo.FindByDocument(ctx, shared.DocumentDigits(document))
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves customers with filtering and pagination
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) (shared.Paginated[CustomerResponse], error) {
	domainFilter := shared.Filter{
		Page:     normalizePage(filter.Page),
		PageSize: normalizePageSize(filter.PageSize),
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
	}
	if filter.Status != "" {
		domainFilter = domainFilter.Where("status", filter.Status)
	}
	if filter.Gender != "" {
		domainFilter = domainFilter.Where("gender", filter.Gender)
	}

	page, err := s.customerRepo.FindWithPagination(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[CustomerResponse]{}, err
	}

	return shared.Paginated[CustomerResponse]{
		Items:      ToCustomerResponses(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// Update applies a partial update to a customer
func (s *CustomerService) Update(ctx context.Context, actor string, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && normalizedEmail(*req.Email) != customer.Email {
		exists, err := s.customerRepo.ExistsByEmail(ctx, normalizedEmail(*req.Email))
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this email already exists")
		}
		if err := customer.UpdateEmail(*req.Email); err != nil {
			return nil, err
		}
	}

	if req.Document != nil && shared.DocumentDigits(*req.Document) != customer.Document {
		exists, err := s.customerRepo.ExistsByDocument(ctx, shared.DocumentDigits(*req.Document))
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this document already exists")
		}
		if err := customer.UpdateDocument(*req.Document); err != nil {
			return nil, err
		}
	}

	if req.Name != nil || req.Gender != nil || req.BirthDate != nil || req.Phone != nil {
		name := customer.Name
		if req.Name != nil {
			name = *req.Name
		}
		gender := customer.Gender
		if req.Gender != nil {
			gender = partner.Gender(*req.Gender)
		}
		birthDate := customer.BirthDate
		if req.BirthDate != nil {
			birthDate = req.BirthDate
		}
		phone := customer.Phone
		if req.Phone != nil {
			phone = *req.Phone
		}
		if err := customer.UpdateProfile(name, gender, birthDate, phone); err != nil {
			return nil, err
		}
	}

	if req.PreferredChannel != nil || req.MarketingConsent != nil || req.DataSharingConsent != nil {
		channel := customer.PreferredChannel
		if req.PreferredChannel != nil {
			channel = partner.ContactChannel(*req.PreferredChannel)
		}
		marketing := customer.MarketingConsent
		if req.MarketingConsent != nil {
			marketing = *req.MarketingConsent
		}
		dataSharing := customer.DataSharingConsent
		if req.DataSharingConsent != nil {
			dataSharing = *req.DataSharingConsent
		}
		if err := customer.SetPreferences(channel, marketing, dataSharing); err != nil {
			return nil, err
		}
	}

	if req.Address != nil {
		if err := customer.SetAddress(toDomainAddress(req.Address)); err != nil {
			return nil, err
		}
	}

	if err := s.customerRepo.Update(ctx, customer, actor); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete soft-deletes a customer and its address
func (s *CustomerService) Delete(ctx context.Context, actor string, id uuid.UUID) error {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.customerRepo.Remove(ctx, customer, actor)
}

// Reactivate restores an inactive or soft-deleted customer
func (s *CustomerService) Reactivate(ctx context.Context, actor string, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Reactivate()
	if err := s.customerRepo.Update(ctx, customer, actor); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

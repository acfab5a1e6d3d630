package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/movements/backend/internal/domain/partner"
	"github.com/movements/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCustomerRepository is the GORM implementation of partner.CustomerRepository.
// Writes are customized so the owned address row travels with the customer.
type GormCustomerRepository struct {
	*GormRepository[partner.Customer, *partner.Customer]
	db *gorm.DB
}

// NewGormCustomerRepository creates a new customer repository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{
		GormRepository: NewGormRepository[partner.Customer, *partner.Customer](
			db,
			CustomerSortFields,
			WithPreload("Address"),
			WithSearchColumns("name", "email"),
		),
		db: db,
	}
}

// FindByEmail finds a customer by email
func (r *GormCustomerRepository) FindByEmail(ctx context.Context, email string) (*partner.Customer, error) {
	var customer partner.Customer
	err := r.db.WithContext(ctx).Preload("Address").First(&customer, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindByDocument finds a customer by CPF/CNPJ digits
func (r *GormCustomerRepository) FindByDocument(ctx context.Context, document string) (*partner.Customer, error) {
	var customer partner.Customer
	err := r.db.WithContext(ctx).Preload("Address").First(&customer, "document = ?", document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// ExistsByEmail reports whether any customer uses the email
func (r *GormCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&partner.Customer{}).
		Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// ExistsByDocument reports whether any customer uses the document
func (r *GormCustomerRepository) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&partner.Customer{}).
		Where("document = ?", document).Count(&count).Error
	return count > 0, err
}

// Add persists a new customer together with its address, when present
func (r *GormCustomerRepository) Add(ctx context.Context, customer *partner.Customer, by string) error {
	now := time.Now()
	customer.StampCreate(by, now)
	if r.hasAddress(customer) {
		customer.Address.CustomerID = customer.ID
		customer.Address.StampCreate(by, now)
		if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
			return translateWriteError(err)
		}
		return nil
	}
	if err := r.db.WithContext(ctx).Omit("Address").Create(customer).Error; err != nil {
		return translateWriteError(err)
	}
	return nil
}

// Update persists changes to a customer and keeps the address row in step
func (r *GormCustomerRepository) Update(ctx context.Context, customer *partner.Customer, by string) error {
	now := time.Now()
	customer.StampUpdate(by, now)
	if r.hasAddress(customer) {
		customer.Address.CustomerID = customer.ID
		if customer.Address.CreatedAt.IsZero() {
			customer.Address.StampCreate(by, now)
		} else {
			customer.Address.StampUpdate(by, now)
		}
		err := r.db.WithContext(ctx).
			Session(&gorm.Session{FullSaveAssociations: true}).
			Save(customer).Error
		if err != nil {
			return translateWriteError(err)
		}
		return nil
	}
	if err := r.db.WithContext(ctx).Omit("Address").Save(customer).Error; err != nil {
		return translateWriteError(err)
	}
	return nil
}

// Remove soft-deletes the customer and its address in one transaction
func (r *GormCustomerRepository) Remove(ctx context.Context, customer *partner.Customer, by string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customer.MarkDeleted(by, now)
		if err := tx.Omit("Address").Save(customer).Error; err != nil {
			return err
		}
		if r.hasAddress(customer) {
			customer.Address.MarkDeleted(by, now)
			if err := tx.Save(&customer.Address).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormCustomerRepository) hasAddress(customer *partner.Customer) bool {
	return customer.Address.Street != ""
}

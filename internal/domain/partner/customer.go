package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/movements/backend/internal/domain/shared"
)

// Gender represents the customer's declared gender
type Gender string

const (
	GenderFemale      Gender = "female"
	GenderMale        Gender = "male"
	GenderOther       Gender = "other"
	GenderUnspecified Gender = "unspecified"
)

// ContactChannel represents the customer's preferred contact channel
type ContactChannel string

const (
	ChannelEmail ContactChannel = "email"
	ChannelPhone ContactChannel = "phone"
	ChannelSMS   ContactChannel = "sms"
	ChannelNone  ContactChannel = "none"
)

// Customer represents a customer that owns manual accounting movements.
// It is the aggregate root for the customer and its address.
type Customer struct {
	shared.BaseEntity
	Name               string         `gorm:"type:varchar(200);not null"`
	Email              string         `gorm:"type:varchar(200);not null;uniqueIndex"`
	Document           string         `gorm:"type:varchar(14);not null;uniqueIndex"` // CPF or CNPJ, digits only
	Gender             Gender         `gorm:"type:varchar(20);not null;default:'unspecified'"`
	BirthDate          *time.Time     `gorm:"type:date"`
	Phone              string         `gorm:"type:varchar(20)"`
	PreferredChannel   ContactChannel `gorm:"type:varchar(20);not null;default:'email'"`
	MarketingConsent   bool           `gorm:"not null"`
	DataSharingConsent bool           `gorm:"not null"`
	Address            Address        `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with the required fields validated
func NewCustomer(name, email, document, by string) (*Customer, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateDocument(document); err != nil {
		return nil, err
	}

	return &Customer{
		BaseEntity:       shared.NewBaseEntity(by),
		Name:             strings.TrimSpace(name),
		Email:            normalizeEmail(email),
		Document:         shared.DocumentDigits(document),
		Gender:           GenderUnspecified,
		PreferredChannel: ChannelEmail,
	}, nil
}

// UpdateProfile updates the customer's basic information
func (c *Customer) UpdateProfile(name string, gender Gender, birthDate *time.Time, phone string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if gender != "" && !validGender(gender) {
		return shared.NewDomainError("INVALID_GENDER", "Gender is not recognized")
	}
	if phone != "" && !shared.ValidPhone(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Phone number format is invalid")
	}

	c.Name = strings.TrimSpace(name)
	if gender != "" {
		c.Gender = gender
	}
	c.BirthDate = birthDate
	c.Phone = strings.TrimSpace(phone)
	return nil
}

// UpdateEmail changes the customer's email address
func (c *Customer) UpdateEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	c.Email = normalizeEmail(email)
	return nil
}

// UpdateDocument changes the customer's CPF/CNPJ
func (c *Customer) UpdateDocument(document string) error {
	if err := validateDocument(document); err != nil {
		return err
	}
	c.Document = shared.DocumentDigits(document)
	return nil
}

// SetPreferences records the contact preference and consent flags
func (c *Customer) SetPreferences(channel ContactChannel, marketing, dataSharing bool) error {
	if channel != "" && !validChannel(channel) {
		return shared.NewDomainError("INVALID_CHANNEL", "Preferred contact channel is not recognized")
	}
	if channel != "" {
		c.PreferredChannel = channel
	}
	c.MarketingConsent = marketing
	c.DataSharingConsent = dataSharing
	return nil
}

// SetAddress attaches or replaces the customer's owned address.
// The address lifecycle is fully dependent on the customer.
func (c *Customer) SetAddress(addr Address) error {
	if err := addr.validate(); err != nil {
		return err
	}
	// Keep the existing address row identity on replacement
	if c.Address.ID != uuid.Nil {
		addr.BaseEntity = c.Address.BaseEntity
	}
	addr.CustomerID = c.ID
	c.Address = addr
	return nil
}

func validGender(g Gender) bool {
	switch g {
	case GenderFemale, GenderMale, GenderOther, GenderUnspecified:
		return true
	}
	return false
}

func validChannel(ch ContactChannel) bool {
	switch ch {
	case ChannelEmail, ChannelPhone, ChannelSMS, ChannelNone:
		return true
	}
	return false
}

func validateName(name string) error {
	if !shared.NotBlank(name) {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if !shared.ValidEmail(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	return nil
}

func validateDocument(document string) error {
	if !shared.ValidDocument(document) {
		return shared.NewDomainError("INVALID_DOCUMENT", "Document number is not a valid CPF or CNPJ")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

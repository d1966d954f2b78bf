package tenancy

import (
	"regexp"
	"strings"
	"time"

	"github.com/estatelink/backend/internal/domain/shared"
)

// Tenant represents a person renting a property. It is referenced by
// contracts and its contact details feed payment and expiry alerts.
type Tenant struct {
	shared.BaseEntity
	Name  string
	Email string
	Phone string
}

// uaePhoneRegex matches UAE numbers in international format: +971 followed by 9 digits.
var uaePhoneRegex = regexp.MustCompile(`^\+971[0-9]{9}$`)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NewTenant creates a new tenant with required fields
func NewTenant(name, email, phone string) (*Tenant, error) {
	if err := validateTenantName(name); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePhone(phone); err != nil {
		return nil, err
	}

	return &Tenant{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      strings.ToLower(email),
		Phone:      phone,
	}, nil
}

// UpdateContact updates the tenant's contact information
func (t *Tenant) UpdateContact(email, phone string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if err := ValidatePhone(phone); err != nil {
		return err
	}

	t.Email = strings.ToLower(email)
	t.Phone = phone
	t.UpdatedAt = time.Now()

	return nil
}

func validateTenantName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Tenant name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Tenant name cannot exceed 200 characters")
	}
	return nil
}

// ValidatePhone checks that a phone number is in UAE international format
func ValidatePhone(phone string) error {
	if !uaePhoneRegex.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Phone must be in format +971XXXXXXXXX")
	}
	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

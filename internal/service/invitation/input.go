package invitation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

// CreateInput holds the parameters for inviting someone by email.
type CreateInput struct {
	HouseholdID uuid.UUID
	Email       string
	Role        domain.Role
	ExpiryHours *int // nil = configured default
}

// Validate checks all fields and collects all errors. maxHours bounds the
// requested expiry.
func (i CreateInput) Validate(maxHours int) error {
	var errs []domain.FieldError

	if i.HouseholdID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "household_id", Message: "required"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !domain.ValidEmail(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	switch {
	case !i.Role.IsValid():
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value"})
	case i.Role == domain.RoleOwner:
		errs = append(errs, domain.FieldError{Field: "role", Message: "cannot invite as owner"})
	}

	if i.ExpiryHours != nil && (*i.ExpiryHours < 1 || *i.ExpiryHours > maxHours) {
		errs = append(errs, domain.FieldError{Field: "expiry_hours", Message: fmt.Sprintf("must be between 1 and %d", maxHours)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

package household

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

const maxNameLen = 100

// CreateHouseholdInput holds the parameters for creating a household.
type CreateHouseholdInput struct {
	Name     string
	Settings *domain.HouseholdSettings // nil = defaults
}

// Validate checks all fields and collects all errors.
func (i CreateHouseholdInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, i.Name)
	if i.Settings != nil {
		errs = validateCurrency(errs, &i.Settings.Currency)
		errs = validateTimezone(errs, &i.Settings.Timezone)
		errs = validateLocale(errs, &i.Settings.Locale)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateHouseholdInput holds a partial household update.
type UpdateHouseholdInput struct {
	HouseholdID uuid.UUID
	Name        *string
	Currency    *string
	Timezone    *string
	Locale      *string
}

// Validate checks all fields and collects all errors.
func (i UpdateHouseholdInput) Validate() error {
	var errs []domain.FieldError
	if i.HouseholdID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "household_id", Message: "required"})
	}
	if i.Name == nil && i.Currency == nil && i.Timezone == nil && i.Locale == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	errs = validateCurrency(errs, i.Currency)
	errs = validateTimezone(errs, i.Timezone)
	errs = validateLocale(errs, i.Locale)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddMemberInput holds the parameters for adding a user directly.
type AddMemberInput struct {
	HouseholdID uuid.UUID
	UserID      uuid.UUID
	Role        domain.Role
}

// Validate checks all fields and collects all errors.
func (i AddMemberInput) Validate() error {
	var errs []domain.FieldError
	errs = validateIDs(errs, i.HouseholdID, i.UserID)
	switch {
	case !i.Role.IsValid():
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value"})
	case i.Role == domain.RoleOwner:
		errs = append(errs, domain.FieldError{Field: "role", Message: "cannot add a member as owner"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateMemberRoleInput holds the parameters for changing a member's role.
type UpdateMemberRoleInput struct {
	HouseholdID uuid.UUID
	UserID      uuid.UUID
	Role        domain.Role
}

// Validate checks all fields and collects all errors.
func (i UpdateMemberRoleInput) Validate() error {
	var errs []domain.FieldError
	errs = validateIDs(errs, i.HouseholdID, i.UserID)
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateMemberPermissionsInput replaces a member's explicit grants. Flags,
// when set, take precedence over Grants.
type UpdateMemberPermissionsInput struct {
	HouseholdID uuid.UUID
	UserID      uuid.UUID
	Grants      []domain.Capability
	Flags       *domain.PermissionFlags
}

// Capabilities returns the requested grants in canonical form.
func (i UpdateMemberPermissionsInput) Capabilities() []domain.Capability {
	if i.Flags != nil {
		return i.Flags.Capabilities()
	}
	return domain.NormalizeCapabilities(i.Grants)
}

// Validate checks all fields and collects all errors.
func (i UpdateMemberPermissionsInput) Validate() error {
	var errs []domain.FieldError
	errs = validateIDs(errs, i.HouseholdID, i.UserID)
	if i.Flags == nil {
		for _, c := range i.Grants {
			if !c.IsValid() {
				errs = append(errs, domain.FieldError{Field: "grants", Message: "unknown capability " + string(c)})
			}
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateIDs(errs []domain.FieldError, householdID, userID uuid.UUID) []domain.FieldError {
	if householdID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "household_id", Message: "required"})
	}
	if userID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	return errs
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	return errs
}

func validateCurrency(errs []domain.FieldError, code *string) []domain.FieldError {
	if code == nil {
		return errs
	}
	if _, err := currency.ParseISO(*code); err != nil {
		return append(errs, domain.FieldError{Field: "currency", Message: "must be an ISO 4217 code"})
	}
	return errs
}

func validateTimezone(errs []domain.FieldError, tz *string) []domain.FieldError {
	if tz == nil {
		return errs
	}
	if *tz == "" {
		return append(errs, domain.FieldError{Field: "timezone", Message: "required"})
	}
	if _, err := time.LoadLocation(*tz); err != nil {
		return append(errs, domain.FieldError{Field: "timezone", Message: "unknown time zone"})
	}
	return errs
}

func validateLocale(errs []domain.FieldError, tag *string) []domain.FieldError {
	if tag == nil {
		return errs
	}
	if _, err := language.Parse(*tag); err != nil {
		return append(errs, domain.FieldError{Field: "locale", Message: "must be a BCP 47 tag"})
	}
	return errs
}

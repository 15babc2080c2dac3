package user

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

const (
	maxNameLen       = 100
	defaultListLimit = 50
	maxListLimit     = 200
)

// UpdateProfileInput holds the editable profile fields.
type UpdateProfileInput struct {
	Name string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	name := strings.TrimSpace(i.Name)
	switch {
	case name == "":
		return domain.NewValidationError("name", "required")
	case utf8.RuneCountInString(name) > maxNameLen:
		return domain.NewValidationError("name", "max 100 characters")
	}
	return nil
}

// Page is one page of users plus the total count.
type Page struct {
	Users []domain.User
	Total int
}

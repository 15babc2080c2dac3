package shopping

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

const (
	maxNameLen        = 200
	maxDescriptionLen = 1000
	maxNotesLen       = 1000
	maxUnitLen        = 30
)

// CreateListInput holds the parameters for creating a list.
type CreateListInput struct {
	HouseholdID uuid.UUID
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateListInput) Validate() error {
	var errs []domain.FieldError
	if i.HouseholdID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "household_id", Message: "required"})
	}
	errs = validateText(errs, "name", &i.Name, maxNameLen, true)
	errs = validateText(errs, "description", i.Description, maxDescriptionLen, false)
	return toError(errs)
}

// UpdateListInput holds a partial list update.
type UpdateListInput struct {
	ListID      uuid.UUID
	Name        *string
	Description *string
	IsArchived  *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateListInput) Validate() error {
	var errs []domain.FieldError
	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.IsArchived == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	errs = validateText(errs, "name", i.Name, maxNameLen, true)
	errs = validateText(errs, "description", i.Description, maxDescriptionLen, false)
	return toError(errs)
}

func (i UpdateListInput) params() domain.ShoppingListUpdateParams {
	return domain.ShoppingListUpdateParams{Name: i.Name, Description: i.Description, IsArchived: i.IsArchived}
}

// AddItemInput holds the parameters for adding an item. Category is
// inferred from the name when empty; quantity defaults to 1 and priority to
// medium.
type AddItemInput struct {
	ListID        uuid.UUID
	Name          string
	Category      string
	Quantity      *float64
	Unit          *string
	Priority      domain.ItemPriority
	EstimatedCost *float64
	Notes         *string
}

// Validate checks all fields and collects all errors.
func (i AddItemInput) Validate() error {
	var errs []domain.FieldError
	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	errs = validateText(errs, "name", &i.Name, maxNameLen, true)
	errs = validateText(errs, "category", &i.Category, maxNameLen, false)
	errs = validateText(errs, "unit", i.Unit, maxUnitLen, false)
	errs = validateText(errs, "notes", i.Notes, maxNotesLen, false)
	errs = validateQuantity(errs, i.Quantity)
	errs = validateCost(errs, i.EstimatedCost)
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be low, medium or high"})
	}
	return toError(errs)
}

// UpdateItemInput holds a partial item update.
type UpdateItemInput struct {
	ItemID        uuid.UUID
	Name          *string
	Category      *string
	Quantity      *float64
	Unit          *string
	Status        *domain.ItemStatus
	Priority      *domain.ItemPriority
	EstimatedCost *float64
	ClearCost     bool
	Notes         *string
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.isEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	errs = validateText(errs, "name", i.Name, maxNameLen, true)
	errs = validateText(errs, "category", i.Category, maxNameLen, true)
	errs = validateText(errs, "unit", i.Unit, maxUnitLen, false)
	errs = validateText(errs, "notes", i.Notes, maxNotesLen, false)
	errs = validateQuantity(errs, i.Quantity)
	errs = validateCost(errs, i.EstimatedCost)
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending, purchased, unavailable or substituted"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be low, medium or high"})
	}
	return toError(errs)
}

func (i UpdateItemInput) isEmpty() bool {
	return i.Name == nil && i.Category == nil && i.Quantity == nil && i.Unit == nil &&
		i.Status == nil && i.Priority == nil && i.EstimatedCost == nil && !i.ClearCost && i.Notes == nil
}

func (i UpdateItemInput) params(purchasedBy uuid.UUID) domain.ShoppingItemUpdateParams {
	p := domain.ShoppingItemUpdateParams{
		Name:          i.Name,
		Category:      i.Category,
		Quantity:      i.Quantity,
		Unit:          i.Unit,
		Status:        i.Status,
		Priority:      i.Priority,
		EstimatedCost: i.EstimatedCost,
		ClearCost:     i.ClearCost,
		Notes:         i.Notes,
	}
	if i.Status != nil && *i.Status == domain.ItemStatusPurchased {
		p.PurchasedBy = &purchasedBy
	}
	return p
}

func validateText(errs []domain.FieldError, field string, v *string, max int, required bool) []domain.FieldError {
	if v == nil {
		return errs
	}
	t := strings.TrimSpace(*v)
	switch {
	case required && t == "":
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(t) > max:
		errs = append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func trimPtr(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

func validateQuantity(errs []domain.FieldError, q *float64) []domain.FieldError {
	switch {
	case q == nil:
	case *q <= 0:
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be greater than 0"})
	case *q > domain.MaxQuantity:
		errs = append(errs, domain.FieldError{Field: "quantity", Message: fmt.Sprintf("must not exceed %d", domain.MaxQuantity)})
	}
	return errs
}

func validateCost(errs []domain.FieldError, c *float64) []domain.FieldError {
	switch {
	case c == nil:
	case *c < 0:
		errs = append(errs, domain.FieldError{Field: "estimated_cost", Message: "must not be negative"})
	case *c > domain.MaxEstimatedCost:
		errs = append(errs, domain.FieldError{Field: "estimated_cost", Message: fmt.Sprintf("must not exceed %d", domain.MaxEstimatedCost)})
	}
	return errs
}

func toError(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

package pantry

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

const (
	maxNameLen     = 200
	maxUnitLen     = 30
	maxLocationLen = 100
)

// AddItemInput holds the parameters for adding an inventory item.
// An empty category is inferred from the name.
type AddItemInput struct {
	HouseholdID       uuid.UUID
	Name              string
	Category          string
	Quantity          float64
	Unit              *string
	Location          *string
	ExpiresAt         *time.Time
	LowStockThreshold *float64
}

// Validate checks all fields and collects all errors.
func (i AddItemInput) Validate() error {
	var errs []domain.FieldError
	if i.HouseholdID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "household_id", Message: "required"})
	}
	errs = validateText(errs, "name", &i.Name, maxNameLen, true)
	errs = validateText(errs, "category", &i.Category, maxNameLen, false)
	errs = validateText(errs, "unit", i.Unit, maxUnitLen, false)
	errs = validateText(errs, "location", i.Location, maxLocationLen, false)
	errs = validateAmount(errs, "quantity", &i.Quantity)
	errs = validateThreshold(errs, i.LowStockThreshold)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItemInput holds a partial inventory update.
type UpdateItemInput struct {
	ItemID            uuid.UUID
	Name              *string
	Category          *string
	Quantity          *float64
	Unit              *string
	Location          *string
	ExpiresAt         *time.Time
	ClearExpiry       bool
	LowStockThreshold *float64
	ClearThreshold    bool
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Name == nil && i.Category == nil && i.Quantity == nil && i.Unit == nil && i.Location == nil &&
		i.ExpiresAt == nil && !i.ClearExpiry && i.LowStockThreshold == nil && !i.ClearThreshold {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	errs = validateText(errs, "name", i.Name, maxNameLen, true)
	errs = validateText(errs, "category", i.Category, maxNameLen, true)
	errs = validateText(errs, "unit", i.Unit, maxUnitLen, false)
	errs = validateText(errs, "location", i.Location, maxLocationLen, false)
	errs = validateAmount(errs, "quantity", i.Quantity)
	errs = validateThreshold(errs, i.LowStockThreshold)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateItemInput) params() domain.InventoryUpdateParams {
	return domain.InventoryUpdateParams{
		Name:              i.Name,
		Category:          i.Category,
		Quantity:          i.Quantity,
		Unit:              i.Unit,
		Location:          i.Location,
		ExpiresAt:         i.ExpiresAt,
		ClearExpiry:       i.ClearExpiry,
		LowStockThreshold: i.LowStockThreshold,
		ClearThreshold:    i.ClearThreshold,
	}
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

func validateThreshold(errs []domain.FieldError, v *float64) []domain.FieldError {
	return validateAmount(errs, "low_stock_threshold", v)
}

func validateAmount(errs []domain.FieldError, field string, v *float64) []domain.FieldError {
	switch {
	case v == nil:
	case *v < 0:
		errs = append(errs, domain.FieldError{Field: field, Message: "must not be negative"})
	case *v > domain.MaxQuantity:
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("must not exceed %d", domain.MaxQuantity)})
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

func emptyToNil(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Upper bounds for stored amounts. Both fit the NUMERIC item columns.
const (
	MaxQuantity      = 1_000_000
	MaxEstimatedCost = 1_000_000
)

// ShoppingList is a household-scoped list. ItemCount, CompletedItemCount and
// TotalEstimatedCost are recomputed from the items after every item mutation.
type ShoppingList struct {
	ID                 uuid.UUID
	HouseholdID        uuid.UUID
	Name               string
	Description        *string
	IsArchived         bool
	CreatedBy          uuid.UUID
	ListAggregates
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListAggregates are the denormalized fields of a shopping list.
type ListAggregates struct {
	ItemCount          int
	CompletedItemCount int
	TotalEstimatedCost float64
}

// ShoppingListItem belongs to exactly one list.
type ShoppingListItem struct {
	ID            uuid.UUID
	ListID        uuid.UUID
	Name          string
	Category      string
	Quantity      float64
	Unit          *string
	Status        ItemStatus
	Priority      ItemPriority
	EstimatedCost *float64
	Notes         *string
	AddedBy       uuid.UUID
	PurchasedBy   *uuid.UUID
	PurchasedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ShoppingListWithItems is the read model returned by GetList.
type ShoppingListWithItems struct {
	ShoppingList
	Items []ShoppingListItem
}

// ShoppingListUpdateParams holds a partial list update. nil = unchanged.
type ShoppingListUpdateParams struct {
	Name        *string
	Description *string // ptr("") clears
	IsArchived  *bool
}

// ShoppingItemUpdateParams holds a partial item update. nil = unchanged.
type ShoppingItemUpdateParams struct {
	Name          *string
	Category      *string
	Quantity      *float64
	Unit          *string // ptr("") clears
	Status        *ItemStatus
	Priority      *ItemPriority
	EstimatedCost *float64
	ClearCost     bool    // sets estimated cost to NULL, wins over EstimatedCost
	Notes         *string // ptr("") clears
	PurchasedBy   *uuid.UUID
}

// ComputeAggregates derives list aggregates from its items. A missing cost
// counts as zero.
func ComputeAggregates(items []ShoppingListItem) ListAggregates {
	agg := ListAggregates{ItemCount: len(items)}
	for _, it := range items {
		if it.Status == ItemStatusPurchased {
			agg.CompletedItemCount++
		}
		if it.EstimatedCost != nil {
			agg.TotalEstimatedCost += *it.EstimatedCost
		}
	}
	return agg
}

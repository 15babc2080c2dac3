package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// InventoryItem is something the household has on hand.
type InventoryItem struct {
	ID                uuid.UUID
	HouseholdID       uuid.UUID
	Name              string
	Category          string
	Quantity          float64
	Unit              *string
	Location          *string
	ExpiresAt         *time.Time
	LowStockThreshold *float64
	CreatedBy         uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// InventoryUpdateParams holds a partial inventory update. nil = unchanged.
type InventoryUpdateParams struct {
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

// InventoryFilter narrows ListItems. Zero values mean no filter.
type InventoryFilter struct {
	Category string
	Location string
	Search   string
	Limit    int
	Offset   int
}

// Alert flags an inventory item that needs attention.
type Alert struct {
	Kind     AlertKind
	Item     InventoryItem
	DaysLeft *int // set for expiry alerts
}

// IsLowStock reports whether quantity is at or below the threshold.
func (i *InventoryItem) IsLowStock() bool {
	return i.LowStockThreshold != nil && i.Quantity <= *i.LowStockThreshold
}

// BuildAlerts classifies items into alerts. An item can yield both a stock
// and an expiry alert. Expired items sort first, then expiring soon by days
// left, then low stock by name.
func BuildAlerts(items []InventoryItem, now time.Time, window time.Duration) []Alert {
	alerts := make([]Alert, 0)
	for _, it := range items {
		if it.ExpiresAt != nil {
			left := it.ExpiresAt.Sub(now)
			days := int(left.Hours() / 24)
			switch {
			case left < 0:
				alerts = append(alerts, Alert{Kind: AlertExpired, Item: it, DaysLeft: &days})
			case left <= window:
				alerts = append(alerts, Alert{Kind: AlertExpiringSoon, Item: it, DaysLeft: &days})
			}
		}
		if it.IsLowStock() {
			alerts = append(alerts, Alert{Kind: AlertLowStock, Item: it})
		}
	}

	rank := map[AlertKind]int{AlertExpired: 0, AlertExpiringSoon: 1, AlertLowStock: 2}
	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if rank[a.Kind] != rank[b.Kind] {
			return rank[a.Kind] < rank[b.Kind]
		}
		if a.DaysLeft != nil && b.DaysLeft != nil && *a.DaysLeft != *b.DaysLeft {
			return *a.DaysLeft < *b.DaysLeft
		}
		return a.Item.Name < b.Item.Name
	})
	return alerts
}

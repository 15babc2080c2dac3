package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUser(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role.String(), CreatedAt: u.CreatedAt}
}

type settingsDTO struct {
	Currency string `json:"currency"`
	Timezone string `json:"timezone"`
	Locale   string `json:"locale"`
}

type householdResponse struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	OwnerID     uuid.UUID   `json:"ownerId"`
	Settings    settingsDTO `json:"settings"`
	MemberCount int         `json:"memberCount"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func toHousehold(h *domain.Household) householdResponse {
	return householdResponse{
		ID:      h.ID,
		Name:    h.Name,
		OwnerID: h.OwnerID,
		Settings: settingsDTO{
			Currency: h.Settings.Currency,
			Timezone: h.Settings.Timezone,
			Locale:   h.Settings.Locale,
		},
		MemberCount: h.MemberCount,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

type membershipResponse struct {
	ID           uuid.UUID              `json:"id"`
	HouseholdID  uuid.UUID              `json:"householdId"`
	UserID       uuid.UUID              `json:"userId"`
	Role         string                 `json:"role"`
	Grants       []domain.Capability    `json:"grants"`
	Permissions  domain.PermissionFlags `json:"permissions"`
	IsActive     bool                   `json:"isActive"`
	InvitedBy    *uuid.UUID             `json:"invitedBy,omitempty"`
	JoinedAt     time.Time              `json:"joinedAt"`
	LastActiveAt *time.Time             `json:"lastActiveAt,omitempty"`
}

func toMembership(m *domain.Membership) membershipResponse {
	grants := m.Grants
	if grants == nil {
		grants = []domain.Capability{}
	}
	return membershipResponse{
		ID:           m.ID,
		HouseholdID:  m.HouseholdID,
		UserID:       m.UserID,
		Role:         m.Role.String(),
		Grants:       grants,
		Permissions:  domain.FlagsFromCapabilities(m.EffectiveCapabilities()),
		IsActive:     m.IsActive,
		InvitedBy:    m.InvitedBy,
		JoinedAt:     m.JoinedAt,
		LastActiveAt: m.LastActiveAt,
	}
}

type memberResponse struct {
	membershipResponse
	Email string `json:"email"`
	Name  string `json:"name"`
}

type invitationResponse struct {
	ID          uuid.UUID  `json:"id"`
	HouseholdID uuid.UUID  `json:"householdId"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	InvitedBy   uuid.UUID  `json:"invitedBy"`
	Status      string     `json:"status"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"`
	RespondedBy *uuid.UUID `json:"respondedBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func toInvitation(inv *domain.Invitation) invitationResponse {
	return invitationResponse{
		ID:          inv.ID,
		HouseholdID: inv.HouseholdID,
		Email:       inv.Email,
		Role:        inv.Role.String(),
		InvitedBy:   inv.InvitedBy,
		Status:      inv.Status.String(),
		ExpiresAt:   inv.ExpiresAt,
		RespondedAt: inv.RespondedAt,
		RespondedBy: inv.RespondedBy,
		CreatedAt:   inv.CreatedAt,
	}
}

type listResponse struct {
	ID                 uuid.UUID             `json:"id"`
	HouseholdID        uuid.UUID             `json:"householdId"`
	Name               string                `json:"name"`
	Description        *string               `json:"description,omitempty"`
	IsArchived         bool                  `json:"isArchived"`
	CreatedBy          uuid.UUID             `json:"createdBy"`
	ItemCount          int                   `json:"itemCount"`
	CompletedItemCount int                   `json:"completedItemCount"`
	TotalEstimatedCost float64               `json:"totalEstimatedCost"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
	Items              []shoppingItemResponse `json:"items,omitempty"`
}

func toList(l *domain.ShoppingList) listResponse {
	return listResponse{
		ID:                 l.ID,
		HouseholdID:        l.HouseholdID,
		Name:               l.Name,
		Description:        l.Description,
		IsArchived:         l.IsArchived,
		CreatedBy:          l.CreatedBy,
		ItemCount:          l.ItemCount,
		CompletedItemCount: l.CompletedItemCount,
		TotalEstimatedCost: l.TotalEstimatedCost,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
}

type shoppingItemResponse struct {
	ID            uuid.UUID  `json:"id"`
	ListID        uuid.UUID  `json:"listId"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Quantity      float64    `json:"quantity"`
	Unit          *string    `json:"unit,omitempty"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	EstimatedCost *float64   `json:"estimatedCost,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	AddedBy       uuid.UUID  `json:"addedBy"`
	PurchasedBy   *uuid.UUID `json:"purchasedBy,omitempty"`
	PurchasedAt   *time.Time `json:"purchasedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func toShoppingItem(it *domain.ShoppingListItem) shoppingItemResponse {
	return shoppingItemResponse{
		ID:            it.ID,
		ListID:        it.ListID,
		Name:          it.Name,
		Category:      it.Category,
		Quantity:      it.Quantity,
		Unit:          it.Unit,
		Status:        string(it.Status),
		Priority:      string(it.Priority),
		EstimatedCost: it.EstimatedCost,
		Notes:         it.Notes,
		AddedBy:       it.AddedBy,
		PurchasedBy:   it.PurchasedBy,
		PurchasedAt:   it.PurchasedAt,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}

func toShoppingItems(items []domain.ShoppingListItem) []shoppingItemResponse {
	out := make([]shoppingItemResponse, len(items))
	for i := range items {
		out[i] = toShoppingItem(&items[i])
	}
	return out
}

type itemMutationResponse struct {
	Item shoppingItemResponse `json:"item"`
	List listResponse         `json:"list"`
}

type inventoryItemResponse struct {
	ID                uuid.UUID  `json:"id"`
	HouseholdID       uuid.UUID  `json:"householdId"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	Quantity          float64    `json:"quantity"`
	Unit              *string    `json:"unit,omitempty"`
	Location          *string    `json:"location,omitempty"`
	ExpiresAt         *time.Time `json:"expiresAt,omitempty"`
	LowStockThreshold *float64   `json:"lowStockThreshold,omitempty"`
	IsLowStock        bool       `json:"isLowStock"`
	CreatedBy         uuid.UUID  `json:"createdBy"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func toInventoryItem(it *domain.InventoryItem) inventoryItemResponse {
	return inventoryItemResponse{
		ID:                it.ID,
		HouseholdID:       it.HouseholdID,
		Name:              it.Name,
		Category:          it.Category,
		Quantity:          it.Quantity,
		Unit:              it.Unit,
		Location:          it.Location,
		ExpiresAt:         it.ExpiresAt,
		LowStockThreshold: it.LowStockThreshold,
		IsLowStock:        it.IsLowStock(),
		CreatedBy:         it.CreatedBy,
		CreatedAt:         it.CreatedAt,
		UpdatedAt:         it.UpdatedAt,
	}
}

type alertResponse struct {
	Kind     string                `json:"kind"`
	Item     inventoryItemResponse `json:"item"`
	DaysLeft *int                  `json:"daysLeft,omitempty"`
}

type auditResponse struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"userId"`
	EntityType string         `json:"entityType"`
	EntityID   *uuid.UUID     `json:"entityId,omitempty"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toAudit(rec *domain.AuditRecord) auditResponse {
	return auditResponse{
		ID:         rec.ID,
		UserID:     rec.UserID,
		EntityType: rec.EntityType.String(),
		EntityID:   rec.EntityID,
		Action:     rec.Action.String(),
		Changes:    rec.Changes,
		CreatedAt:  rec.CreatedAt,
	}
}

package domain

// Role is a member's position within a household.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember, RoleViewer:
		return true
	}
	return false
}

// Capability is a single permitted action inside a household.
type Capability string

const (
	CapRead            Capability = "read"
	CapWrite           Capability = "write"
	CapDelete          Capability = "delete"
	CapInvite          Capability = "invite"
	CapManageMembers   Capability = "manage_members"
	CapManageSettings  Capability = "manage_settings"
	CapDeleteHousehold Capability = "delete_household"
)

// AllCapabilities lists every capability in a stable order.
var AllCapabilities = []Capability{
	CapRead, CapWrite, CapDelete, CapInvite,
	CapManageMembers, CapManageSettings, CapDeleteHousehold,
}

func (c Capability) String() string { return string(c) }

func (c Capability) IsValid() bool {
	switch c {
	case CapRead, CapWrite, CapDelete, CapInvite,
		CapManageMembers, CapManageSettings, CapDeleteHousehold:
		return true
	}
	return false
}

// InvitationStatus is the state of an invitation. Every state except
// pending is terminal.
type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "pending"
	InvitationAccepted  InvitationStatus = "accepted"
	InvitationDeclined  InvitationStatus = "declined"
	InvitationExpired   InvitationStatus = "expired"
	InvitationCancelled InvitationStatus = "cancelled"
)

func (s InvitationStatus) String() string { return string(s) }

func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationPending, InvitationAccepted, InvitationDeclined,
		InvitationExpired, InvitationCancelled:
		return true
	}
	return false
}

func (s InvitationStatus) IsTerminal() bool {
	return s.IsValid() && s != InvitationPending
}

// ItemStatus is the purchase state of a shopping list item.
type ItemStatus string

const (
	ItemStatusPending     ItemStatus = "pending"
	ItemStatusPurchased   ItemStatus = "purchased"
	ItemStatusUnavailable ItemStatus = "unavailable"
	ItemStatusSubstituted ItemStatus = "substituted"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusPending, ItemStatusPurchased, ItemStatusUnavailable, ItemStatusSubstituted:
		return true
	}
	return false
}

// ItemPriority orders shopping list items.
type ItemPriority string

const (
	PriorityLow    ItemPriority = "low"
	PriorityMedium ItemPriority = "medium"
	PriorityHigh   ItemPriority = "high"
)

func (p ItemPriority) String() string { return string(p) }

func (p ItemPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeHousehold    EntityType = "HOUSEHOLD"
	EntityTypeMembership   EntityType = "MEMBERSHIP"
	EntityTypeInvitation   EntityType = "INVITATION"
	EntityTypeShoppingList EntityType = "SHOPPING_LIST"
	EntityTypeShoppingItem EntityType = "SHOPPING_ITEM"
	EntityTypeInventory    EntityType = "INVENTORY_ITEM"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeHousehold, EntityTypeMembership, EntityTypeInvitation,
		EntityTypeShoppingList, EntityTypeShoppingItem, EntityTypeInventory:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// UserRole is the application-wide authorization level of a user,
// independent of any household role.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// AlertKind classifies a pantry alert.
type AlertKind string

const (
	AlertLowStock     AlertKind = "low_stock"
	AlertExpiringSoon AlertKind = "expiring_soon"
	AlertExpired      AlertKind = "expired"
)

func (k AlertKind) String() string { return string(k) }

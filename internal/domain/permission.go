package domain

import (
	"slices"
)

// roleCapabilities is the static permission table.
var roleCapabilities = map[Role][]Capability{
	RoleOwner:  AllCapabilities,
	RoleAdmin:  {CapRead, CapWrite, CapDelete, CapInvite, CapManageMembers, CapManageSettings},
	RoleMember: {CapRead, CapWrite, CapDelete, CapInvite},
	RoleViewer: {CapRead},
}

// RoleCapabilities returns a copy of the default capability set of a role.
// Unknown roles have no capabilities.
func RoleCapabilities(r Role) []Capability {
	return slices.Clone(roleCapabilities[r])
}

// NormalizeCapabilities drops unknown and duplicate capabilities and returns
// the rest in AllCapabilities order. The result is never nil.
func NormalizeCapabilities(caps []Capability) []Capability {
	out := make([]Capability, 0, len(caps))
	for _, c := range AllCapabilities {
		if slices.Contains(caps, c) {
			out = append(out, c)
		}
	}
	return out
}

// EffectiveCapabilities is the union of the role defaults and the explicit
// per-member grants.
func (m *Membership) EffectiveCapabilities() []Capability {
	merged := append(RoleCapabilities(m.Role), m.Grants...)
	return NormalizeCapabilities(merged)
}

// Can reports whether the membership allows the capability. Inactive
// memberships allow nothing.
func (m *Membership) Can(c Capability) bool {
	if m == nil || !m.IsActive {
		return false
	}
	return slices.Contains(roleCapabilities[m.Role], c) || slices.Contains(m.Grants, c)
}

// CanAssignRole reports whether the membership may put someone into role r.
// Owners may assign any role; everyone else only roles whose default
// capabilities they hold themselves.
func (m *Membership) CanAssignRole(r Role) bool {
	if m == nil || !m.IsActive {
		return false
	}
	if m.Role == RoleOwner {
		return true
	}
	for _, c := range roleCapabilities[r] {
		if !m.Can(c) {
			return false
		}
	}
	return true
}

// Authorize returns ErrForbidden unless the membership is active and holds
// the capability.
func Authorize(m *Membership, c Capability) error {
	if !m.Can(c) {
		return ErrForbidden
	}
	return nil
}

// PermissionFlags is the boolean-flag view of a capability set used by
// clients that expect a flags object. Storage keeps only capability tags.
//
// CanManageInventory and CanManageShoppingLists both map onto CapWrite, so
// converting flags to capabilities and back sets both when either was set.
type PermissionFlags struct {
	CanView                bool `json:"canView"`
	CanManageInventory     bool `json:"canManageInventory"`
	CanManageShoppingLists bool `json:"canManageShoppingLists"`
	CanDelete              bool `json:"canDelete"`
	CanInvite              bool `json:"canInvite"`
	CanManageMembers       bool `json:"canManageMembers"`
	CanManageSettings      bool `json:"canManageSettings"`
	CanDeleteHousehold     bool `json:"canDeleteHousehold"`
}

// Capabilities converts flags to the canonical capability set.
func (f PermissionFlags) Capabilities() []Capability {
	var caps []Capability
	if f.CanView {
		caps = append(caps, CapRead)
	}
	if f.CanManageInventory || f.CanManageShoppingLists {
		caps = append(caps, CapWrite)
	}
	if f.CanDelete {
		caps = append(caps, CapDelete)
	}
	if f.CanInvite {
		caps = append(caps, CapInvite)
	}
	if f.CanManageMembers {
		caps = append(caps, CapManageMembers)
	}
	if f.CanManageSettings {
		caps = append(caps, CapManageSettings)
	}
	if f.CanDeleteHousehold {
		caps = append(caps, CapDeleteHousehold)
	}
	return NormalizeCapabilities(caps)
}

// FlagsFromCapabilities builds the flag view of a capability set.
func FlagsFromCapabilities(caps []Capability) PermissionFlags {
	has := func(c Capability) bool { return slices.Contains(caps, c) }
	return PermissionFlags{
		CanView:                has(CapRead),
		CanManageInventory:     has(CapWrite),
		CanManageShoppingLists: has(CapWrite),
		CanDelete:              has(CapDelete),
		CanInvite:              has(CapInvite),
		CanManageMembers:       has(CapManageMembers),
		CanManageSettings:      has(CapManageSettings),
		CanDeleteHousehold:     has(CapDeleteHousehold),
	}
}

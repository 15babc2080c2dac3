package household

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

// ListMembers returns the active members of a household, owners first.
func (s *Service) ListMembers(ctx context.Context, householdID uuid.UUID) ([]domain.Member, error) {
	if _, err := s.access.Require(ctx, householdID, domain.CapRead); err != nil {
		return nil, err
	}
	members, err := s.households.ListMembers(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

// AddMember adds an existing user directly (manage_members). A soft-deleted
// membership is reactivated with the new role.
func (s *Service) AddMember(ctx context.Context, input AddMemberInput) (*domain.Membership, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	caller, err := s.access.Require(ctx, input.HouseholdID, domain.CapManageMembers)
	if err != nil {
		return nil, err
	}
	if !caller.CanAssignRole(input.Role) {
		return nil, domain.ErrForbidden
	}

	var added *domain.Membership
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.households.GetForUpdate(txCtx, input.HouseholdID); err != nil {
			return fmt.Errorf("lock household: %w", err)
		}

		current, err := s.lockedCaller(txCtx, input.HouseholdID, caller.UserID, domain.CapManageMembers)
		if err != nil {
			return err
		}
		if !current.CanAssignRole(input.Role) {
			return domain.ErrForbidden
		}

		m, err := joinHousehold(txCtx, s.households, input.HouseholdID, input.UserID, input.Role, &caller.UserID)
		if err != nil {
			return err
		}
		added = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, domain.AuditRecord{
		UserID:      caller.UserID,
		HouseholdID: &input.HouseholdID,
		EntityType:  domain.EntityTypeMembership,
		EntityID:    &added.ID,
		Action:      domain.AuditActionCreate,
		Changes: map[string]any{
			"user_id": map[string]any{"new": input.UserID.String()},
			"role":    map[string]any{"new": input.Role.String()},
		},
	})
	s.log.InfoContext(ctx, "member added",
		slog.String("household_id", input.HouseholdID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.String("role", input.Role.String()),
	)
	return added, nil
}

// joinHousehold creates or reactivates a membership and recounts members.
// The caller holds the household row lock.
func joinHousehold(ctx context.Context, repo householdRepo, householdID, userID uuid.UUID, role domain.Role, invitedBy *uuid.UUID) (*domain.Membership, error) {
	existing, err := repo.GetMembership(ctx, householdID, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get membership: %w", err)
	}

	var m *domain.Membership
	switch {
	case existing != nil && existing.IsActive:
		return nil, domain.ErrAlreadyMember
	case existing != nil:
		m, err = repo.ReactivateMembership(ctx, householdID, userID, role, invitedBy)
		if err != nil {
			return nil, fmt.Errorf("reactivate membership: %w", err)
		}
	default:
		m, err = repo.CreateMembership(ctx, &domain.Membership{
			ID:          uuid.New(),
			HouseholdID: householdID,
			UserID:      userID,
			Role:        role,
			Grants:      []domain.Capability{},
			IsActive:    true,
			InvitedBy:   invitedBy,
			JoinedAt:    time.Now().UTC(),
		})
		if err != nil {
			return nil, fmt.Errorf("create membership: %w", err)
		}
	}

	if _, err := repo.RecountMembers(ctx, householdID); err != nil {
		return nil, fmt.Errorf("recount members: %w", err)
	}
	return m, nil
}

// RemoveMember soft-deletes a membership. Owners may remove anyone, members
// holding manage_members may remove members and viewers, and anyone may
// remove themself. The last active owner can never be removed.
func (s *Service) RemoveMember(ctx context.Context, householdID, targetUserID uuid.UUID) error {
	caller, err := s.access.Require(ctx, householdID, domain.CapRead)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.households.GetForUpdate(txCtx, householdID); err != nil {
			return fmt.Errorf("lock household: %w", err)
		}

		current, err := s.lockedCaller(txCtx, householdID, caller.UserID, domain.CapRead)
		if err != nil {
			return err
		}

		target, err := s.activeMembership(txCtx, householdID, targetUserID)
		if err != nil {
			return err
		}

		if err := canRemove(current, target); err != nil {
			return err
		}

		if target.Role == domain.RoleOwner {
			owners, err := s.households.CountActiveOwners(txCtx, householdID)
			if err != nil {
				return fmt.Errorf("count owners: %w", err)
			}
			if owners <= 1 {
				return domain.ErrLastOwnerRemoval
			}
		}

		if err := s.households.DeactivateMembership(txCtx, householdID, targetUserID); err != nil {
			return fmt.Errorf("deactivate membership: %w", err)
		}
		if _, err := s.households.RecountMembers(txCtx, householdID); err != nil {
			return fmt.Errorf("recount members: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, domain.AuditRecord{
		UserID:      caller.UserID,
		HouseholdID: &householdID,
		EntityType:  domain.EntityTypeMembership,
		EntityID:    &targetUserID,
		Action:      domain.AuditActionDelete,
	})
	s.log.InfoContext(ctx, "member removed",
		slog.String("household_id", householdID.String()),
		slog.String("user_id", targetUserID.String()),
		slog.String("by", caller.UserID.String()),
	)
	return nil
}

func canRemove(caller, target *domain.Membership) error {
	switch {
	case caller.UserID == target.UserID:
		return nil
	case caller.Role == domain.RoleOwner:
		return nil
	case caller.Can(domain.CapManageMembers) &&
		(target.Role == domain.RoleMember || target.Role == domain.RoleViewer):
		return nil
	}
	return domain.ErrForbidden
}

// UpdateMemberRole changes a member's role. Only owners may do this, and the
// last active owner cannot be demoted.
func (s *Service) UpdateMemberRole(ctx context.Context, input UpdateMemberRoleInput) (*domain.Membership, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	caller, err := s.access.Require(ctx, input.HouseholdID, domain.CapRead)
	if err != nil {
		return nil, err
	}
	if caller.Role != domain.RoleOwner {
		return nil, domain.ErrForbidden
	}

	var (
		updated *domain.Membership
		oldRole domain.Role
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.households.GetForUpdate(txCtx, input.HouseholdID); err != nil {
			return fmt.Errorf("lock household: %w", err)
		}

		current, err := s.lockedCaller(txCtx, input.HouseholdID, caller.UserID, domain.CapRead)
		if err != nil {
			return err
		}
		if current.Role != domain.RoleOwner {
			return domain.ErrForbidden
		}

		target, err := s.activeMembership(txCtx, input.HouseholdID, input.UserID)
		if err != nil {
			return err
		}
		oldRole = target.Role
		if oldRole == input.Role {
			updated = target
			return nil
		}

		if oldRole == domain.RoleOwner {
			owners, err := s.households.CountActiveOwners(txCtx, input.HouseholdID)
			if err != nil {
				return fmt.Errorf("count owners: %w", err)
			}
			if owners <= 1 {
				return domain.ErrLastOwner
			}
		}

		updated, err = s.households.UpdateMembershipRole(txCtx, input.HouseholdID, input.UserID, input.Role)
		if err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if oldRole != input.Role {
		s.logAudit(ctx, domain.AuditRecord{
			UserID:      caller.UserID,
			HouseholdID: &input.HouseholdID,
			EntityType:  domain.EntityTypeMembership,
			EntityID:    &updated.ID,
			Action:      domain.AuditActionUpdate,
			Changes: map[string]any{
				"role": map[string]any{"old": oldRole.String(), "new": input.Role.String()},
			},
		})
	}
	return updated, nil
}

// UpdateMemberPermissions replaces a member's explicit grants
// (manage_members). Only owners may edit an owner's grants, and a
// non-owner cannot grant a capability it does not hold itself.
func (s *Service) UpdateMemberPermissions(ctx context.Context, input UpdateMemberPermissionsInput) (*domain.Membership, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	caller, err := s.access.Require(ctx, input.HouseholdID, domain.CapManageMembers)
	if err != nil {
		return nil, err
	}
	grants := input.Capabilities()

	if caller.Role != domain.RoleOwner {
		for _, c := range grants {
			if !caller.Can(c) {
				return nil, domain.ErrForbidden
			}
		}
	}

	var updated *domain.Membership
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		target, err := s.activeMembership(txCtx, input.HouseholdID, input.UserID)
		if err != nil {
			return err
		}
		if target.Role == domain.RoleOwner && caller.Role != domain.RoleOwner {
			return domain.ErrForbidden
		}

		updated, err = s.households.UpdateMembershipGrants(txCtx, input.HouseholdID, input.UserID, grants)
		if err != nil {
			return fmt.Errorf("update grants: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, domain.AuditRecord{
		UserID:      caller.UserID,
		HouseholdID: &input.HouseholdID,
		EntityType:  domain.EntityTypeMembership,
		EntityID:    &updated.ID,
		Action:      domain.AuditActionUpdate,
		Changes:     map[string]any{"grants": map[string]any{"new": capStrings(grants)}},
	})
	return updated, nil
}

// lockedCaller re-reads the caller's membership under the household row
// lock. A caller who lost the membership or the capability meanwhile gets
// ErrForbidden.
func (s *Service) lockedCaller(ctx context.Context, householdID, userID uuid.UUID, c domain.Capability) (*domain.Membership, error) {
	m, err := s.households.GetMembership(ctx, householdID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, fmt.Errorf("get caller membership: %w", err)
	}
	if err := domain.Authorize(m, c); err != nil {
		return nil, err
	}
	return m, nil
}

// activeMembership returns the target's membership or ErrNotFound when it
// does not exist or was removed.
func (s *Service) activeMembership(ctx context.Context, householdID, userID uuid.UUID) (*domain.Membership, error) {
	m, err := s.households.GetMembership(ctx, householdID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("membership: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	if !m.IsActive {
		return nil, fmt.Errorf("membership: %w", domain.ErrNotFound)
	}
	return m, nil
}

func capStrings(caps []domain.Capability) []string {
	out := make([]string, 0, len(caps))
	for _, c := range caps {
		out = append(out, c.String())
	}
	return out
}

package household

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
	"github.com/heartmarshall/kitchentory-backend/pkg/ctxutil"
)

// Create creates a household owned by the caller. The owner membership
// carries every capability, member_count is recounted to 1 and a default
// shopping list is seeded, all in one transaction.
func (s *Service) Create(ctx context.Context, input CreateHouseholdInput) (*domain.Household, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	settings := domain.DefaultHouseholdSettings()
	if input.Settings != nil {
		settings = normalizeSettings(*input.Settings)
		input.Settings = &settings
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var created *domain.Household
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		h, err := s.households.Create(txCtx, &domain.Household{
			ID:        uuid.New(),
			Name:      input.Name,
			OwnerID:   userID,
			Settings:  settings,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create household: %w", err)
		}

		if _, err := s.households.CreateMembership(txCtx, &domain.Membership{
			ID:          uuid.New(),
			HouseholdID: h.ID,
			UserID:      userID,
			Role:        domain.RoleOwner,
			Grants:      domain.RoleCapabilities(domain.RoleOwner),
			IsActive:    true,
			JoinedAt:    now,
		}); err != nil {
			return fmt.Errorf("create owner membership: %w", err)
		}

		if h.MemberCount, err = s.households.RecountMembers(txCtx, h.ID); err != nil {
			return fmt.Errorf("recount members: %w", err)
		}

		if _, err := s.lists.CreateList(txCtx, &domain.ShoppingList{
			ID:          uuid.New(),
			HouseholdID: h.ID,
			Name:        DefaultListName,
			CreatedBy:   userID,
			CreatedAt:   now,
		}); err != nil {
			return fmt.Errorf("seed default list: %w", err)
		}

		created = h
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, domain.AuditRecord{
		UserID:      userID,
		HouseholdID: &created.ID,
		EntityType:  domain.EntityTypeHousehold,
		EntityID:    &created.ID,
		Action:      domain.AuditActionCreate,
		Changes:     map[string]any{"name": map[string]any{"new": created.Name}},
	})

	s.log.InfoContext(ctx, "household created",
		slog.String("user_id", userID.String()),
		slog.String("household_id", created.ID.String()),
	)
	return created, nil
}

// Get returns a household the caller can read.
func (s *Service) Get(ctx context.Context, householdID uuid.UUID) (*domain.Household, error) {
	if _, err := s.access.Require(ctx, householdID, domain.CapRead); err != nil {
		return nil, err
	}
	return s.households.GetByID(ctx, householdID)
}

// ListForUser returns the households where the caller is an active member.
func (s *Service) ListForUser(ctx context.Context) ([]domain.Household, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	households, err := s.households.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list households: %w", err)
	}
	return households, nil
}

// Update changes name or settings (manage_settings).
func (s *Service) Update(ctx context.Context, input UpdateHouseholdInput) (*domain.Household, error) {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		input.Name = &name
	}
	if input.Currency != nil {
		code := strings.ToUpper(strings.TrimSpace(*input.Currency))
		input.Currency = &code
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	m, err := s.access.Require(ctx, input.HouseholdID, domain.CapManageSettings)
	if err != nil {
		return nil, err
	}

	h, err := s.households.Update(ctx, input.HouseholdID, domain.HouseholdUpdateParams{
		Name:     input.Name,
		Currency: input.Currency,
		Timezone: input.Timezone,
		Locale:   input.Locale,
	})
	if err != nil {
		return nil, fmt.Errorf("update household: %w", err)
	}

	s.logAudit(ctx, domain.AuditRecord{
		UserID:      m.UserID,
		HouseholdID: &h.ID,
		EntityType:  domain.EntityTypeHousehold,
		EntityID:    &h.ID,
		Action:      domain.AuditActionUpdate,
		Changes:     updateChanges(input),
	})
	return h, nil
}

// Delete removes a household and everything in it (delete_household).
func (s *Service) Delete(ctx context.Context, householdID uuid.UUID) error {
	m, err := s.access.Require(ctx, householdID, domain.CapDeleteHousehold)
	if err != nil {
		return err
	}

	if err := s.households.Delete(ctx, householdID); err != nil {
		return fmt.Errorf("delete household: %w", err)
	}

	s.logAudit(ctx, domain.AuditRecord{
		UserID:      m.UserID,
		HouseholdID: &householdID,
		EntityType:  domain.EntityTypeHousehold,
		EntityID:    &householdID,
		Action:      domain.AuditActionDelete,
	})
	s.log.InfoContext(ctx, "household deleted",
		slog.String("user_id", m.UserID.String()),
		slog.String("household_id", householdID.String()),
	)
	return nil
}

// Activity limits.
const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 200
)

// Activity returns the household audit trail, newest first.
func (s *Service) Activity(ctx context.Context, householdID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	if _, err := s.access.Require(ctx, householdID, domain.CapRead); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	limit = min(limit, MaxActivityLimit)
	offset = max(offset, 0)

	records, err := s.audit.ListByHousehold(ctx, householdID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return records, nil
}

func normalizeSettings(in domain.HouseholdSettings) domain.HouseholdSettings {
	def := domain.DefaultHouseholdSettings()
	out := domain.HouseholdSettings{
		Currency: strings.ToUpper(strings.TrimSpace(in.Currency)),
		Timezone: strings.TrimSpace(in.Timezone),
		Locale:   strings.TrimSpace(in.Locale),
	}
	if out.Currency == "" {
		out.Currency = def.Currency
	}
	if out.Timezone == "" {
		out.Timezone = def.Timezone
	}
	if out.Locale == "" {
		out.Locale = def.Locale
	}
	return out
}

func updateChanges(in UpdateHouseholdInput) map[string]any {
	changes := map[string]any{}
	set := func(key string, v *string) {
		if v != nil {
			changes[key] = map[string]any{"new": *v}
		}
	}
	set("name", in.Name)
	set("currency", in.Currency)
	set("timezone", in.Timezone)
	set("locale", in.Locale)
	return changes
}

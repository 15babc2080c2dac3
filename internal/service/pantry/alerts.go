package pantry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
	"github.com/heartmarshall/kitchentory-backend/internal/grocery"
)

// Alerts returns low-stock, expired and soon-expiring items (read
// capability). withinDays <= 0 selects DefaultAlertDays.
func (s *Service) Alerts(ctx context.Context, householdID uuid.UUID, withinDays int) ([]domain.Alert, error) {
	if withinDays > MaxAlertDays {
		return nil, domain.NewValidationError("within_days", fmt.Sprintf("must be at most %d", MaxAlertDays))
	}
	if withinDays <= 0 {
		withinDays = DefaultAlertDays
	}
	if _, err := s.access.Require(ctx, householdID, domain.CapRead); err != nil {
		return nil, err
	}

	items, err := s.items.AlertCandidates(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("load alert candidates: %w", err)
	}
	return domain.BuildAlerts(items, s.now(), time.Duration(withinDays)*24*time.Hour), nil
}

// RestockResult reports what AddLowStockToList did.
type RestockResult struct {
	Added   []domain.ShoppingListItem
	Skipped []string
	List    *domain.ShoppingList
}

// AddLowStockToList copies every low-stock item onto a shopping list of the
// same household (write capability). Names already pending on the list are
// skipped. The list is locked and its aggregates recomputed in the same
// transaction.
func (s *Service) AddLowStockToList(ctx context.Context, householdID, listID uuid.UUID) (*RestockResult, error) {
	if listID == uuid.Nil {
		return nil, domain.NewValidationError("list_id", "required")
	}
	m, err := s.access.Require(ctx, householdID, domain.CapWrite)
	if err != nil {
		return nil, err
	}

	l, err := s.lists.GetList(ctx, listID)
	if err != nil {
		return nil, err
	}
	if l.HouseholdID != householdID {
		return nil, fmt.Errorf("list %s: %w", listID, domain.ErrNotFound)
	}

	low, err := s.items.LowStock(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("load low stock: %w", err)
	}

	res := &RestockResult{Added: []domain.ShoppingListItem{}, Skipped: []string{}}
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.lists.GetListForUpdate(txCtx, listID); err != nil {
			return fmt.Errorf("lock list: %w", err)
		}

		existing, err := s.lists.ListItems(txCtx, listID)
		if err != nil {
			return fmt.Errorf("list items: %w", err)
		}
		pending := make(map[string]struct{}, len(existing))
		for _, it := range existing {
			if it.Status == domain.ItemStatusPending {
				pending[domain.NormalizeText(it.Name)] = struct{}{}
			}
		}

		now := s.now()
		for _, inv := range low {
			key := domain.NormalizeText(inv.Name)
			if _, ok := pending[key]; ok {
				res.Skipped = append(res.Skipped, inv.Name)
				continue
			}
			pending[key] = struct{}{}

			created, err := s.lists.CreateItem(txCtx, restockItem(inv, listID, m.UserID, now))
			if err != nil {
				return fmt.Errorf("add %q to list: %w", inv.Name, err)
			}
			res.Added = append(res.Added, *created)
		}

		res.List, err = s.lists.RecomputeAggregates(txCtx, listID)
		if err != nil {
			return fmt.Errorf("recompute aggregates: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, it := range res.Added {
		s.events.Publish(householdID, domain.Event{
			Entity: domain.EntityTypeShoppingItem,
			Action: domain.AuditActionCreate,
			ID:     it.ID,
			Extra:  map[string]any{"list_id": listID.String()},
		})
	}
	if len(res.Added) > 0 {
		s.logAudit(ctx, domain.AuditRecord{
			UserID:      m.UserID,
			HouseholdID: &householdID,
			EntityType:  domain.EntityTypeShoppingList,
			EntityID:    &listID,
			Action:      domain.AuditActionUpdate,
			Changes:     map[string]any{"restocked": len(res.Added)},
		})
	}

	s.log.InfoContext(ctx, "low stock added to list",
		slog.String("list_id", listID.String()),
		slog.Int("added", len(res.Added)),
		slog.Int("skipped", len(res.Skipped)),
	)
	return res, nil
}

// restockItem builds the list item for a low-stock inventory item. The
// quantity asked for is what brings stock back above the threshold, at
// least 1.
func restockItem(inv domain.InventoryItem, listID, addedBy uuid.UUID, now time.Time) *domain.ShoppingListItem {
	qty := 1.0
	if inv.LowStockThreshold != nil {
		if need := *inv.LowStockThreshold - inv.Quantity + 1; need > qty {
			qty = need
		}
	}
	category := inv.Category
	if category == "" {
		category = grocery.Categorize(inv.Name)
	}
	return &domain.ShoppingListItem{
		ID:        uuid.New(),
		ListID:    listID,
		Name:      inv.Name,
		Category:  category,
		Quantity:  qty,
		Unit:      inv.Unit,
		Status:    domain.ItemStatusPending,
		Priority:  domain.PriorityMedium,
		AddedBy:   addedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

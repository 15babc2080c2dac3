package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Event is a change notification fanned out to the live clients of one
// household. It names what changed; clients refetch the entity.
type Event struct {
	Entity EntityType
	Action AuditAction
	ID     uuid.UUID
	Extra  map[string]any
}

// Type is the wire name of the event, e.g. "shopping_item_created".
func (e Event) Type() string {
	var action string
	switch e.Action {
	case AuditActionCreate:
		action = "created"
	case AuditActionUpdate:
		action = "updated"
	case AuditActionDelete:
		action = "deleted"
	default:
		action = strings.ToLower(string(e.Action))
	}
	return strings.ToLower(string(e.Entity)) + "_" + action
}

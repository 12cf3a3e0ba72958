package secondary

import "context"

// Entity types recorded in the change log.
const (
	EntityGarment = "garment"
	EntityHistory = "history"
)

// LogWriter defines the interface for writing change log entries.
// Implementations extract the actor from context.
type LogWriter interface {
	// LogCreate logs a create operation for an entity.
	LogCreate(ctx context.Context, entityType string, entityID int) error

	// LogUpdate logs an update operation for an entity field.
	// fieldName, oldValue, newValue describe what changed.
	LogUpdate(ctx context.Context, entityType string, entityID int, fieldName, oldValue, newValue string) error

	// LogDelete logs a delete operation for an entity.
	LogDelete(ctx context.Context, entityType string, entityID int) error
}

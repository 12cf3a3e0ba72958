package sqlite

import (
	"context"
	"sync"

	"github.com/example/morg/internal/ctxutil"
	"github.com/example/morg/internal/ports/secondary"
)

// LogWriterAdapter implements secondary.LogWriter using ChangeLogRepository.
type LogWriterAdapter struct {
	logRepo secondary.ChangeLogRepository
	mu      sync.Mutex
}

// NewLogWriterAdapter creates a new LogWriterAdapter.
func NewLogWriterAdapter(logRepo secondary.ChangeLogRepository) *LogWriterAdapter {
	return &LogWriterAdapter{logRepo: logRepo}
}

// LogCreate logs a create operation for an entity.
func (w *LogWriterAdapter) LogCreate(ctx context.Context, entityType string, entityID int) error {
	return w.writeLog(ctx, entityType, entityID, "create", "", "", "")
}

// LogUpdate logs an update operation for an entity field.
func (w *LogWriterAdapter) LogUpdate(ctx context.Context, entityType string, entityID int, fieldName, oldValue, newValue string) error {
	return w.writeLog(ctx, entityType, entityID, "update", fieldName, oldValue, newValue)
}

// LogDelete logs a delete operation for an entity.
func (w *LogWriterAdapter) LogDelete(ctx context.Context, entityType string, entityID int) error {
	return w.writeLog(ctx, entityType, entityID, "delete", "", "", "")
}

// writeLog writes a log entry with common logic.
func (w *LogWriterAdapter) writeLog(ctx context.Context, entityType string, entityID int, action, fieldName, oldValue, newValue string) error {
	actor := ctxutil.ActorFromContext(ctx)
	if actor == "" {
		actor = ctxutil.ActorCLI
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	id, err := w.logRepo.GetNextID(ctx)
	if err != nil {
		return err
	}

	record := &secondary.ChangeLogRecord{
		ID:         id,
		Actor:      actor,
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		FieldName:  fieldName,
		OldValue:   oldValue,
		NewValue:   newValue,
	}

	return w.logRepo.Create(ctx, record)
}

// Ensure LogWriterAdapter implements the interface
var _ secondary.LogWriter = (*LogWriterAdapter)(nil)

package sqlite

import (
	"context"
	"database/sql"

	"github.com/example/morg/internal/apperr"
	"github.com/example/morg/internal/ports/secondary"
)

// ChangeLogRepository implements secondary.ChangeLogRepository with SQLite.
type ChangeLogRepository struct {
	db *sql.DB
}

// NewChangeLogRepository creates a new SQLite change log repository.
func NewChangeLogRepository(db *sql.DB) *ChangeLogRepository {
	return &ChangeLogRepository{db: db}
}

// Create appends a change log row.
func (r *ChangeLogRepository) Create(ctx context.Context, record *secondary.ChangeLogRecord) error {
	var fieldName, oldValue, newValue sql.NullString
	if record.FieldName != "" {
		fieldName = sql.NullString{String: record.FieldName, Valid: true}
	}
	if record.OldValue != "" {
		oldValue = sql.NullString{String: record.OldValue, Valid: true}
	}
	if record.NewValue != "" {
		newValue = sql.NullString{String: record.NewValue, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO change_log (id, actor, entity_type, entity_id, action, field_name, old_value, new_value)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.Actor, record.EntityType, record.EntityID, record.Action,
		fieldName, oldValue, newValue,
	)
	if err != nil {
		return apperr.Store(err, "failed to create change log entry")
	}
	return nil
}

// List retrieves change log rows newest first.
func (r *ChangeLogRepository) List(ctx context.Context, filters secondary.ChangeLogFilters) ([]*secondary.ChangeLogRecord, error) {
	query := `SELECT id, actor, entity_type, entity_id, action, field_name, old_value, new_value, created_at
		FROM change_log WHERE 1=1`
	args := []any{}

	if filters.EntityType != "" {
		query += " AND entity_type = ?"
		args = append(args, filters.EntityType)
	}
	if filters.EntityID > 0 {
		query += " AND entity_id = ?"
		args = append(args, filters.EntityID)
	}
	query += " ORDER BY id DESC"
	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Store(err, "failed to list change log")
	}
	defer rows.Close()

	var records []*secondary.ChangeLogRecord
	for rows.Next() {
		var (
			fieldName, oldValue, newValue sql.NullString
			createdAt                     sql.NullTime
		)
		record := &secondary.ChangeLogRecord{}
		err := rows.Scan(&record.ID, &record.Actor, &record.EntityType, &record.EntityID,
			&record.Action, &fieldName, &oldValue, &newValue, &createdAt)
		if err != nil {
			return nil, apperr.Store(err, "failed to scan change log entry")
		}
		record.FieldName = fieldName.String
		record.OldValue = oldValue.String
		record.NewValue = newValue.String
		record.CreatedAt = formatTime(createdAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store(err, "failed to list change log")
	}

	return records, nil
}

// GetNextID returns the next change log ID.
func (r *ChangeLogRepository) GetNextID(ctx context.Context) (int, error) {
	return nextID(ctx, r.db, "change_log")
}

// Ensure ChangeLogRepository implements the interface
var _ secondary.ChangeLogRepository = (*ChangeLogRepository)(nil)

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"iter"
	"strings"

	"github.com/example/morg/internal/apperr"
	"github.com/example/morg/internal/ports/secondary"
)

const historyColumns = "id, date, photo_reference, description, rate, created_at, updated_at"

// HistoryRepository implements secondary.HistoryRepository with SQLite.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new SQLite history repository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create persists a new history entry.
func (r *HistoryRepository) Create(ctx context.Context, h *secondary.HistoryRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO history_entries (id, date, photo_reference, description, rate) VALUES (?, ?, ?, ?, ?)",
		h.ID, h.Date, h.PhotoReference, h.Description, h.Rate,
	)
	if err != nil {
		return apperr.Store(err, "failed to create history entry %d", h.ID)
	}
	return nil
}

// GetByID retrieves a history entry by its ID.
func (r *HistoryRepository) GetByID(ctx context.Context, id int) (*secondary.HistoryRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+historyColumns+" FROM history_entries WHERE id = ?",
		id,
	)
	record, err := scanHistory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("history entry %d not found", id)
	}
	if err != nil {
		return nil, apperr.Store(err, "failed to get history entry")
	}
	return record, nil
}

// GetByDate retrieves the lowest-id entry recorded for date.
func (r *HistoryRepository) GetByDate(ctx context.Context, date string) (*secondary.HistoryRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+historyColumns+" FROM history_entries WHERE date = ? ORDER BY id ASC LIMIT 1",
		date,
	)
	record, err := scanHistory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("history entry for %s not found", date)
	}
	if err != nil {
		return nil, apperr.Store(err, "failed to get history entry")
	}
	return record, nil
}

// List retrieves every history entry in id order.
func (r *HistoryRepository) List(ctx context.Context) ([]*secondary.HistoryRecord, error) {
	var entries []*secondary.HistoryRecord
	for record, err := range r.Scan(ctx) {
		if err != nil {
			return nil, err
		}
		entries = append(entries, record)
	}
	return entries, nil
}

// Scan lazily yields every history entry in id order.
func (r *HistoryRepository) Scan(ctx context.Context) iter.Seq2[*secondary.HistoryRecord, error] {
	return func(yield func(*secondary.HistoryRecord, error) bool) {
		rows, err := r.db.QueryContext(ctx, "SELECT "+historyColumns+" FROM history_entries ORDER BY id ASC")
		if err != nil {
			yield(nil, apperr.Store(err, "failed to scan history"))
			return
		}
		defer rows.Close()

		for rows.Next() {
			record, err := scanHistory(rows)
			if err != nil {
				yield(nil, apperr.Store(err, "failed to scan history entry"))
				return
			}
			if !yield(record, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, apperr.Store(err, "failed to scan history"))
		}
	}
}

// Update applies a partial update. Only non-nil patch fields are written.
func (r *HistoryRepository) Update(ctx context.Context, id int, patch secondary.HistoryPatch) error {
	if patch.IsEmpty() {
		exists, err := r.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("history entry %d not found", id)
		}
		return nil
	}

	var sets []string
	var args []any
	add := func(column string, v *string) {
		if v != nil {
			sets = append(sets, column+" = ?")
			args = append(args, *v)
		}
	}
	add("date", patch.Date)
	add("photo_reference", patch.PhotoReference)
	add("description", patch.Description)
	add("rate", patch.Rate)
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	result, err := r.db.ExecContext(ctx,
		"UPDATE history_entries SET "+strings.Join(sets, ", ")+" WHERE id = ?",
		args...,
	)
	if err != nil {
		return apperr.Store(err, "failed to update history entry %d", id)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperr.NotFound("history entry %d not found", id)
	}

	return nil
}

// GetNextID returns the next history ID.
func (r *HistoryRepository) GetNextID(ctx context.Context) (int, error) {
	return nextID(ctx, r.db, "history_entries")
}

// Exists reports whether a history entry with this ID exists.
func (r *HistoryRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM history_entries WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, apperr.Store(err, "failed to check history entry")
	}
	return count > 0, nil
}

// Count returns the number of history entries.
func (r *HistoryRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM history_entries").Scan(&count); err != nil {
		return 0, apperr.Store(err, "failed to count history entries")
	}
	return count, nil
}

func scanHistory(s rowScanner) (*secondary.HistoryRecord, error) {
	var (
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)
	record := &secondary.HistoryRecord{}
	err := s.Scan(&record.ID, &record.Date, &record.PhotoReference, &record.Description,
		&record.Rate, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	record.CreatedAt = formatTime(createdAt)
	record.UpdatedAt = formatTime(updatedAt)
	return record, nil
}

// Ensure HistoryRepository implements the interface
var _ secondary.HistoryRepository = (*HistoryRepository)(nil)

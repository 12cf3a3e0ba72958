// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"iter"
	"strings"
	"time"

	"github.com/example/morg/internal/apperr"
	"github.com/example/morg/internal/ports/secondary"
)

const garmentColumns = "id, name, color1, color2, color3, photo_reference, description, exclusions, clear, rate, kind, created_at, updated_at"

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// GarmentRepository implements secondary.GarmentRepository with SQLite.
type GarmentRepository struct {
	db *sql.DB
}

// NewGarmentRepository creates a new SQLite garment repository.
func NewGarmentRepository(db *sql.DB) *GarmentRepository {
	return &GarmentRepository{db: db}
}

// Create persists a new garment.
func (r *GarmentRepository) Create(ctx context.Context, g *secondary.GarmentRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO garments (id, name, color1, color2, color3, photo_reference, description, exclusions, clear, rate, kind)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Name, g.Color1, g.Color2, g.Color3, g.PhotoReference,
		g.Description, g.Exclusions, g.Clear, g.Rate, g.Kind,
	)
	if err != nil {
		return apperr.Store(err, "failed to create garment %d", g.ID)
	}
	return nil
}

// GetByID retrieves a garment by its ID.
func (r *GarmentRepository) GetByID(ctx context.Context, id int) (*secondary.GarmentRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+garmentColumns+" FROM garments WHERE id = ?",
		id,
	)
	record, err := scanGarment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("garment %d not found", id)
	}
	if err != nil {
		return nil, apperr.Store(err, "failed to get garment")
	}
	return record, nil
}

// GetByName retrieves the lowest-id garment with this exact name.
func (r *GarmentRepository) GetByName(ctx context.Context, name string) (*secondary.GarmentRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+garmentColumns+" FROM garments WHERE name = ? ORDER BY id ASC LIMIT 1",
		name,
	)
	record, err := scanGarment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("garment %q not found", name)
	}
	if err != nil {
		return nil, apperr.Store(err, "failed to get garment")
	}
	return record, nil
}

// List retrieves garments matching the given filters in id order.
func (r *GarmentRepository) List(ctx context.Context, filters secondary.GarmentFilters) ([]*secondary.GarmentRecord, error) {
	query := "SELECT " + garmentColumns + " FROM garments WHERE 1=1"
	args := []any{}

	if filters.Kind != "" {
		query += " AND kind = ?"
		args = append(args, filters.Kind)
	}
	if filters.Rate != "" {
		query += " AND rate = ?"
		args = append(args, filters.Rate)
	}
	if filters.Clear != "" {
		query += " AND clear = ?"
		args = append(args, filters.Clear)
	}
	query += " ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Store(err, "failed to list garments")
	}
	defer rows.Close()

	var garments []*secondary.GarmentRecord
	for rows.Next() {
		record, err := scanGarment(rows)
		if err != nil {
			return nil, apperr.Store(err, "failed to scan garment")
		}
		garments = append(garments, record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store(err, "failed to list garments")
	}

	return garments, nil
}

// Scan lazily yields every garment in id order.
// The query runs when the sequence is ranged; breaking early closes the cursor.
func (r *GarmentRepository) Scan(ctx context.Context) iter.Seq2[*secondary.GarmentRecord, error] {
	return func(yield func(*secondary.GarmentRecord, error) bool) {
		rows, err := r.db.QueryContext(ctx, "SELECT "+garmentColumns+" FROM garments ORDER BY id ASC")
		if err != nil {
			yield(nil, apperr.Store(err, "failed to scan garments"))
			return
		}
		defer rows.Close()

		for rows.Next() {
			record, err := scanGarment(rows)
			if err != nil {
				yield(nil, apperr.Store(err, "failed to scan garment"))
				return
			}
			if !yield(record, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, apperr.Store(err, "failed to scan garments"))
		}
	}
}

// Update applies a partial update. Only non-nil patch fields are written.
func (r *GarmentRepository) Update(ctx context.Context, id int, patch secondary.GarmentPatch) error {
	if patch.IsEmpty() {
		exists, err := r.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("garment %d not found", id)
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
	add("name", patch.Name)
	add("color1", patch.Color1)
	add("color2", patch.Color2)
	add("color3", patch.Color3)
	add("photo_reference", patch.PhotoReference)
	add("description", patch.Description)
	add("exclusions", patch.Exclusions)
	add("clear", patch.Clear)
	add("rate", patch.Rate)
	add("kind", patch.Kind)
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	result, err := r.db.ExecContext(ctx,
		"UPDATE garments SET "+strings.Join(sets, ", ")+" WHERE id = ?",
		args...,
	)
	if err != nil {
		return apperr.Store(err, "failed to update garment %d", id)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperr.NotFound("garment %d not found", id)
	}

	return nil
}

// Delete removes a garment from persistence.
func (r *GarmentRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM garments WHERE id = ?", id)
	if err != nil {
		return apperr.Store(err, "failed to delete garment %d", id)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperr.NotFound("garment %d not found", id)
	}

	return nil
}

// GetNextID returns the next garment ID. The AUTOINCREMENT high-water mark
// keeps a deleted maximum from being issued again.
func (r *GarmentRepository) GetNextID(ctx context.Context) (int, error) {
	return nextID(ctx, r.db, "garments")
}

// Exists reports whether a garment with this ID exists.
func (r *GarmentRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM garments WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, apperr.Store(err, "failed to check garment")
	}
	return count > 0, nil
}

// Stats aggregates counts for the catalog summary.
func (r *GarmentRepository) Stats(ctx context.Context) (*secondary.GarmentStats, error) {
	stats := &secondary.GarmentStats{
		ByKind: map[string]int{},
		ByRate: map[string]int{},
	}

	var avg sql.NullFloat64
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN clear = 'True' THEN 1 ELSE 0 END), 0),
			AVG(CASE WHEN rate != '?' THEN CAST(rate AS REAL) END)
		FROM garments`,
	).Scan(&stats.Total, &stats.Clean, &avg)
	if err != nil {
		return nil, apperr.Store(err, "failed to compute garment stats")
	}
	stats.RatedAverage = avg.Float64

	if err := r.countBy(ctx, "kind", stats.ByKind); err != nil {
		return nil, err
	}
	if err := r.countBy(ctx, "rate", stats.ByRate); err != nil {
		return nil, err
	}

	return stats, nil
}

// countBy fills out with per-value counts of column.
func (r *GarmentRepository) countBy(ctx context.Context, column string, out map[string]int) error {
	rows, err := r.db.QueryContext(ctx, "SELECT "+column+", COUNT(*) FROM garments GROUP BY "+column)
	if err != nil {
		return apperr.Store(err, "failed to count garments by %s", column)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return apperr.Store(err, "failed to count garments by %s", column)
		}
		out[key] = n
	}
	if err := rows.Err(); err != nil {
		return apperr.Store(err, "failed to count garments by %s", column)
	}
	return nil
}

func scanGarment(s rowScanner) (*secondary.GarmentRecord, error) {
	var (
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)
	record := &secondary.GarmentRecord{}
	err := s.Scan(
		&record.ID, &record.Name, &record.Color1, &record.Color2, &record.Color3,
		&record.PhotoReference, &record.Description, &record.Exclusions,
		&record.Clear, &record.Rate, &record.Kind, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	record.CreatedAt = formatTime(createdAt)
	record.UpdatedAt = formatTime(updatedAt)
	return record, nil
}

func formatTime(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(time.RFC3339)
}

// nextID returns max(MAX(id), sqlite_sequence.seq) + 1 for an AUTOINCREMENT table.
func nextID(ctx context.Context, db *sql.DB, table string) (int, error) {
	var next int
	err := db.QueryRowContext(ctx, `
		SELECT MAX(
			COALESCE((SELECT MAX(id) FROM `+table+`), 0),
			COALESCE((SELECT seq FROM sqlite_sequence WHERE name = ?), 0)
		) + 1`,
		table,
	).Scan(&next)
	if err != nil {
		return 0, apperr.Store(err, "failed to get next %s id", table)
	}
	return next, nil
}

// Ensure GarmentRepository implements the interface
var _ secondary.GarmentRepository = (*GarmentRepository)(nil)

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/morg/internal/apperr"
	"github.com/example/morg/internal/db"
	"github.com/example/morg/internal/ports/secondary"
)

// Legacy table names and the minimum column count each must carry.
const (
	legacyGarmentTable = "ClothesData"
	legacyHistoryTable = "HistoryData"

	legacyGarmentColumns = 11 // id, name, color1, color2, color3, photo, description, exclusions, clear, rate, kind
	legacyHistoryColumns = 5  // id, date, photo, description, rate
)

// LegacySource implements secondary.LegacyCatalogSource over the original
// wardrobe database file. Columns are read by position, not name.
type LegacySource struct {
	db *sql.DB
}

// OpenLegacySource opens the legacy database at path read-only.
func OpenLegacySource(path string) (*LegacySource, error) {
	database, err := db.OpenReadOnly(path)
	if err != nil {
		return nil, apperr.Store(err, "failed to open legacy database %s", path)
	}
	return &LegacySource{db: database}, nil
}

// NewLegacySource wraps an already open legacy database.
func NewLegacySource(database *sql.DB) *LegacySource {
	return &LegacySource{db: database}
}

// ReadGarments returns every ClothesData row in id order.
func (s *LegacySource) ReadGarments(ctx context.Context) ([]*secondary.GarmentRecord, bool, error) {
	cols, found, err := s.readTable(ctx, legacyGarmentTable, legacyGarmentColumns)
	if err != nil || !found {
		return nil, found, err
	}

	records := make([]*secondary.GarmentRecord, 0, len(cols))
	for _, c := range cols {
		records = append(records, &secondary.GarmentRecord{
			ID:             c.id,
			Name:           c.text[0],
			Color1:         c.text[1],
			Color2:         c.text[2],
			Color3:         c.text[3],
			PhotoReference: c.text[4],
			Description:    c.text[5],
			Exclusions:     c.text[6],
			Clear:          c.text[7],
			Rate:           c.text[8],
			Kind:           c.text[9],
		})
	}
	return records, true, nil
}

// ReadHistory returns every HistoryData row in id order.
func (s *LegacySource) ReadHistory(ctx context.Context) ([]*secondary.HistoryRecord, bool, error) {
	cols, found, err := s.readTable(ctx, legacyHistoryTable, legacyHistoryColumns)
	if err != nil || !found {
		return nil, found, err
	}

	records := make([]*secondary.HistoryRecord, 0, len(cols))
	for _, c := range cols {
		records = append(records, &secondary.HistoryRecord{
			ID:             c.id,
			Date:           c.text[0],
			PhotoReference: c.text[1],
			Description:    c.text[2],
			Rate:           c.text[3],
		})
	}
	return records, true, nil
}

// Close releases the legacy database.
func (s *LegacySource) Close() error {
	return s.db.Close()
}

// legacyRow is one positional row: the integer id followed by text columns.
type legacyRow struct {
	id   int
	text []string
}

func (s *LegacySource) readTable(ctx context.Context, table string, minColumns int) ([]legacyRow, bool, error) {
	exists, err := db.TableExists(ctx, s.db, table)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, nil
	}

	// Table names come from the constants above, never from input.
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s ORDER BY 1", table))
	if err != nil {
		return nil, true, apperr.Store(err, "failed to read %s", table)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, true, apperr.Store(err, "failed to read %s", table)
	}
	if len(columns) < minColumns {
		return nil, true, apperr.Validation("%s has %d columns, expected at least %d", table, len(columns), minColumns)
	}

	var out []legacyRow
	for rows.Next() {
		var id sql.NullInt64
		text := make([]sql.NullString, len(columns)-1)
		dest := make([]any, 0, len(columns))
		dest = append(dest, &id)
		for i := range text {
			dest = append(dest, &text[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, true, apperr.Store(err, "failed to scan %s row", table)
		}

		row := legacyRow{id: int(id.Int64), text: make([]string, len(text))}
		for i, t := range text {
			row.text[i] = t.String
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, true, apperr.Store(err, "failed to read %s", table)
	}

	return out, true, nil
}

// Ensure LegacySource implements the interface
var _ secondary.LegacyCatalogSource = (*LegacySource)(nil)

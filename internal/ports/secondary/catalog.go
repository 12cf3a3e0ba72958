// Package secondary defines the driven ports the catalog services depend on.
package secondary

import (
	"context"
	"iter"
)

// GarmentRecord represents a garment as stored in persistence.
type GarmentRecord struct {
	ID             int
	Name           string
	Color1         string
	Color2         string
	Color3         string
	PhotoReference string
	Description    string
	Exclusions     string
	Clear          string // "True" or "False"
	Rate           string // "1".."5" or "?"
	Kind           string
	CreatedAt      string
	UpdatedAt      string
}

// GarmentPatch carries a partial garment update. Nil fields are left untouched.
type GarmentPatch struct {
	Name           *string
	Color1         *string
	Color2         *string
	Color3         *string
	PhotoReference *string
	Description    *string
	Exclusions     *string
	Clear          *string
	Rate           *string
	Kind           *string
}

// IsEmpty reports whether the patch changes nothing.
func (p GarmentPatch) IsEmpty() bool {
	return p.Name == nil && p.Color1 == nil && p.Color2 == nil && p.Color3 == nil &&
		p.PhotoReference == nil && p.Description == nil && p.Exclusions == nil &&
		p.Clear == nil && p.Rate == nil && p.Kind == nil
}

// GarmentFilters contains filter options for querying garments.
// Empty fields match everything.
type GarmentFilters struct {
	Kind  string
	Rate  string
	Clear string
}

// GarmentStats aggregates the garment table for summaries.
type GarmentStats struct {
	Total        int
	Clean        int
	ByKind       map[string]int
	ByRate       map[string]int
	RatedAverage float64 // mean of numeric rates, 0 when nothing is rated
}

// GarmentRepository defines the secondary port for garment persistence.
type GarmentRepository interface {
	// Create persists a new garment. The ID must come from GetNextID.
	Create(ctx context.Context, garment *GarmentRecord) error

	// GetByID retrieves a garment by its ID.
	GetByID(ctx context.Context, id int) (*GarmentRecord, error)

	// GetByName retrieves the lowest-id garment with exactly this name.
	GetByName(ctx context.Context, name string) (*GarmentRecord, error)

	// List retrieves garments matching the given filters in id order.
	List(ctx context.Context, filters GarmentFilters) ([]*GarmentRecord, error)

	// Scan lazily yields every garment in id order. Each range re-queries.
	Scan(ctx context.Context) iter.Seq2[*GarmentRecord, error]

	// Update applies a partial update to a garment.
	Update(ctx context.Context, id int, patch GarmentPatch) error

	// Delete removes a garment from persistence.
	Delete(ctx context.Context, id int) error

	// GetNextID returns the next never-issued garment ID.
	GetNextID(ctx context.Context) (int, error)

	// Exists reports whether a garment with this ID exists.
	Exists(ctx context.Context, id int) (bool, error)

	// Stats aggregates counts for the catalog summary.
	Stats(ctx context.Context) (*GarmentStats, error)
}

// HistoryRecord represents a recorded outfit as stored in persistence.
type HistoryRecord struct {
	ID             int
	Date           string // DD_MM_YYYY
	PhotoReference string
	Description    string
	Rate           string
	CreatedAt      string
	UpdatedAt      string
}

// HistoryPatch carries a partial history update. Nil fields are left untouched.
type HistoryPatch struct {
	Date           *string
	PhotoReference *string
	Description    *string
	Rate           *string
}

// IsEmpty reports whether the patch changes nothing.
func (p HistoryPatch) IsEmpty() bool {
	return p.Date == nil && p.PhotoReference == nil && p.Description == nil && p.Rate == nil
}

// HistoryRepository defines the secondary port for history persistence.
// History is permanent: there is no delete.
type HistoryRepository interface {
	// Create persists a new history entry. The ID must come from GetNextID.
	Create(ctx context.Context, entry *HistoryRecord) error

	// GetByID retrieves a history entry by its ID.
	GetByID(ctx context.Context, id int) (*HistoryRecord, error)

	// GetByDate retrieves the lowest-id entry recorded for date.
	GetByDate(ctx context.Context, date string) (*HistoryRecord, error)

	// List retrieves every history entry in id order.
	List(ctx context.Context) ([]*HistoryRecord, error)

	// Scan lazily yields every history entry in id order. Each range re-queries.
	Scan(ctx context.Context) iter.Seq2[*HistoryRecord, error]

	// Update applies a partial update to a history entry.
	Update(ctx context.Context, id int, patch HistoryPatch) error

	// GetNextID returns the next never-issued history ID.
	GetNextID(ctx context.Context) (int, error)

	// Exists reports whether a history entry with this ID exists.
	Exists(ctx context.Context, id int) (bool, error)

	// Count returns the number of history entries.
	Count(ctx context.Context) (int, error)
}

// ChangeLogRecord represents one audit row.
type ChangeLogRecord struct {
	ID         int
	Actor      string
	EntityType string // "garment" or "history"
	EntityID   int
	Action     string // "create", "update" or "delete"
	FieldName  string
	OldValue   string
	NewValue   string
	CreatedAt  string
}

// ChangeLogFilters contains filter options for querying the change log.
type ChangeLogFilters struct {
	EntityType string
	EntityID   int // 0 = any
	Limit      int // 0 = no limit
}

// ChangeLogRepository defines the secondary port for the append-only change log.
type ChangeLogRepository interface {
	// Create appends a change log row.
	Create(ctx context.Context, record *ChangeLogRecord) error

	// List retrieves change log rows newest first.
	List(ctx context.Context, filters ChangeLogFilters) ([]*ChangeLogRecord, error)

	// GetNextID returns the next change log ID.
	GetNextID(ctx context.Context) (int, error)
}

// LegacyCatalogSource reads rows from a database written by the original
// wardrobe application.
type LegacyCatalogSource interface {
	// ReadGarments returns every legacy garment row. found is false when the
	// legacy garment table does not exist.
	ReadGarments(ctx context.Context) (records []*GarmentRecord, found bool, err error)

	// ReadHistory returns every legacy history row. found is false when the
	// legacy history table does not exist.
	ReadHistory(ctx context.Context) (records []*HistoryRecord, found bool, err error)

	// Close releases the underlying database.
	Close() error
}

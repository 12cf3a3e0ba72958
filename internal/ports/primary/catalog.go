package primary

import "context"

// CatalogQueryService defines the primary port for read-only catalog access.
// Lookups by key return (nil, nil) when nothing matches.
type CatalogQueryService interface {
	// FindByName returns the lowest-id garment with exactly this name.
	FindByName(ctx context.Context, name string) (*Garment, error)

	// FindByDate returns the history entry recorded for date.
	FindByDate(ctx context.Context, date string) (*HistoryEntry, error)

	// GetGarment returns a garment by ID.
	GetGarment(ctx context.Context, id int) (*Garment, error)

	// ListByKind returns garment names of one kind in id order.
	ListByKind(ctx context.Context, kind string) ([]string, error)

	// ListByRate returns garment names with one rating in id order.
	ListByRate(ctx context.Context, rate string) ([]string, error)

	// ListAllNames returns every garment name in id order.
	ListAllNames(ctx context.Context) ([]string, error)

	// ListAllDates returns every history date in id order.
	ListAllDates(ctx context.Context) ([]string, error)

	// ListNameColorTriples returns each garment name with its three colours.
	ListNameColorTriples(ctx context.Context) ([]NameColors, error)

	// ListGarments returns full garment records matching filters.
	ListGarments(ctx context.Context, filters GarmentFilters) ([]*Garment, error)

	// ListHistory returns every history entry in id order.
	ListHistory(ctx context.Context) ([]*HistoryEntry, error)

	// Summary aggregates the catalog.
	Summary(ctx context.Context) (*CatalogSummary, error)

	// RecentChanges returns the newest change log entries.
	RecentChanges(ctx context.Context, limit int) ([]*ChangeLogEntry, error)
}

// CatalogMutationService defines the primary port for catalog writes.
type CatalogMutationService interface {
	// NextGarmentID returns the ID the next inserted garment will receive.
	NextGarmentID(ctx context.Context) (int, error)

	// NextHistoryID returns the ID the next inserted history entry will receive.
	NextHistoryID(ctx context.Context) (int, error)

	// InsertGarment creates a garment from a draft and returns its ID.
	InsertGarment(ctx context.Context, draft GarmentDraft) (int, error)

	// InsertHistoryEntry records an outfit and returns its ID.
	InsertHistoryEntry(ctx context.Context, draft HistoryDraft) (int, error)

	// UpdateRateByName sets the rating of the garment with this name.
	UpdateRateByName(ctx context.Context, name, rate string) error

	// UpdateRateByDate sets the rating of the set recorded on date.
	UpdateRateByDate(ctx context.Context, date, rate string) error

	// UpdateClear sets the clean flag of the garment with this name.
	UpdateClear(ctx context.Context, name, clear string) error

	// UpdateDescriptionAndRateHistory edits a set's description and rating.
	UpdateDescriptionAndRateHistory(ctx context.Context, edit HistoryEdit) error

	// UpdateIdentity renames a garment and replaces its description and exclusions.
	UpdateIdentity(ctx context.Context, edit IdentityEdit) error

	// DeleteGarment removes a garment by ID.
	DeleteGarment(ctx context.Context, id int) error
}

// Garment represents a garment at the port boundary.
type Garment struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Color1         string `json:"color1"`
	Color2         string `json:"color2"`
	Color3         string `json:"color3"`
	PhotoReference string `json:"photo_reference"`
	Description    string `json:"description"`
	Exclusions     string `json:"exclusions"`
	Clear          string `json:"clear"`
	Rate           string `json:"rate"`
	Kind           string `json:"kind"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// HistoryEntry represents a recorded outfit at the port boundary.
type HistoryEntry struct {
	ID             int    `json:"id"`
	Date           string `json:"date"`
	PhotoReference string `json:"photo_reference"`
	Description    string `json:"description"`
	Rate           string `json:"rate"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// NameColors pairs a garment name with its three colour codes.
type NameColors struct {
	Name   string `json:"name"`
	Color1 string `json:"color1"`
	Color2 string `json:"color2"`
	Color3 string `json:"color3"`
}

// GarmentDraft is the staged input for a new garment.
type GarmentDraft struct {
	Name        string `json:"name"`
	Color1      string `json:"color1"`
	Color2      string `json:"color2"`
	Color3      string `json:"color3"`
	Description string `json:"description"`
	Exclusions  string `json:"exclusions"`
	Kind        string `json:"kind"`
}

// HistoryDraft is the staged input for a new history entry.
type HistoryDraft struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Rate        string `json:"rate"`
}

// IdentityEdit renames a garment and replaces its free-text fields.
type IdentityEdit struct {
	OldName     string `json:"old_name"`
	NewName     string `json:"new_name"`
	Description string `json:"description"`
	Exclusions  string `json:"exclusions"`
}

// HistoryEdit replaces a set's description and rating.
type HistoryEdit struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Rate        string `json:"rate"`
}

// GarmentFilters contains filter options for listing garments.
type GarmentFilters struct {
	Kind  string
	Rate  string
	Clear string
}

// CatalogSummary aggregates the whole catalog.
type CatalogSummary struct {
	Garments     int            `json:"garments"`
	Clean        int            `json:"clean"`
	Dirty        int            `json:"dirty"`
	ByKind       map[string]int `json:"by_kind"`
	ByRate       map[string]int `json:"by_rate"`
	RatedAverage float64        `json:"rated_average"`
	Sets         int            `json:"sets"`
}

// ChangeLogEntry represents one change log row at the port boundary.
type ChangeLogEntry struct {
	ID         int    `json:"id"`
	Actor      string `json:"actor"`
	EntityType string `json:"entity_type"`
	EntityID   int    `json:"entity_id"`
	Action     string `json:"action"`
	FieldName  string `json:"field_name,omitempty"`
	OldValue   string `json:"old_value,omitempty"`
	NewValue   string `json:"new_value,omitempty"`
	CreatedAt  string `json:"created_at"`
}

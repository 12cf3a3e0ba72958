package primary

import "context"

// ImportService defines the primary port for importing a legacy wardrobe database.
type ImportService interface {
	// ImportLegacy copies garments and sets from the database at path,
	// keeping their IDs. Rows whose ID already exists are skipped.
	ImportLegacy(ctx context.Context, path string) (*ImportResult, error)
}

// ImportResult reports what an import did.
type ImportResult struct {
	GarmentsImported int      `json:"garments_imported"`
	GarmentsSkipped  int      `json:"garments_skipped"` // ID already present
	GarmentsInvalid  int      `json:"garments_invalid"` // failed validation
	HistoryImported  int      `json:"history_imported"`
	HistorySkipped   int      `json:"history_skipped"`
	HistoryInvalid   int      `json:"history_invalid"`
	MissingTables    []string `json:"missing_tables,omitempty"`
}

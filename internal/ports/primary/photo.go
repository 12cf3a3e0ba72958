package primary

import "context"

// PhotoService defines the primary port for checking and watching photo files.
type PhotoService interface {
	// Status reports, for every garment and set, whether its photo exists.
	Status(ctx context.Context) ([]PhotoStatus, error)

	// Watch emits a notice for every photo change until ctx is cancelled.
	Watch(ctx context.Context, notices chan<- PhotoNotice) error
}

// PhotoStatus describes one convention photo.
type PhotoStatus struct {
	EntityType string `json:"entity_type"` // "garment" or "history"
	Key        string `json:"key"`         // garment name or set date
	Ref        string `json:"ref"`
	Path       string `json:"path"`
	Present    bool   `json:"present"`
}

// PhotoNotice describes a photo change matched back to the catalog.
type PhotoNotice struct {
	Ref        string `json:"ref"`
	Op         string `json:"op"`
	EntityType string `json:"entity_type,omitempty"` // empty when the file matches nothing
	Key        string `json:"key,omitempty"`
}

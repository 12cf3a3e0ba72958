package secondary

import "context"

// Photo event operations.
const (
	PhotoCreated = "created"
	PhotoWritten = "written"
	PhotoRemoved = "removed"
)

// PhotoEvent reports a change to a convention photo file.
type PhotoEvent struct {
	Ref string // relative reference, e.g. photo/3.jpg
	Op  string
}

// PhotoStore defines the secondary port for convention photo paths.
// The catalog never reads image bytes; it only derives and checks paths.
type PhotoStore interface {
	// Resolve turns a relative photo reference into an absolute path.
	Resolve(ref string) (string, error)

	// Exists reports whether the referenced photo file is present.
	Exists(ctx context.Context, ref string) (bool, error)

	// EnsureDirs creates the photo directories if missing.
	EnsureDirs(ctx context.Context) error
}

// PhotoWatcher defines the secondary port for photo directory notifications.
type PhotoWatcher interface {
	// Watch emits events until ctx is cancelled. It closes nothing it did
	// not create; the caller owns events.
	Watch(ctx context.Context, events chan<- PhotoEvent) error
}

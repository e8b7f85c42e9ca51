package core

import "context"

// Repository defines the contract for storing and retrieving the note collection.
// The collection is always read and written as a whole.
// Adhering to this interface allows the core to be independent of the
// underlying storage mechanism.
type Repository interface {
	// Initialize ensures the underlying storage is ready (e.g., create directories, cleanup).
	Initialize(ctx context.Context) error

	// Load returns the persisted collection.
	// A missing document is not an error: it yields an empty collection.
	Load(ctx context.Context) ([]Note, error)

	// Save replaces the persisted collection with notes.
	Save(ctx context.Context, notes []Note) error
}

// Watchable defines an interface for repositories that can report changes
// made to the persisted collection by other processes.
type Watchable interface {
	// Watch emits an EventExternalChange whenever the persisted collection changes.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

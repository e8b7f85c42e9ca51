package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of change in the store.
type EventType string

const (
	// EventNotesUpdated is emitted by the Store after every mutation.
	EventNotesUpdated EventType = "notes_updated"
	// EventExternalChange is emitted by a Watchable repository when the
	// persisted collection was modified outside of the Store.
	EventExternalChange EventType = "external_change"
)

// Event represents a change in the store.
// Notes carries the full post-mutation collection for EventNotesUpdated.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Type      EventType `json:"type"`
	Notes     []Note    `json:"notes,omitempty"`
	Timestamp int64     `json:"timestamp"` // Unix timestamp
}

// NewEvent creates an Event stamped with a fresh ID and the current time.
func NewEvent(t EventType, notes []Note) Event {
	return Event{
		ID:        uuid.New(),
		Type:      t,
		Notes:     notes,
		Timestamp: time.Now().Unix(),
	}
}

func (e Event) String() string {
	return fmt.Sprintf("%s (%d notes)", e.Type, len(e.Notes))
}

// Notifier receives change events from the Store.
// Implementations must not block for long: the Store waits for Notify to
// return before it emits the next event.
type Notifier interface {
	Notify(ctx context.Context, e Event)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(ctx context.Context, e Event)

// Notify calls f(ctx, e).
func (f NotifierFunc) Notify(ctx context.Context, e Event) {
	f(ctx, e)
}

// Notifiers fans an event out to every notifier in order.
type Notifiers []Notifier

// Notify implements Notifier.
func (ns Notifiers) Notify(ctx context.Context, e Event) {
	for _, n := range ns {
		if n != nil {
			n.Notify(ctx, e)
		}
	}
}

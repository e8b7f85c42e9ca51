package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"sync"
)

// Store is the sole authority over the note collection.
// It serializes every mutation, persists the whole collection after each one
// and hands the resulting snapshot to its Notifier.
type Store struct {
	mu     sync.Mutex
	emitMu sync.Mutex

	repo     Repository
	notes    []Note
	nextID   uint64 // one past math.MaxUint32 once every ID has been handed out
	logger   *slog.Logger
	ordering Ordering
	notifier Notifier
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used to report persistence failures.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithOrdering selects the ordering applied by List and change events.
func WithOrdering(o Ordering) StoreOption {
	return func(s *Store) {
		s.ordering = o
	}
}

// WithNotifier sets the sink that receives a snapshot after every mutation.
func WithNotifier(n Notifier) StoreOption {
	return func(s *Store) {
		s.notifier = n
	}
}

// NewStore creates a Store backed by repo and loads the persisted collection.
// A collection that cannot be loaded is treated as empty.
func NewStore(ctx context.Context, repo Repository, opts ...StoreOption) (*Store, error) {
	if repo == nil {
		return nil, errors.New("store requires a repository")
	}

	s := &Store{
		repo:     repo,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		ordering: OrderPinnedFirst,
	}
	for _, opt := range opts {
		opt(s)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		s.logger.Warn("could not load notes, starting empty", "error", err)
		loaded = nil
	}
	s.notes = Clone(loaded)
	s.nextID = uint64(MaxID(s.notes)) + 1

	s.logger.Debug("store ready", "notes", len(s.notes), "next_id", s.nextID)
	return s, nil
}

// List returns a snapshot of all notes, ordered by the configured Ordering.
func (s *Store) List(ctx context.Context) []Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ordering.Apply(s.notes)
}

// Add appends a new unpinned note with the next available ID and returns it.
// The returned error reports a persistence failure; the note is kept in memory
// and the change is still notified. When no ID is left Add returns
// ErrIDsExhausted and changes nothing.
func (s *Store) Add(ctx context.Context, content string) (Note, error) {
	var added Note
	err := s.mutateChecked(ctx, "add", func(notes []Note) ([]Note, error) {
		if s.nextID > math.MaxUint32 {
			return nil, ErrIDsExhausted
		}
		added = Note{ID: uint32(s.nextID), Content: content}
		s.nextID++
		return append(notes, added), nil
	})
	return added, err
}

// Delete removes the note with the given ID. An unknown ID is not an error.
func (s *Store) Delete(ctx context.Context, id uint32) error {
	return s.mutate(ctx, "delete", func(notes []Note) []Note {
		return slices.DeleteFunc(notes, func(n Note) bool { return n.ID == id })
	})
}

// TogglePin flips the pinned flag of the note with the given ID, if any.
func (s *Store) TogglePin(ctx context.Context, id uint32) error {
	return s.mutate(ctx, "toggle_pin", func(notes []Note) []Note {
		for i := range notes {
			if notes[i].ID == id {
				notes[i].Pinned = !notes[i].Pinned
				break
			}
		}
		return notes
	})
}

// Reorder moves the notes named by ids to the front, in that order.
// Notes not mentioned keep their relative order after them.
func (s *Store) Reorder(ctx context.Context, ids []uint32) error {
	return s.mutate(ctx, "reorder", func(notes []Note) []Note {
		return reorder(notes, ids)
	})
}

// Reload re-reads the persisted collection and adopts it if it differs from
// memory. It reports whether the collection changed. Load failures leave the
// in-memory collection untouched.
func (s *Store) Reload(ctx context.Context) (bool, error) {
	s.mu.Lock()

	loaded, err := s.repo.Load(ctx)
	if err != nil {
		s.mu.Unlock()
		s.logger.Warn("reload failed, keeping current notes", "error", err)
		return false, fmt.Errorf("reload notes: %w", err)
	}
	if Equal(loaded, s.notes) {
		s.mu.Unlock()
		return false, nil
	}

	s.notes = Clone(loaded)
	if top := uint64(MaxID(s.notes)); top >= s.nextID {
		s.nextID = top + 1
	}
	s.logger.Info("notes reloaded from disk", "notes", len(s.notes))

	s.handoff(ctx, NewEvent(EventNotesUpdated, s.ordering.Apply(s.notes)))
	return true, nil
}

// Follow reloads the collection whenever the repository reports an external
// change. It blocks until ctx is cancelled or the change stream ends.
func (s *Store) Follow(ctx context.Context) error {
	w, ok := s.repo.(Watchable)
	if !ok {
		return errors.New("repository does not support watching")
	}

	events, err := w.Watch(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-events:
			if !ok {
				return nil
			}
			if e.Type != EventExternalChange {
				continue
			}
			if _, err := s.Reload(ctx); err != nil {
				s.logger.Debug("external change ignored", "error", err)
			}
		}
	}
}

// mutate applies fn under the lock, persists the result and notifies.
// Persistence and notification happen even if fn changed nothing.
func (s *Store) mutate(ctx context.Context, op string, fn func([]Note) []Note) error {
	return s.mutateChecked(ctx, op, func(notes []Note) ([]Note, error) {
		return fn(notes), nil
	})
}

// mutateChecked is mutate for changes that can be refused. A refusal leaves
// the collection untouched and skips persistence and notification.
func (s *Store) mutateChecked(ctx context.Context, op string, fn func([]Note) ([]Note, error)) error {
	s.mu.Lock()

	next, err := fn(s.notes)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", op, err)
	}
	s.notes = next

	var saveErr error
	if err := s.repo.Save(ctx, Clone(s.notes)); err != nil {
		s.logger.Error("failed to save notes", "op", op, "error", err)
		saveErr = fmt.Errorf("%s: save notes: %w", op, err)
	}

	s.handoff(ctx, NewEvent(EventNotesUpdated, s.ordering.Apply(s.notes)))
	return saveErr
}

// handoff releases the state lock and emits e. It must be called with s.mu held.
// The emission lock is taken before s.mu is released so events leave in the
// order the mutations happened, while notifiers remain free to call List.
func (s *Store) handoff(ctx context.Context, e Event) {
	s.emitMu.Lock()
	s.mu.Unlock()
	defer s.emitMu.Unlock()

	if s.notifier != nil {
		s.notifier.Notify(ctx, e)
	}
}

package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Notes          int    `json:"notes"`
	Pinned         int    `json:"pinned"`
	NextID         uint64 `json:"next_id"`
	Ordering       string `json:"ordering"`
	RepositoryType string `json:"repository_type"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	pinned := 0
	for _, n := range s.notes {
		if n.Pinned {
			pinned++
		}
	}

	repoType := "repository"
	if comp, ok := s.repo.(introspection.Component); ok {
		repoType = comp.ComponentType()
	}

	return StoreState{
		Notes:          len(s.notes),
		Pinned:         pinned,
		NextID:         s.nextID,
		Ordering:       string(s.ordering),
		RepositoryType: repoType,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

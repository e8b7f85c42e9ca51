package core

import (
	"fmt"
	"slices"
)

// Ordering controls how List and change events order the collection.
type Ordering string

const (
	// OrderPinnedFirst places pinned notes before unpinned ones, keeping the
	// stored relative order within each group.
	OrderPinnedFirst Ordering = "pinned-first"
	// OrderInsertion returns the stored order unchanged.
	OrderInsertion Ordering = "insertion"
)

// ParseOrdering converts a configuration string into an Ordering.
// The empty string maps to OrderPinnedFirst.
func ParseOrdering(s string) (Ordering, error) {
	switch Ordering(s) {
	case "", OrderPinnedFirst:
		return OrderPinnedFirst, nil
	case OrderInsertion:
		return OrderInsertion, nil
	default:
		return "", fmt.Errorf("unknown ordering %q", s)
	}
}

// Apply returns a copy of notes ordered by o. The input is not modified.
func (o Ordering) Apply(notes []Note) []Note {
	out := Clone(notes)
	if o == OrderInsertion {
		return out
	}
	slices.SortStableFunc(out, func(a, b Note) int {
		switch {
		case a.Pinned == b.Pinned:
			return 0
		case a.Pinned:
			return -1
		default:
			return 1
		}
	})
	return out
}

// reorder returns notes rearranged so that the notes named by ids come first,
// in the order given, followed by the rest in their prior relative order.
// Unknown and repeated ids are ignored.
func reorder(notes []Note, ids []uint32) []Note {
	pos := make(map[uint32]int, len(notes))
	for i, n := range notes {
		pos[n.ID] = i
	}

	placed := make([]bool, len(notes))
	out := make([]Note, 0, len(notes))
	for _, id := range ids {
		i, ok := pos[id]
		if !ok || placed[i] {
			continue
		}
		placed[i] = true
		out = append(out, notes[i])
	}
	for i, n := range notes {
		if !placed[i] {
			out = append(out, n)
		}
	}
	return out
}

package core

// Note is the central entity of the domain.
// It represents a short user-authored text identified by a store-assigned ID.
type Note struct {
	ID      uint32 `json:"id" yaml:"id"`
	Content string `json:"content" yaml:"content"`
	Pinned  bool   `json:"pinned" yaml:"pinned"`
}

// Clone returns a copy of notes that shares no backing array with the input.
// A nil or empty input yields an empty, non-nil slice.
func Clone(notes []Note) []Note {
	out := make([]Note, len(notes))
	copy(out, notes)
	return out
}

// MaxID returns the highest ID in notes, or zero if there are none.
func MaxID(notes []Note) uint32 {
	var highest uint32
	for _, n := range notes {
		if n.ID > highest {
			highest = n.ID
		}
	}
	return highest
}

// Equal reports whether a and b hold the same notes in the same order.
func Equal(a, b []Note) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

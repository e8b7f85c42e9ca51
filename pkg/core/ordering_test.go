package core

import (
	"testing"
)

func TestOrdering_Apply(t *testing.T) {
	notes := []Note{
		{ID: 1},
		{ID: 2, Pinned: true},
		{ID: 3},
		{ID: 4, Pinned: true},
	}

	got := OrderPinnedFirst.Apply(notes)
	want := []uint32{2, 4, 1, 3}
	for i, n := range got {
		if n.ID != want[i] {
			t.Fatalf("pinned-first: position %d: expected id %d, got %d", i, want[i], n.ID)
		}
	}

	got = OrderInsertion.Apply(notes)
	for i, n := range got {
		if n.ID != notes[i].ID {
			t.Fatalf("insertion: position %d: expected id %d, got %d", i, notes[i].ID, n.ID)
		}
	}

	// Apply must not touch its input
	got[0].Content = "mutated"
	if notes[0].Content != "" {
		t.Error("Apply returned a slice aliasing its input")
	}
}

func TestParseOrdering(t *testing.T) {
	cases := map[string]Ordering{
		"":             OrderPinnedFirst,
		"pinned-first": OrderPinnedFirst,
		"insertion":    OrderInsertion,
	}
	for in, want := range cases {
		got, err := ParseOrdering(in)
		if err != nil {
			t.Fatalf("ParseOrdering(%q) failed: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseOrdering(%q): expected %q, got %q", in, want, got)
		}
	}

	if _, err := ParseOrdering("alphabetical"); err == nil {
		t.Error("expected error for unknown ordering")
	}
}

func TestReorder_DoesNotLoseNotes(t *testing.T) {
	notes := []Note{{ID: 1}, {ID: 2}, {ID: 3}}
	got := reorder(notes, []uint32{2, 2, 7})
	if len(got) != len(notes) {
		t.Fatalf("expected %d notes, got %d", len(notes), len(got))
	}
	want := []uint32{2, 1, 3}
	for i, n := range got {
		if n.ID != want[i] {
			t.Errorf("position %d: expected id %d, got %d", i, want[i], n.ID)
		}
	}
}

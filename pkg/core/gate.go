package core

import (
	"context"
	"sync/atomic"
)

// Gate forwards events to the wrapped Notifier only while enabled.
// It backs the "notifications enabled" switch of the shell and belongs in
// front of desktop alerts only: the notes_updated stream to the display
// surface must not pass through it.
type Gate struct {
	next    Notifier
	enabled atomic.Bool
}

// NewGate wraps next. The gate starts in the given state.
func NewGate(next Notifier, enabled bool) *Gate {
	g := &Gate{next: next}
	g.enabled.Store(enabled)
	return g
}

// Notify implements Notifier.
func (g *Gate) Notify(ctx context.Context, e Event) {
	if !g.enabled.Load() || g.next == nil {
		return
	}
	g.next.Notify(ctx, e)
}

// Enabled reports whether events are forwarded.
func (g *Gate) Enabled() bool {
	return g.enabled.Load()
}

// SetEnabled turns forwarding on or off.
func (g *Gate) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

// Toggle flips the gate and returns the new state.
func (g *Gate) Toggle() bool {
	for {
		old := g.enabled.Load()
		if g.enabled.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

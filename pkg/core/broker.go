package core

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// DefaultEventBuffer is the per-subscriber buffer used when none is configured.
const DefaultEventBuffer = 100

// Broker fans Store events out to any number of subscribers.
// Delivery never blocks the Store: a subscriber whose buffer is full misses
// the event.
type Broker struct {
	mu      sync.Mutex
	subs    map[uint64]chan Event
	nextSub uint64
	buffer  int
	closed  bool
	dropped uint64
	logger  *slog.Logger
}

// NewBroker creates a Broker with the given per-subscriber buffer size.
// Zero or negative means DefaultEventBuffer.
func NewBroker(buffer int, logger *slog.Logger) *Broker {
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Broker{
		subs:   make(map[uint64]chan Event),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe registers a new subscriber. The returned channel is closed when
// ctx is cancelled or the broker is closed.
func (b *Broker) Subscribe(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}

	id := b.nextSub
	b.nextSub++
	ch := make(chan Event, b.buffer)
	b.subs[id] = ch

	context.AfterFunc(ctx, func() { b.unsubscribe(id) })

	b.logger.Debug("subscriber added", "subscribers", len(b.subs))
	return ch, nil
}

// Notify implements Notifier.
func (b *Broker) Notify(ctx context.Context, e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs {
		select {
		case ch <- e:
		default:
			b.dropped++
			b.logger.Warn("subscriber buffer full, event dropped", "subscriber", id, "event", e.ID)
		}
	}
}

// Subscribers returns the number of active subscribers.
func (b *Broker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Dropped returns how many deliveries were skipped because a buffer was full.
func (b *Broker) Dropped() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

// Close closes every subscriber channel. Further Subscribe calls fail with ErrClosed.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		close(ch)
		delete(b.subs, id)
	}
}

func (b *Broker) unsubscribe(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subs[id]; ok {
		close(ch)
		delete(b.subs, id)
	}
}

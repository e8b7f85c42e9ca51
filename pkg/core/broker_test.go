package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/toutdo/pkg/core"
)

func TestBroker_FanOut(t *testing.T) {
	broker := core.NewBroker(4, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := broker.Subscribe(ctx)
	require.NoError(t, err)
	b, err := broker.Subscribe(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, broker.Subscribers())

	e := core.NewEvent(core.EventNotesUpdated, []core.Note{{ID: 1}})
	broker.Notify(ctx, e)

	assert.Equal(t, e.ID, (<-a).ID)
	assert.Equal(t, e.ID, (<-b).ID)
}

// TestBroker_Decoupling ensures a slow subscriber never blocks the producer.
func TestBroker_Decoupling(t *testing.T) {
	broker := core.NewBroker(2, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := broker.Subscribe(ctx)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 5; i++ {
			broker.Notify(ctx, core.NewEvent(core.EventNotesUpdated, nil))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("producer blocked on a slow subscriber")
	}

	assert.Len(t, stream, 2)
	assert.Equal(t, uint64(3), broker.Dropped())
}

func TestBroker_UnsubscribeOnCancel(t *testing.T) {
	broker := core.NewBroker(0, nil)
	ctx, cancel := context.WithCancel(context.Background())

	stream, err := broker.Subscribe(ctx)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-stream:
		assert.False(t, ok, "expected channel to be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("subscription not closed after cancel")
	}
	assert.Eventually(t, func() bool { return broker.Subscribers() == 0 }, time.Second, 10*time.Millisecond)
}

func TestBroker_Close(t *testing.T) {
	broker := core.NewBroker(1, nil)
	stream, err := broker.Subscribe(context.Background())
	require.NoError(t, err)

	broker.Close()
	broker.Close()

	_, ok := <-stream
	assert.False(t, ok)

	_, err = broker.Subscribe(context.Background())
	assert.ErrorIs(t, err, core.ErrClosed)

	// Notify after close is harmless
	broker.Notify(context.Background(), core.NewEvent(core.EventNotesUpdated, nil))
}

package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/toutdo/pkg/core"
)

// changeSource republishes the display-facing part of a Store event stream.
type changeSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source from a Store event stream such as a
// Broker subscription. Only notes_updated events are republished; internal
// signals like external_change stay on the core side. The output closes when
// events closes or the context passed to Start ends.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &changeSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *changeSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *changeSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			var e core.Event
			select {
			case <-ctx.Done():
				return nil
			case next, ok := <-s.events:
				if !ok {
					return nil
				}
				e = next
			}
			if !displayable(e) {
				continue
			}
			select {
			case s.out <- e:
			case <-ctx.Done():
				return nil
			}
		}
	})
	return nil
}

// displayable reports whether e belongs on the display surface.
func displayable(e core.Event) bool {
	return e.Type == core.EventNotesUpdated
}

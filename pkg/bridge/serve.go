package bridge

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/aretw0/toutdo/pkg/core"
)

// maxRequestSize bounds a single request line.
const maxRequestSize = 1 << 20

// Request is one line on the input stream.
type Request struct {
	ID   json.RawMessage `json:"id,omitempty"`
	Cmd  string          `json:"cmd"`
	Args json.RawMessage `json:"args,omitempty"`
}

// Response answers the Request with the same ID.
type Response struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Result any             `json:"result"`
	Error  string          `json:"error,omitempty"`
}

// Frame is an event pushed to the display surface.
type Frame struct {
	Event   string      `json:"event"`
	Payload []core.Note `json:"payload"`
}

// Handle runs req and wraps the outcome in a Response.
func (h *Handler) Handle(ctx context.Context, req Request) Response {
	result, err := h.Invoke(ctx, req.Cmd, req.Args)
	if err != nil {
		return Response{ID: req.ID, Error: err.Error()}
	}
	return Response{ID: req.ID, Result: result}
}

// lineWriter serializes concurrent writes of JSON lines.
type lineWriter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func (w *lineWriter) write(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enc.Encode(v)
}

// Serve reads JSON-lines requests from r and writes responses to w.
// Requests are dispatched concurrently, so responses may come back out of
// order; clients correlate them by ID. Every EventNotesUpdated received on
// events is written to w as a "notes_updated" frame.
//
// Serve returns when r is exhausted and in-flight requests have been
// answered, or when writing fails. A read blocked on r is not interrupted by
// ctx cancellation.
func (h *Handler) Serve(ctx context.Context, r io.Reader, w io.Writer, events <-chan core.Event) error {
	out := &lineWriter{enc: json.NewEncoder(w)}

	g, gctx := errgroup.WithContext(ctx)
	pumpCtx, stopPump := context.WithCancel(gctx)
	defer stopPump()

	g.Go(func() error {
		return pumpEvents(pumpCtx, events, out)
	})

	g.Go(func() error {
		var inflight sync.WaitGroup
		defer stopPump()
		defer inflight.Wait()

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), maxRequestSize)

		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}

			var req Request
			if err := json.Unmarshal(line, &req); err != nil {
				if werr := out.write(Response{Error: "malformed request: " + err.Error()}); werr != nil {
					return werr
				}
				continue
			}

			inflight.Add(1)
			g.Go(func() error {
				defer inflight.Done()
				return out.write(h.Handle(gctx, req))
			})
		}
		return scanner.Err()
	})

	return g.Wait()
}

// pumpEvents forwards change events until ctx ends, then flushes whatever is
// already buffered so the last mutations are not lost.
func pumpEvents(ctx context.Context, events <-chan core.Event, out *lineWriter) error {
	if events == nil {
		<-ctx.Done()
		return nil
	}

	forward := func(e core.Event) error {
		if e.Type != core.EventNotesUpdated {
			return nil
		}
		return out.write(Frame{Event: string(e.Type), Payload: core.Clone(e.Notes)})
	}

	for {
		select {
		case <-ctx.Done():
			for {
				select {
				case e, ok := <-events:
					if !ok {
						return nil
					}
					if err := forward(e); err != nil {
						return err
					}
				default:
					return nil
				}
			}
		case e, ok := <-events:
			if !ok {
				return nil
			}
			if err := forward(e); err != nil {
				return err
			}
		}
	}
}

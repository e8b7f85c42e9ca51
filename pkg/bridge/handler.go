package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/aretw0/toutdo/pkg/core"
)

// Command names understood by the Handler.
const (
	CmdListNotes           = "list_notes"
	CmdAddNote             = "add_note"
	CmdDeleteNote          = "delete_note"
	CmdTogglePin           = "toggle_pin"
	CmdReorderNotes        = "reorder_notes"
	CmdToggleNotifications = "toggle_notifications"
	CmdGetNotifications    = "get_notifications"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidArgs    = errors.New("invalid arguments")
	ErrNoGate         = errors.New("notifications are not configurable")
)

type commandFunc func(ctx context.Context, args json.RawMessage) (any, error)

// Handler dispatches named commands to a Store.
type Handler struct {
	store    *core.Store
	gate     *core.Gate
	logger   *slog.Logger
	commands map[string]commandFunc
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithGate enables the notification toggle commands.
func WithGate(g *core.Gate) HandlerOption {
	return func(h *Handler) {
		h.gate = g
	}
}

// WithLogger sets the handler logger.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHandler creates a Handler serving store.
func NewHandler(store *core.Store, opts ...HandlerOption) *Handler {
	h := &Handler{
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}

	h.commands = map[string]commandFunc{
		CmdListNotes:           h.listNotes,
		CmdAddNote:             h.addNote,
		CmdDeleteNote:          h.deleteNote,
		CmdTogglePin:           h.togglePin,
		CmdReorderNotes:        h.reorderNotes,
		CmdToggleNotifications: h.toggleNotifications,
		CmdGetNotifications:    h.getNotifications,
	}
	return h
}

// Commands returns the sorted list of command names.
func (h *Handler) Commands() []string {
	names := make([]string, 0, len(h.commands))
	for name := range h.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the named command with JSON-encoded args.
func (h *Handler) Invoke(ctx context.Context, cmd string, args json.RawMessage) (any, error) {
	fn, ok := h.commands[cmd]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
	h.logger.Debug("invoke", "cmd", cmd)
	return fn(ctx, args)
}

type idArgs struct {
	ID *uint32 `json:"id"`
}

type contentArgs struct {
	Content *string `json:"content"`
}

// reorderArgs accepts both the camelCase key sent by JS front-ends and the
// snake_case spelling.
type reorderArgs struct {
	OrderedIDs      []uint32 `json:"orderedIds"`
	OrderedIDsSnake []uint32 `json:"ordered_ids"`
}

func decodeArgs(args json.RawMessage, v any) error {
	if len(bytes.TrimSpace(args)) == 0 {
		args = json.RawMessage(`{}`)
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	return nil
}

func (h *Handler) decodeID(args json.RawMessage) (uint32, error) {
	var a idArgs
	if err := decodeArgs(args, &a); err != nil {
		return 0, err
	}
	if a.ID == nil {
		return 0, fmt.Errorf("%w: missing required key id", ErrInvalidArgs)
	}
	return *a.ID, nil
}

// swallow drops persistence failures at the remote boundary.
// The store has already logged them.
func (h *Handler) swallow(cmd string, err error) (any, error) {
	if err != nil {
		h.logger.Debug("mutation committed in memory only", "cmd", cmd, "error", err)
	}
	return nil, nil
}

func (h *Handler) listNotes(ctx context.Context, _ json.RawMessage) (any, error) {
	return h.store.List(ctx), nil
}

func (h *Handler) addNote(ctx context.Context, args json.RawMessage) (any, error) {
	var a contentArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Content == nil {
		return nil, fmt.Errorf("%w: missing required key content", ErrInvalidArgs)
	}
	_, err := h.store.Add(ctx, *a.Content)
	return h.swallow(CmdAddNote, err)
}

func (h *Handler) deleteNote(ctx context.Context, args json.RawMessage) (any, error) {
	id, err := h.decodeID(args)
	if err != nil {
		return nil, err
	}
	return h.swallow(CmdDeleteNote, h.store.Delete(ctx, id))
}

func (h *Handler) togglePin(ctx context.Context, args json.RawMessage) (any, error) {
	id, err := h.decodeID(args)
	if err != nil {
		return nil, err
	}
	return h.swallow(CmdTogglePin, h.store.TogglePin(ctx, id))
}

func (h *Handler) reorderNotes(ctx context.Context, args json.RawMessage) (any, error) {
	var a reorderArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	ids := a.OrderedIDs
	if ids == nil {
		ids = a.OrderedIDsSnake
	}
	if ids == nil {
		return nil, fmt.Errorf("%w: missing required key orderedIds", ErrInvalidArgs)
	}
	return h.swallow(CmdReorderNotes, h.store.Reorder(ctx, ids))
}

func (h *Handler) toggleNotifications(ctx context.Context, _ json.RawMessage) (any, error) {
	if h.gate == nil {
		return nil, ErrNoGate
	}
	enabled := h.gate.Toggle()
	h.logger.Info("notifications toggled", "enabled", enabled)
	return enabled, nil
}

func (h *Handler) getNotifications(ctx context.Context, _ json.RawMessage) (any, error) {
	if h.gate == nil {
		return nil, ErrNoGate
	}
	return h.gate.Enabled(), nil
}

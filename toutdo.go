package toutdo

import (
	"context"
	"log/slog"

	"github.com/aretw0/toutdo/internal/platform"
	"github.com/aretw0/toutdo/pkg/core"
)

// --- Types ---

// Note is a public alias for the core note entity.
type Note = core.Note

// App is a public alias for the wired application.
type App = platform.App

// Ordering is a public alias for the listing order policy.
type Ordering = core.Ordering

const (
	// OrderPinnedFirst lists pinned notes before the rest.
	OrderPinnedFirst = core.OrderPinnedFirst
	// OrderInsertion lists notes in stored order.
	OrderInsertion = core.OrderInsertion
)

// --- Configuration ---

// Option defines a functional option for configuring toutdo.
type Option = platform.Option

// WithDataDir sets the directory holding notes.json.
func WithDataDir(dir string) Option {
	return platform.WithDataDir(dir)
}

// WithFileName overrides the notes document name.
func WithFileName(name string) Option {
	return platform.WithFileName(name)
}

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithOrdering selects how notes are ordered in listings and events.
func WithOrdering(ordering Ordering) Option {
	return platform.WithOrdering(ordering)
}

// WithNotifications sets whether desktop alerts start enabled.
func WithNotifications(enabled bool) Option {
	return platform.WithNotifications(enabled)
}

// WithAlertNotifier sets the desktop alert sink behind the notifications switch.
func WithAlertNotifier(n core.Notifier) Option {
	return platform.WithAlertNotifier(n)
}

// WithEventBuffer allows specifying the per-subscriber event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithReadOnly keeps the notes file untouched; mutations stay in memory.
func WithReadOnly(readOnly bool) Option {
	return platform.WithReadOnly(readOnly)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety toggles the dev-run sandbox.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// New creates the application: store, persistence, notifications and handler.
func New(ctx context.Context, opts ...Option) (*App, error) {
	return platform.New(ctx, opts...)
}

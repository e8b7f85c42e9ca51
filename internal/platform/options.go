package platform

import (
	"log/slog"

	"github.com/aretw0/toutdo/pkg/core"
)

// options holds the internal configuration for the application.
// Pointer fields distinguish "not set" from the zero value so that explicit
// options win over the settings file.
type options struct {
	dataDir      string
	fileName     string
	logger       *slog.Logger
	repository   core.Repository
	ordering     *core.Ordering
	notifyOn     *bool
	eventBuffer  *int
	readOnly     bool
	forceTemp    bool
	devSafety    bool
	errorHandler func(error)
	alerts       core.Notifier
}

// Option defines a functional option for configuring the application.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		devSafety: true,
	}
}

// WithDataDir sets the application data directory holding notes.json.
// Empty means the platform default (see DefaultDataDir).
func WithDataDir(dir string) Option {
	return func(o *options) {
		o.dataDir = dir
	}
}

// WithFileName overrides the notes document name inside the data directory.
func WithFileName(name string) Option {
	return func(o *options) {
		o.fileName = name
	}
}

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithOrdering selects how notes are ordered in listings and events.
func WithOrdering(ordering core.Ordering) Option {
	return func(o *options) {
		o.ordering = &ordering
	}
}

// WithNotifications sets whether desktop alerts start enabled.
// Subscribers of the change stream are not affected.
func WithNotifications(enabled bool) Option {
	return func(o *options) {
		o.notifyOn = &enabled
	}
}

// WithEventBuffer allows specifying the per-subscriber event buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = &size
	}
}

// WithReadOnly enables read-only mode.
// In this mode:
// 1. Mutations still apply in memory but Save returns core.ErrReadOnly.
// 2. The data directory is not created.
// 3. The dev sandbox is bypassed (the real path is read).
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithForceTemp forces the use of a temporary data directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or `go test`.
// By default (true) the data directory is re-rooted into a temporary directory
// so development runs never touch real notes.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}

// WithWatcherErrorHandler registers a callback for errors raised while
// watching the notes file for external changes.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}

// WithAlertNotifier sets the desktop alert sink guarded by the notifications
// switch. The default only logs at debug level.
func WithAlertNotifier(n core.Notifier) Option {
	return func(o *options) {
		o.alerts = n
	}
}

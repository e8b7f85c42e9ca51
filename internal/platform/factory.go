package platform

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/introspection"
	"github.com/aretw0/lifecycle"

	"github.com/aretw0/toutdo/pkg/adapters/fs"
	"github.com/aretw0/toutdo/pkg/bridge"
	"github.com/aretw0/toutdo/pkg/core"
)

// App wires the store to its persistence adapter, notification sink and
// remote command boundary.
type App struct {
	Store      *core.Store
	Broker     *core.Broker
	// Gate switches desktop alerts on and off. Broker subscribers receive
	// every notes_updated event regardless.
	Gate       *core.Gate
	Handler    *bridge.Handler
	Repository core.Repository
	DataDir    string
	Settings   Settings

	logger *slog.Logger
}

// New builds an App from the given options.
//
//	app, err := toutdo.New(toutdo.WithDataDir(dir), toutdo.WithLogger(logger))
func New(ctx context.Context, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	dataDir, err := resolveDataDir(o, logger)
	if err != nil {
		return nil, err
	}

	settings, err := LoadSettings(dataDir)
	if err != nil {
		return nil, err
	}
	if err := applyOverrides(&settings, o); err != nil {
		return nil, err
	}
	ordering, err := core.ParseOrdering(settings.Ordering)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	repo := o.repository
	if repo == nil {
		repo = fs.NewRepository(fs.Config{
			Dir:          dataDir,
			FileName:     o.fileName,
			ReadOnly:     o.readOnly,
			Logger:       logger,
			ErrorHandler: o.errorHandler,
		})
	}
	if err := repo.Initialize(ctx); err != nil {
		return nil, err
	}

	alerts := o.alerts
	if alerts == nil {
		alerts = logAlerts(logger)
	}

	broker := core.NewBroker(settings.EventBuffer, logger)
	gate := core.NewGate(alerts, settings.NotificationsEnabled())

	store, err := core.NewStore(ctx, repo,
		core.WithLogger(logger),
		core.WithOrdering(ordering),
		core.WithNotifier(core.Notifiers{broker, gate}),
	)
	if err != nil {
		return nil, err
	}

	logger.Debug("application ready",
		"data_dir", dataDir,
		"ordering", ordering,
		"notifications", gate.Enabled(),
	)

	return &App{
		Store:      store,
		Broker:     broker,
		Gate:       gate,
		Handler:    bridge.NewHandler(store, bridge.WithGate(gate), bridge.WithLogger(logger)),
		Repository: repo,
		DataDir:    dataDir,
		Settings:   settings,
		logger:     logger,
	}, nil
}

// Follow reloads the store in the background whenever the notes file is
// changed by another process, until ctx is cancelled.
func (a *App) Follow(ctx context.Context) {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		return a.Store.Follow(ctx)
	}, lifecycle.WithErrorHandler(func(err error) {
		a.logger.Error("follow stopped", "error", err)
	}))
}

// Close releases every subscriber.
func (a *App) Close() {
	a.Broker.Close()
}

// logAlerts is the default alert sink when no desktop integration is wired.
func logAlerts(logger *slog.Logger) core.Notifier {
	return core.NotifierFunc(func(ctx context.Context, e core.Event) {
		logger.Debug("notes changed", "notes", len(e.Notes), "event", e.ID)
	})
}

func resolveDataDir(o *options, logger *slog.Logger) (string, error) {
	dir := o.dataDir
	if dir == "" {
		var err error
		if dir, err = DefaultDataDir(); err != nil {
			return "", err
		}
	}

	// Read-only runs cannot damage anything, so they see the real path.
	bypassSafety := o.readOnly || !o.devSafety
	sandboxed := o.forceTemp || (IsDevRun() && !bypassSafety)
	resolved := ResolveDataDir(dir, sandboxed)

	if sandboxed && resolved != dir {
		logger.Warn("running in SAFE MODE (dev sandbox)", "original_path", dir, "resolved_path", resolved)
	} else if IsDevRun() && bypassSafety && !o.readOnly {
		logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "path", resolved)
	}
	return resolved, nil
}

func applyOverrides(s *Settings, o *options) error {
	if o.ordering != nil {
		s.Ordering = string(*o.ordering)
	}
	if o.notifyOn != nil {
		enabled := *o.notifyOn
		s.Notifications = &enabled
	}
	if o.eventBuffer != nil {
		s.EventBuffer = *o.eventBuffer
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// Status is a point-in-time snapshot of every introspectable component.
type Status struct {
	DataDir       string         `json:"data_dir"`
	Notifications bool           `json:"notifications"`
	Subscribers   int            `json:"subscribers"`
	Components    map[string]any `json:"components"`
}

// Status collects State() from the store and the repository.
func (a *App) Status() Status {
	st := Status{
		DataDir:       a.DataDir,
		Notifications: a.Gate.Enabled(),
		Subscribers:   a.Broker.Subscribers(),
		Components:    map[string]any{},
	}
	for _, c := range []any{a.Store, a.Repository} {
		comp, ok := c.(introspection.Component)
		if !ok {
			continue
		}
		if intro, ok := c.(introspection.Introspectable); ok {
			st.Components[comp.ComponentType()] = intro.State()
		}
	}
	return st
}

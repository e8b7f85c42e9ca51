package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/toutdo/internal/platform"
	"github.com/aretw0/toutdo/pkg/adapters/fs"
	"github.com/aretw0/toutdo/pkg/core"
)

func TestNew_PersistsAcrossRestarts(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	app, err := platform.New(ctx, platform.WithDataDir(dir))
	require.NoError(t, err)
	assert.Equal(t, dir, app.DataDir)

	_, err = app.Store.Add(ctx, "buy milk")
	require.NoError(t, err)
	_, err = app.Store.Add(ctx, "call mom")
	require.NoError(t, err)
	require.NoError(t, app.Store.Delete(ctx, 2))
	app.Close()

	assert.FileExists(t, filepath.Join(dir, "notes.json"))

	reopened, err := platform.New(ctx, platform.WithDataDir(dir))
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, []core.Note{{ID: 1, Content: "buy milk"}}, reopened.Store.List(ctx))
	n, err := reopened.Store.Add(ctx, "next")
	require.NoError(t, err)
	assert.Equal(t, uint32(2), n.ID)
}

func TestNew_CorruptFileStartsEmpty(t *testing.T) {
	cases := map[string]string{
		"Garbage":        "{{{",
		"Missing Fields": `[{"id":3}]`,
		"Trailing Data":  `[{"id":1,"content":"a","pinned":false}] garbage`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte(content), 0644))

			app, err := platform.New(context.Background(), platform.WithDataDir(dir))
			require.NoError(t, err)
			defer app.Close()

			assert.Empty(t, app.Store.List(context.Background()))
			n, err := app.Store.Add(context.Background(), "fresh")
			require.NoError(t, err)
			assert.Equal(t, uint32(1), n.ID)
		})
	}
}

func TestNew_SettingsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, platform.SettingsFileName),
		[]byte("ordering: insertion\nnotifications: false\n"), 0644))

	app, err := platform.New(context.Background(), platform.WithDataDir(dir))
	require.NoError(t, err)
	assert.Equal(t, "insertion", app.Settings.Ordering)
	assert.False(t, app.Gate.Enabled())
	app.Close()

	app, err = platform.New(context.Background(),
		platform.WithDataDir(dir),
		platform.WithNotifications(true),
		platform.WithOrdering(core.OrderPinnedFirst),
	)
	require.NoError(t, err)
	defer app.Close()
	assert.True(t, app.Gate.Enabled())
	assert.Equal(t, "pinned-first", app.Settings.Ordering)
}

func TestNew_InvalidOverride(t *testing.T) {
	_, err := platform.New(context.Background(),
		platform.WithDataDir(t.TempDir()),
		platform.WithEventBuffer(-5),
	)
	assert.ErrorIs(t, err, platform.ErrInvalidSettings)
}

type alertRecorder struct {
	mu     sync.Mutex
	events []core.Event
}

func (r *alertRecorder) Notify(ctx context.Context, e core.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *alertRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestNew_EventsReachSubscribers(t *testing.T) {
	alerts := &alertRecorder{}
	app, err := platform.New(context.Background(),
		platform.WithDataDir(t.TempDir()),
		platform.WithAlertNotifier(alerts),
	)
	require.NoError(t, err)
	defer app.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream, err := app.Broker.Subscribe(ctx)
	require.NoError(t, err)

	_, err = app.Store.Add(ctx, "hello")
	require.NoError(t, err)

	select {
	case e := <-stream:
		assert.Equal(t, core.EventNotesUpdated, e.Type)
		assert.Len(t, e.Notes, 1)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
	assert.Equal(t, 1, alerts.count())

	// Switching notifications off silences alerts, never the change stream
	app.Gate.SetEnabled(false)
	_, err = app.Store.Add(ctx, "quiet")
	require.NoError(t, err)
	select {
	case e := <-stream:
		assert.Len(t, e.Notes, 2)
	case <-time.After(time.Second):
		t.Fatal("change stream silenced by notifications switch")
	}
	assert.Equal(t, 1, alerts.count())
}

func TestNew_ReadOnlyKeepsDiskUntouched(t *testing.T) {
	dir := t.TempDir()
	seed := `[{"id":3,"content":"seed","pinned":false}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte(seed), 0644))

	app, err := platform.New(context.Background(), platform.WithDataDir(dir), platform.WithReadOnly(true))
	require.NoError(t, err)
	defer app.Close()

	_, err = app.Store.Add(context.Background(), "memory only")
	assert.ErrorIs(t, err, core.ErrReadOnly)

	data, err := os.ReadFile(filepath.Join(dir, "notes.json"))
	require.NoError(t, err)
	assert.JSONEq(t, seed, string(data))
}

func TestApp_FollowPicksUpExternalEdits(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping watcher test in short mode")
	}

	dir := t.TempDir()
	app, err := platform.New(context.Background(), platform.WithDataDir(dir))
	require.NoError(t, err)
	defer app.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.Follow(ctx)

	// Let the watcher attach before editing
	repo, ok := app.Repository.(*fs.Repository)
	require.True(t, ok)
	require.Eventually(t, func() bool {
		return repo.State().(fs.RepositoryState).WatcherActive
	}, 2*time.Second, 10*time.Millisecond)

	external := `[{"id":41,"content":"edited elsewhere","pinned":true}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte(external), 0644))

	require.Eventually(t, func() bool {
		return len(app.Store.List(ctx)) == 1
	}, 3*time.Second, 20*time.Millisecond)

	n, err := app.Store.Add(ctx, "local")
	require.NoError(t, err)
	assert.Equal(t, uint32(42), n.ID)
}

func TestApp_Status(t *testing.T) {
	dir := t.TempDir()
	app, err := platform.New(context.Background(), platform.WithDataDir(dir), platform.WithNotifications(false))
	require.NoError(t, err)
	defer app.Close()

	ctx := context.Background()
	_, err = app.Store.Add(ctx, "one")
	require.NoError(t, err)
	require.NoError(t, app.Store.TogglePin(ctx, 1))

	st := app.Status()
	assert.Equal(t, dir, st.DataDir)
	assert.False(t, st.Notifications)

	store, ok := st.Components["store"].(core.StoreState)
	require.True(t, ok)
	assert.Equal(t, 1, store.Notes)
	assert.Equal(t, 1, store.Pinned)
	assert.Equal(t, uint64(2), store.NextID)
	assert.Equal(t, "repository", store.RepositoryType)

	repo, ok := st.Components["repository"].(fs.RepositoryState)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "notes.json"), repo.Path)
	assert.NotNil(t, repo.LastSave)
}

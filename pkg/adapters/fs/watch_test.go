package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/toutdo/pkg/adapters/fs"
	"github.com/aretw0/toutdo/pkg/core"
)

func TestRepository_WatchReportsDocumentChanges(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping watcher test in short mode")
	}

	repo := newRepo(t, fs.Config{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx)
	require.NoError(t, err)

	// Unrelated files in the data directory are ignored
	dir := filepath.Dir(repo.Path)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte("x: 1"), 0644))

	select {
	case e := <-events:
		t.Fatalf("unexpected event for unrelated file: %v", e)
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, repo.Save(context.Background(), []core.Note{{ID: 1, Content: "external"}}))

	select {
	case e := <-events:
		assert.Equal(t, core.EventExternalChange, e.Type)
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for change event")
	}

	assert.Eventually(t, func() bool {
		state := repo.State().(fs.RepositoryState)
		return state.WatcherActive
	}, time.Second, 10*time.Millisecond)

	cancel()

	// Channel closes after shutdown
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, 6*time.Second, 20*time.Millisecond)
}

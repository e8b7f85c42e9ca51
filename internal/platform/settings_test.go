package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Missing(t *testing.T) {
	s, err := LoadSettings(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "pinned-first", s.Ordering)
	assert.True(t, s.NotificationsEnabled())
	assert.Equal(t, 100, s.EventBuffer)
	assert.False(t, s.Watch)
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte("ordering: insertion\nwatch: true\n"), 0644))

	s, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, "insertion", s.Ordering)
	assert.True(t, s.Watch)
	assert.True(t, s.NotificationsEnabled())
	assert.Equal(t, 100, s.EventBuffer)
}

func TestLoadSettings_Invalid(t *testing.T) {
	cases := map[string]string{
		"Unknown Ordering": "ordering: alphabetical\n",
		"Negative Buffer":  "event_buffer: -1\n",
		"Unknown Key":      "colour: blue\n",
		"Not YAML":         "ordering: [unclosed\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte(content), 0644))

			_, err := LoadSettings(dir)
			assert.True(t, errors.Is(err, ErrInvalidSettings), "got %v", err)
		})
	}
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh")
	off := false
	in := Settings{Ordering: "insertion", Notifications: &off, EventBuffer: 5}

	require.NoError(t, SaveSettings(dir, in))

	out, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, "insertion", out.Ordering)
	assert.False(t, out.NotificationsEnabled())
	assert.Equal(t, 5, out.EventBuffer)
}

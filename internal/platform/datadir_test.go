package platform

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultDataDir(t *testing.T) {
	t.Run("Env Override", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/srv/notes")
		got, err := DefaultDataDir()
		if err != nil {
			t.Fatal(err)
		}
		if got != "/srv/notes" {
			t.Errorf("expected env override, got %q", got)
		}
	})

	t.Run("XDG", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		t.Setenv("XDG_DATA_HOME", "/xdg/data")
		got, err := DefaultDataDir()
		if err != nil {
			t.Fatal(err)
		}
		if got != filepath.Join("/xdg/data", AppName) {
			t.Errorf("unexpected XDG path %q", got)
		}
	})

	t.Run("Home Fallback", func(t *testing.T) {
		if runtime.GOOS != "linux" {
			t.Skip("linux layout only")
		}
		t.Setenv(EnvDataDir, "")
		t.Setenv("XDG_DATA_HOME", "")
		t.Setenv("HOME", "/home/gopher")
		got, err := DefaultDataDir()
		if err != nil {
			t.Fatal(err)
		}
		if got != "/home/gopher/.local/share/toutdo" {
			t.Errorf("unexpected fallback path %q", got)
		}
	})
}

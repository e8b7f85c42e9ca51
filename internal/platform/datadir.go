package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// AppName names the per-user data directory.
	AppName = "toutdo"
	// EnvDataDir overrides the data directory.
	EnvDataDir = "TOUTDO_DATA_DIR"
)

// DefaultDataDir returns the per-user application data directory.
//
// Resolution order:
// 1. $TOUTDO_DATA_DIR
// 2. $XDG_DATA_HOME/toutdo
// 3. ~/.local/share/toutdo on Linux and BSDs
// 4. os.UserConfigDir()/toutdo elsewhere (Application Support, %AppData%)
func DefaultDataDir() (string, error) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir, nil
	}

	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}

	switch runtime.GOOS {
	case "darwin", "windows", "ios", "android", "plan9":
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not determine data directory: %w", err)
		}
		return filepath.Join(base, AppName), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		return filepath.Join(home, ".local", "share", AppName), nil
	}
}

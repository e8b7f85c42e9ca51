package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// sandboxDirName is the directory under os.TempDir() used by dev runs.
const sandboxDirName = "toutdo-dev"

// IsDevRun checks if the current process is running via `go run` or `go test`.
// Both build their binaries in temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	if isWithin(os.TempDir(), exe) {
		return true
	}

	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}

// ResolveDataDir determines the directory actually used for the notes file.
// When sandboxed is true, paths outside the system temp directory are
// re-rooted under os.TempDir()/toutdo-dev/<base name>.
func ResolveDataDir(userPath string, sandboxed bool) string {
	if !sandboxed {
		if userPath == "" {
			return "."
		}
		return userPath
	}

	// Already under the temp root (e.g. t.TempDir()): trusted as is.
	clean := filepath.Clean(userPath)
	if userPath != "" && isWithin(os.TempDir(), clean) {
		return clean
	}

	sub := filepath.Base(clean)
	if userPath == "" || sub == "." || sub == string(os.PathSeparator) {
		sub = "default"
	}
	return filepath.Join(os.TempDir(), sandboxDirName, sub)
}

func isWithin(root, path string) bool {
	rel, err := filepath.Rel(strings.ToLower(filepath.Clean(root)), strings.ToLower(filepath.Clean(path)))
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator))
}

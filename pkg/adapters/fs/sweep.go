package fs

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// tempPattern matches the scratch files produced by writeFileAtomic.
const tempPattern = TempFilePrefix + "*"

// isTempFile reports whether name (a base name) is an atomic-write scratch file.
func isTempFile(name string) bool {
	ok, err := doublestar.Match(tempPattern, name)
	return err == nil && ok
}

// sweepTempFiles removes scratch files left in dir by interrupted writes and
// returns the names it removed.
func sweepTempFiles(dir string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), tempPattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}

	removed := make([]string, 0, len(matches))
	for _, name := range matches {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
			return removed, err
		}
		removed = append(removed, name)
	}
	return removed, nil
}

// Package fileutil provides path normalization and file discovery helpers
// shared by the planner, executor, and history log.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Resolve normalizes a path to its cleaned absolute form. Path identity
// throughout the engine is resolved-path equality, not string equality.
// Resolve never fails: a path that cannot be made absolute is returned
// cleaned as-is.
func Resolve(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return filepath.Clean(abs)
}

// SamePath reports whether two paths resolve to the same location
func SamePath(a, b string) bool {
	return Resolve(a) == Resolve(b)
}

// Exists reports whether a path exists
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// ListFiles returns the absolute paths of the regular files directly inside
// dir, sorted by name. Subdirectories are not descended into.
func ListFiles(dir string) ([]string, error) {
	absDir := Resolve(dir)
	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, filepath.Join(absDir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

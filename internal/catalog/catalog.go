// Package catalog supplies candidate file names from a launch directory.
//
// The association service never reads the filesystem; callers list their
// own directory here and send the names along with each request.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	apperrors "github.com/gcbaptista/smart-selector/internal/errors"
)

// List returns the names of the regular files directly inside dir, sorted by
// name. Symlinks count when they resolve to a regular file. Hidden files and
// names matching any exclude glob (e.g. "*.tmp", "~$*") are skipped.
func List(dir string, exclude ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewDirectoryNotFoundError(dir)
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") || !isRegular(dir, entry) {
			continue
		}
		excluded, err := matchesAny(exclude, entry.Name())
		if err != nil {
			return nil, err
		}
		if !excluded {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

func isRegular(dir string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}

func matchesAny(patterns []string, name string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// Dir is a CandidateLister that lists a directory on every call.
type Dir struct {
	Path    string
	Exclude []string
}

// Files implements services.CandidateLister.
func (d Dir) Files() ([]string, error) {
	return List(d.Path, d.Exclude...)
}

// EnsureDir creates dir if it does not exist yet.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

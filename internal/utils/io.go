// Package utils provides internal utility functions used throughout the logger package.
//
// It currently holds the structural validation applied to log file paths before the
// file sink touches the file system.
package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hyp3rd/ewrap"
)

// ErrInvalidPath is returned for paths that cannot name a log file.
var ErrInvalidPath = ewrap.New("invalid log file path")

// ValidatePath checks that path can name a regular file and returns its absolute,
// cleaned form.
//
// The following are rejected:
// - blank paths
// - paths containing NUL or other control characters
// - paths ending in a separator, or naming "." or ".."
// - paths that resolve to an existing directory
func ValidatePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ewrap.Wrap(ErrInvalidPath, "path cannot be empty")
	}

	if strings.ContainsFunc(path, func(r rune) bool { return r < ' ' || r == 0x7f }) {
		return "", ewrap.Wrap(ErrInvalidPath, "path contains control characters").
			WithMetadata("path", path)
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return "", ewrap.Wrap(ErrInvalidPath, "path names a directory").
			WithMetadata("path", path)
	}

	base := filepath.Base(filepath.Clean(path))
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", ewrap.Wrap(ErrInvalidPath, "path has no file name").
			WithMetadata("path", path)
	}

	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", ewrap.Wrap(err, "resolving absolute path").
			WithMetadata("path", path)
	}

	if info, statErr := os.Stat(absolute); statErr == nil && info.IsDir() {
		return "", ewrap.Wrap(ErrInvalidPath, "path names a directory").
			WithMetadata("path", absolute)
	}

	return absolute, nil
}

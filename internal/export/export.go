// Package export writes summaries chosen by the user to disk.
package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtension is appended to save paths that have none.
const DefaultExtension = ".txt"

// ErrNothingToSave is returned when the summary is blank.
var ErrNothingToSave = errors.New("nothing to save")

// WithDefaultExtension returns path with DefaultExtension appended when it
// has no extension of its own.
func WithDefaultExtension(path string) string {
	if filepath.Ext(path) == "" {
		return path + DefaultExtension
	}
	return path
}

// SaveSummary writes the trimmed summary to path and returns the path it
// actually wrote. Errors from the filesystem are returned as is.
func SaveSummary(path, summary string) (string, error) {
	content := strings.TrimSpace(summary)
	if content == "" {
		return "", ErrNothingToSave
	}

	path = WithDefaultExtension(path)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

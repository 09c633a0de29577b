// Package fileutil holds small helpers for files written on the user's behalf.
package fileutil

import (
	"os"
	"strings"
)

// SanitizeFilename cleans a filename by replacing problematic characters
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, ":", " -")
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	return strings.TrimSpace(name)
}

// CoverFilename returns the default file name for a saved cover,
// "<id>-<size>.jpg".
func CoverFilename(id, size string) string {
	return SanitizeFilename(id) + "-" + size + ".jpg"
}

// FileExists checks if a regular file exists at the given path
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

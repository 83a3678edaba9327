// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather
// than a bare name. A string containing path separators (/, \) is
// treated as a path.
//
// Examples:
//   - "default" -> false (config name)
//   - "./site.yaml" -> true (relative path)
//   - "/etc/md2html/site.yaml" -> true (absolute)
//   - "C:\docs\site.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsMarkdownPath returns true if the path carries a markdown extension.
func IsMarkdownPath(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".markdown")
}

// Package util holds small filesystem helpers shared by config loading
// and report writing.
package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a leading ~/ to the user's home directory, so config
// values like "~/src/tos" work as expected. Paths without the prefix come
// back unchanged.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}

// EnsureDir creates the directory (and any parents) for a report output
// path if it does not exist yet.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// DirExists reports whether path exists and is a directory. Used to reject
// a bad scan root before any file is read.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// UserHome returns the current user's home directory, falling back to "."
// when it cannot be determined.
func UserHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// ExpandPath resolves "~/" prefixes and makes relative paths absolute under
// the home directory.
func ExpandPath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(UserHome(), path[2:])
	}
	return path
}

package config

import (
	"os"
	"path/filepath"
	"strings"
)

// StdinPath is the file argument that selects standard input.
const StdinPath = "-"

// ExpandPath expands a leading ~ and $VAR references in an input file path.
// The stdin marker and the empty string are returned unchanged.
func ExpandPath(path string) string {
	if path == "" || path == StdinPath {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	return filepath.Clean(os.ExpandEnv(path))
}

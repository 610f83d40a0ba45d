package config

import (
	"os"
)

// GetGlobalConfigDir returns the directory holding the user-wide config
// file. It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	return os.UserHomeDir()
}

// SearchPaths returns the directories searched for .golfstats.yaml.
// Resolution order (first match wins):
// 1. The home directory
// 2. The working directory
func SearchPaths() []string {
	var paths []string
	if home, err := GetGlobalConfigDir(); err == nil && home != "" {
		paths = append(paths, home)
	}
	return append(paths, ".")
}

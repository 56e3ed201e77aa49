package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the default configuration file path, or "" when
// the user configuration directory is unknown.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "asyncstorage", "config.yaml")
}

// ResolvePath returns the configuration file to load.
//
// An explicit path is returned as-is, so a missing explicit file is an
// error at load time. Otherwise the default path is used only if it exists.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	path := DefaultConfigPath()
	if path == "" {
		return ""
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return ""
	}
	return path
}

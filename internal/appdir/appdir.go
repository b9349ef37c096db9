// Package appdir locates and creates the per-user isdomain directories.
package appdir

import (
	"fmt"
	"os"
	"path/filepath"
)

// Name is the directory name used under the OS config root.
const Name = "isdomain"

// ConfigFileName is the base name of the config file inside ConfigDir.
const ConfigFileName = "config.yaml"

// ConfigDir returns the OS-specific config directory for isdomain.
// Linux: $XDG_CONFIG_HOME/isdomain  macOS: ~/Library/Application Support/isdomain
// Windows: %AppData%/isdomain
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting user config dir: %w", err)
	}
	return filepath.Join(base, Name), nil
}

// ConfigFile returns the default config file path.
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// EnsureFile creates path and its parent directories if they do not exist.
// New files get 0600 permissions; an existing file is left as is.
func EnsureFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("creating config file: %w", err)
	}
	return f.Close()
}

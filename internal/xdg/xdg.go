// Package xdg provides XDG Base Directory support for keyglass.
package xdg

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "keyglass"

// ConfigHome returns the XDG config home directory.
// Uses $XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// DataHome returns the XDG data home directory.
// Uses $XDG_DATA_HOME if set, otherwise ~/.local/share.
func DataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share")
}

// DataDirs returns the ordered list of data directories to search:
// DataHome() followed by $XDG_DATA_DIRS (default /usr/local/share:/usr/share).
// Installed gsettings schema XML lives under <dir>/glib-2.0/schemas.
func DataDirs() []string {
	dirs := []string{DataHome()}
	env := os.Getenv("XDG_DATA_DIRS")
	if env == "" {
		env = "/usr/local/share:/usr/share"
	}
	for _, d := range strings.Split(env, ":") {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// ConfigDir returns the keyglass config directory: ConfigHome()/keyglass.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), appName)
}

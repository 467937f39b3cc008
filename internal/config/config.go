// Package config loads keyglass configuration.
//
// Settings come from, in increasing precedence: embedded defaults, the
// user config file at $XDG_CONFIG_HOME/keyglass/config.yaml, and
// KEYGLASS_* environment variables. A missing config file is not an
// error.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/keyglass/keyglass/internal/xdg"
	"github.com/spf13/viper"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds the keyglass runtime configuration.
type Config struct {
	// ExtraSchemas are schema ids to scan in addition to those whose
	// id contains "keybinding".
	ExtraSchemas []string `mapstructure:"extra_schemas"`

	// ExcludeSchemas are schema ids (exact match) to skip entirely.
	ExcludeSchemas []string `mapstructure:"exclude_schemas"`

	// GSettingsBin is the gsettings executable to invoke.
	GSettingsBin string `mapstructure:"gsettings_bin"`

	// GSettingsTimeout bounds the settings-store dump subprocess.
	GSettingsTimeout time.Duration `mapstructure:"gsettings_timeout"`

	// LogLevel is the slog level name (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

// Load reads the configuration from defaults, file, and environment.
func Load() (*Config, error) {
	return load(filepath.Join(xdg.ConfigDir(), "config.yaml"))
}

func load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultsYAML)); err != nil {
		return nil, fmt.Errorf("reading embedded defaults: %w", err)
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("KEYGLASS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

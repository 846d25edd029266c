// Package config loads the optional user configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable defaults. Every field has a sensible zero-ish
// default; a missing config file is not an error.
type Config struct {
	// Editor overrides $VISUAL/$EDITOR when set.
	Editor string `yaml:"editor"`
	// ShowHidden lists dot-prefixed entries by default.
	ShowHidden bool `yaml:"show_hidden"`
	// Preview opens the preview pane on startup.
	Preview bool `yaml:"preview"`
	// ConfirmDelete requires the y/N prompt before deleting. On by default;
	// switching it off is an explicit opt-out.
	ConfirmDelete bool `yaml:"confirm_delete"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ConfirmDelete: true,
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "fex", "config.yaml")
}

// Load reads the config at path, falling back to defaults when the file does
// not exist. A malformed file is an error; silently ignoring it would hide
// typos from the user.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("cannot parse config %s: %w", path, err)
	}
	return cfg, nil
}

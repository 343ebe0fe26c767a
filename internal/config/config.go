// Package config loads the scripting subsystem configuration.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the scripting subsystem configuration.
type Config struct {
	// ScriptDir is the root directory searched for script assets.
	ScriptDir string `toml:"script_dir"`

	// Debug opens the Lua debug library and enables debug logging.
	Debug bool `toml:"debug"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	// HotReload re-runs watched scripts when they change on disk.
	HotReload bool `toml:"hot_reload"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		ScriptDir: "assets",
		LogLevel:  "info",
	}
}

// Load reads a TOML configuration file. A missing file is not an
// error: the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Package config loads the optional sps.toml configuration file.
// Everything has a working default; the file and every key in it are
// optional, and command-line flags override whatever is loaded.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultPath is probed when no --config flag is given.
const DefaultPath = "sps.toml"

// Config is the root structure of sps.toml.
type Config struct {
	// Delimiters is the default cell delimiter set; the first
	// character is used on output.
	Delimiters string        `toml:"delimiters"`
	Logging    LoggingConfig `toml:"logging"`
}

// LoggingConfig configures the slog setup.
type LoggingConfig struct {
	// SeqURL enables shipping log records to a Seq server.
	SeqURL string `toml:"seq_url"`
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the built-in configuration: single-space delimiter,
// console logging at warn.
func Default() Config {
	return Config{
		Delimiters: " ",
		Logging:    LoggingConfig{Level: "warn"},
	}
}

// Load reads the config file at path. An empty path probes
// DefaultPath; a missing file is not an error and yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	probe := path == ""
	if probe {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if probe && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Delimiters == "" {
		cfg.Delimiters = " "
	}
	return cfg, nil
}

// SlogLevel maps the configured level name to a slog.Level, falling
// back to warn on anything unrecognized.
func (c LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

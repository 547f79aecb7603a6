// Package config handles TOML-based configuration loading and validation.
// The file is parsed as data only; nothing in it is executed.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// protocolPattern matches URL scheme names (RFC 3986).
var protocolPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*$`)

// Config holds all application configuration.
type Config struct {
	Player            string   `toml:"player"`
	PlayerArgs        string   `toml:"player_args"`
	PlayerPassthrough []string `toml:"player_passthrough"`
	VerbosePlayer     bool     `toml:"verbose_player"`
	Title             string   `toml:"title"`
	GracePeriod       string   `toml:"grace_period"`
	LogLevel          string   `toml:"log_level"`
	LogJSON           bool     `toml:"log_json"`
	History           bool     `toml:"history"`
	Debug             bool     `toml:"debug"`
}

// Default returns the default configuration. No player is preset: it has
// to come from the config file or -p/--player.
func Default() *Config {
	return &Config{
		GracePeriod: "5s",
		LogLevel:    "info",
		History:     true,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "livecli"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "livecli"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parsing config %s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	if _, err := c.Grace(); err != nil {
		return err
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("unsupported log level %q", c.LogLevel)
	}

	for _, p := range c.PlayerPassthrough {
		if !protocolPattern.MatchString(p) {
			return fmt.Errorf("invalid passthrough protocol %q", p)
		}
	}

	return nil
}

// Grace returns the parsed player termination grace period.
func (c *Config) Grace() (time.Duration, error) {
	d, err := time.ParseDuration(c.GracePeriod)
	if err != nil {
		return 0, fmt.Errorf("invalid grace period %q: %w", c.GracePeriod, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("grace period must be positive, got %s", d)
	}
	return d, nil
}

// Level returns the effective log level name.
func (c *Config) Level() string {
	if c.Debug {
		return zerolog.LevelDebugValue
	}
	return c.LogLevel
}

// HistoryPath returns the path to the session history file.
func HistoryPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "livecli", "history.tsv"), nil
}

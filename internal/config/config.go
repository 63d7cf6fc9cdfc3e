// Package config loads dashboard settings from the user's config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds connection settings and the refresh cadence. Command-line
// flags override whatever the file provides.
type Config struct {
	Addr      string `yaml:"addr"`
	User      string `yaml:"user"`
	Pass      string `yaml:"pass"`
	RefreshMS int    `yaml:"refresh_ms"`
}

// Default returns the out-of-the-box settings for a local broker.
func Default() Config {
	return Config{
		Addr:      "http://localhost:15672",
		User:      "guest",
		Pass:      "guest",
		RefreshMS: 2000,
	}
}

// Interval returns the refresh cadence as a duration, falling back to the
// default when the configured value is not positive.
func (c Config) Interval() time.Duration {
	if c.RefreshMS <= 0 {
		return time.Duration(Default().RefreshMS) * time.Millisecond
	}
	return time.Duration(c.RefreshMS) * time.Millisecond
}

func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "rabbitui")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rabbitui")
}

// Path returns the config file location, or "" when no home directory
// can be determined.
func Path() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file, layering it over the defaults. A missing
// file is not an error; a malformed one is.
func Load() (Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

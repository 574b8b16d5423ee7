// Package config handles session configuration for page-object runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents a session configuration (config.yaml).
type Config struct {
	// Backend selection
	Driver    string `yaml:"driver"`    // webdriver or playwright
	Browser   string `yaml:"browser"`   // browser name for the backend
	RemoteURL string `yaml:"remoteUrl"` // WebDriver endpoint (webdriver only)
	Headless  bool   `yaml:"headless"`

	// Navigation
	BaseURL string `yaml:"baseUrl"`

	// Polling settings
	Timeout        int `yaml:"timeout"`        // default poll budget in ticks
	PollIntervalMs int `yaml:"pollIntervalMs"` // sleep between ticks

	// Environment variables applied before the session starts
	Env map[string]string `yaml:"env"`
}

// PollInterval returns the configured tick interval, or zero when unset.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// Validate checks backend selection.
func (c *Config) Validate() error {
	switch c.Driver {
	case "", "webdriver", "playwright":
		return nil
	}
	return fmt.Errorf("unknown driver %q (want webdriver or playwright)", c.Driver)
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromDir looks for config.yaml or config.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	// Try config.yaml first
	configPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// Try config.yml
	configPath = filepath.Join(dir, "config.yml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// No config file found, return empty config
	return &Config{}, nil
}

// LoadEnv overlays a .env file (optional) and the config's env map onto the
// process environment.
func LoadEnv(cfg *Config) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	for k, v := range cfg.Env {
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}
	return nil
}

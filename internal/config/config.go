package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/config.yaml"

type ServerConfig struct {
	Port            int           `yaml:"port"`
	Mode            string        `yaml:"mode"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// FetchConfig shapes the simulated lookups: each one takes Steps x StepDelay.
type FetchConfig struct {
	Steps     int           `yaml:"steps"`
	StepDelay time.Duration `yaml:"step_delay"`
}

type DocsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	Fetch  FetchConfig  `yaml:"fetch"`
	Docs   DocsConfig   `yaml:"docs"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8000,
			Mode:            "release",
			ShutdownTimeout: 10 * time.Second,
		},
		Fetch: FetchConfig{
			Steps:     5,
			StepDelay: time.Second,
		},
		Docs: DocsConfig{Enabled: true},
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must not be negative")
	}
	if c.Fetch.Steps < 1 {
		return fmt.Errorf("fetch.steps must be at least 1, got %d", c.Fetch.Steps)
	}
	if c.Fetch.StepDelay < 0 {
		return fmt.Errorf("fetch.step_delay must not be negative")
	}
	return nil
}

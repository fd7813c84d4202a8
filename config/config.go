// Package config loads the guardian configuration from a YAML file plus
// environment overrides. A .env file, when present, is folded into the
// environment first, which is where GEMINI_API_KEY usually lives.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the complete guardian configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	Coach  CoachConfig  `yaml:"coach"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DataConfig says where the market data CSV files live.
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// CoachConfig controls the external advice generator.
type CoachConfig struct {
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	PerMinute      int    `yaml:"per_minute"` // sustained external calls per minute
}

// Load reads the configuration. An empty path yields pure defaults, so the
// game runs with zero configuration. The .env file is loaded silently when
// it exists.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)
	return &cfg, nil
}

// CoachTimeout returns the advice call deadline as a time.Duration.
func (c *Config) CoachTimeout() time.Duration {
	return time.Duration(c.Coach.TimeoutSeconds) * time.Second
}

// applyEnvOverrides overwrites values with environment variables when present.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GUARDIAN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("GUARDIAN_DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("GUARDIAN_COACH_MODEL"); v != "" {
		cfg.Coach.Model = v
	}
}

// setDefaults ensures required values have sensible defaults.
func setDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":5002"
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data"
	}
	if cfg.Coach.TimeoutSeconds <= 0 {
		cfg.Coach.TimeoutSeconds = 10
	}
	if cfg.Coach.PerMinute <= 0 {
		cfg.Coach.PerMinute = 10
	}
}

package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Calculator struct {
		// MaintenanceOnly disables goal adjustments entirely: every plan
		// targets maintenance calories (still floored at 1200). Same compute
		// path as goal mode, just with a forced zero adjustment.
		MaintenanceOnly bool `yaml:"maintenance_only"`
	} `yaml:"calculator"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

// LoadConfig reads config from a YAML file, then applies environment
// variable overrides, then fills defaults. A missing file is fine — env
// vars and defaults carry a zero-config deployment.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("MAINTENANCE_ONLY"); v != "" {
		cfg.Calculator.MaintenanceOnly = v == "true" || v == "1"
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = strings.Split(v, ",")
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":3000"
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	for _, origin := range c.CORS.AllowedOrigins {
		if origin == "" {
			return fmt.Errorf("cors.allowed_origins must not contain empty entries")
		}
	}
	return nil
}

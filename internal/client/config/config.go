// Package config loads runtime settings for the docuseek CLI.
package config

import "time"

// Config holds runtime settings for the docuseek CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API.
//   - HealthCheckInterval: how often the client probes backend liveness.
//   - CredentialDBPath: path of the local SQLite credential database.
type Config struct {
	ServerBaseURL       string
	HealthCheckInterval time.Duration
	CredentialDBPath    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.HealthCheckInterval = 30 * time.Second
	c.CredentialDBPath = "docuseek.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/clovehq/momtrack/internal/localstate"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the meeting tracker service.
// Environment variables are automatically parsed from MOMTRACK_ prefix
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Storage paths; empty values derive from the per-user data
	// directory ($MOMTRACK_HOME or ~/.momtrack).
	DataDir   string `envconfig:"DATA_DIR" default:""`
	DBPath    string `envconfig:"DB_PATH" default:""`
	ExportDir string `envconfig:"EXPORT_DIR" default:""`

	// Report letterhead
	OrgName string `envconfig:"ORG_NAME" default:"AICCC"`
	Venue   string `envconfig:"VENUE" default:"AICCC Room, APCRDA Project Office, Lingayapalem"`
}

// ResolveDefaults derives the storage paths that were left empty.
func (c *Config) ResolveDefaults() error {
	if c.DataDir == "" {
		dir, err := localstate.DataDir()
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		c.DataDir = dir
	}
	if c.DBPath == "" {
		c.DBPath = localstate.DBPath(c.DataDir)
	}
	if c.ExportDir == "" {
		c.ExportDir = localstate.ExportDir(c.DataDir)
	}
	return nil
}

// New creates a new Config by parsing environment variables
// Environment variables should be prefixed with MOMTRACK_
// Example: MOMTRACK_HTTP_PORT, MOMTRACK_DATA_DIR
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("MOMTRACK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("data_dir", cfg.DataDir).
		Str("db_path", cfg.DBPath).
		Str("export_dir", cfg.ExportDir).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting(dataDir string) *Config {
	cfg := &Config{
		Environment: EnvTesting,
		HTTPPort:    8080,
		DataDir:     dataDir,
		DBPath:      localstate.DBPath(dataDir),
		ExportDir:   localstate.ExportDir(dataDir),
		OrgName:     "AICCC",
		Venue:       "AICCC Room, APCRDA Project Office, Lingayapalem",
	}
	return cfg
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

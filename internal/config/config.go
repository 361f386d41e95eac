// Package config loads the curator configuration from TOML files and
// CURATOR_* environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/curator/internal/curator"
	"github.com/JaimeStill/curator/pkg/database"
	"github.com/JaimeStill/curator/pkg/envvar"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvCuratorEnv             = "CURATOR_ENV"
	EnvCuratorShutdownTimeout = "CURATOR_SHUTDOWN_TIMEOUT"
	EnvCuratorVersion         = "CURATOR_VERSION"
)

var databaseEnv = &database.Env{
	Host:            "CURATOR_DB_HOST",
	Port:            "CURATOR_DB_PORT",
	Name:            "CURATOR_DB_NAME",
	User:            "CURATOR_DB_USER",
	Password:        "CURATOR_DB_PASSWORD",
	SSLMode:         "CURATOR_DB_SSL_MODE",
	MaxOpenConns:    "CURATOR_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "CURATOR_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "CURATOR_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "CURATOR_DB_CONN_TIMEOUT",
	AutoMigrate:     "CURATOR_DB_AUTO_MIGRATE",
}

// Config is the root configuration for the curator service.
type Config struct {
	Server          ServerConfig         `toml:"server"`
	Database        database.Config      `toml:"database"`
	API             APIConfig            `toml:"api"`
	Agent           gaconfig.AgentConfig `toml:"agent"`
	Curator         CuratorConfig        `toml:"curator"`
	ShutdownTimeout string               `toml:"shutdown_timeout"`
	Version         string               `toml:"version"`
}

// Env returns the CURATOR_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvCuratorEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	return duration(c.ShutdownTimeout)
}

// CuratorConfig returns the model configuration for curator.New.
func (c *Config) CuratorConfig() curator.Config {
	return curator.Config{
		Agent:       c.Agent,
		Temperature: c.Curator.TemperatureValue(),
	}
}

// ModelName returns the configured model name, or an empty string.
func (c *Config) ModelName() string {
	if c.Agent.Model == nil {
		return ""
	}
	return c.Agent.Model.Name
}

// ProviderName returns the configured provider name, or an empty string.
func (c *Config) ProviderName() string {
	if c.Agent.Provider == nil {
		return ""
	}
	return c.Agent.Provider.Name
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// LoadAgent is Load for commands that talk to the model but not to the
// database or HTTP server. Only the agent and curator sections are
// finalized.
func LoadAgent() (*Config, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}

	if err := FinalizeAgent(&cfg.Agent); err != nil {
		return nil, fmt.Errorf("finalize config: agent: %w", err)
	}
	if err := cfg.Curator.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: curator: %w", err)
	}

	return cfg, nil
}

// LoadDatabase finalizes only the database section, for tooling such as
// the migration command.
func LoadDatabase() (*Config, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}

	if err := cfg.Database.Finalize(databaseEnv); err != nil {
		return nil, fmt.Errorf("finalize config: database: %w", err)
	}

	return cfg, nil
}

func read() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	mergeString(&c.ShutdownTimeout, overlay.ShutdownTimeout)
	mergeString(&c.Version, overlay.Version)
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.API.Merge(&overlay.API)
	c.Agent.Merge(&overlay.Agent)
	c.Curator.Merge(&overlay.Curator)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := FinalizeAgent(&c.Agent); err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	if err := c.Curator.Finalize(); err != nil {
		return fmt.Errorf("curator: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	defaultString(&c.ShutdownTimeout, "30s")
	defaultString(&c.Version, "0.1.0")
}

func (c *Config) loadEnv() {
	envvar.String(&c.ShutdownTimeout, EnvCuratorShutdownTimeout)
	envvar.String(&c.Version, EnvCuratorVersion)
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvCuratorEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func duration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}

func mergeString(dst *string, overlay string) {
	if overlay != "" {
		*dst = overlay
	}
}

func defaultString(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}

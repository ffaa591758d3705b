package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/mano7284/PRD2workflow-Backend/internal/auth"
	"github.com/mano7284/PRD2workflow-Backend/internal/gemini"
	"github.com/mano7284/PRD2workflow-Backend/pkg/database"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvPrdflowEnv             = "PRDFLOW_ENV"
	EnvPrdflowShutdownTimeout = "PRDFLOW_SHUTDOWN_TIMEOUT"
	EnvPrdflowVersion         = "PRDFLOW_VERSION"
)

var databaseEnv = &database.Env{
	Enabled:         "PRDFLOW_DB_ENABLED",
	Host:            "PRDFLOW_DB_HOST",
	Port:            "PRDFLOW_DB_PORT",
	Name:            "PRDFLOW_DB_NAME",
	User:            "PRDFLOW_DB_USER",
	Password:        "PRDFLOW_DB_PASSWORD",
	SSLMode:         "PRDFLOW_DB_SSL_MODE",
	MaxOpenConns:    "PRDFLOW_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "PRDFLOW_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "PRDFLOW_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "PRDFLOW_DB_CONN_TIMEOUT",
}

var geminiEnv = &gemini.Env{
	APIKey:             "GEMINI_API_KEY",
	BaseURL:            "PRDFLOW_GEMINI_BASE_URL",
	MaxAttempts:        "PRDFLOW_GEMINI_MAX_ATTEMPTS",
	RetryBaseDelay:     "PRDFLOW_GEMINI_RETRY_BASE_DELAY",
	AttemptTimeout:     "PRDFLOW_GEMINI_ATTEMPT_TIMEOUT",
	AttemptTimeoutStep: "PRDFLOW_GEMINI_ATTEMPT_TIMEOUT_STEP",
}

var authEnv = &auth.Env{
	Secret:   "JWT_SECRET",
	TokenTTL: "PRDFLOW_AUTH_TOKEN_TTL",
}

// Config is the root configuration for the analysis service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Database        database.Config `toml:"database"`
	Gemini          gemini.Config   `toml:"gemini"`
	Auth            auth.Config     `toml:"auth"`
	API             APIConfig       `toml:"api"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns the PRDFLOW_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvPrdflowEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
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

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Gemini.Merge(&overlay.Gemini)
	c.Auth.Merge(&overlay.Auth)
	c.API.Merge(&overlay.API)
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
	if err := c.Gemini.Finalize(geminiEnv); err != nil {
		return fmt.Errorf("gemini: %w", err)
	}
	if err := c.Auth.Finalize(authEnv); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvPrdflowShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvPrdflowVersion); v != "" {
		c.Version = v
	}
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
	if env := os.Getenv(EnvPrdflowEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

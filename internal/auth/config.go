package auth

import (
	"fmt"
	"os"
	"time"
)

// Config holds token signing settings.
type Config struct {
	Secret   string `toml:"secret"`
	TokenTTL string `toml:"token_ttl"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Secret   string
	TokenTTL string
}

// TokenTTLDuration returns TokenTTL as a time.Duration.
func (c *Config) TokenTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TokenTTL)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Secret != "" {
		c.Secret = overlay.Secret
	}
	if overlay.TokenTTL != "" {
		c.TokenTTL = overlay.TokenTTL
	}
}

func (c *Config) loadDefaults() {
	// Development fallback; deployments override via JWT_SECRET.
	if c.Secret == "" {
		c.Secret = "dev-secret-change-me"
	}
	if c.TokenTTL == "" {
		c.TokenTTL = "24h"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Secret != "" {
		if v := os.Getenv(env.Secret); v != "" {
			c.Secret = v
		}
	}
	if env.TokenTTL != "" {
		if v := os.Getenv(env.TokenTTL); v != "" {
			c.TokenTTL = v
		}
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.TokenTTL); err != nil {
		return fmt.Errorf("invalid token_ttl: %w", err)
	}
	return nil
}

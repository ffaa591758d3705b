package gemini

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// Config holds Gemini endpoint credentials and retry policy. Values are
// fixed at startup and injected into the client; nothing reads them from
// ambient state afterwards.
type Config struct {
	APIKey             string `toml:"api_key"`
	BaseURL            string `toml:"base_url"`
	MaxAttempts        int    `toml:"max_attempts"`
	RetryBaseDelay     string `toml:"retry_base_delay"`
	AttemptTimeout     string `toml:"attempt_timeout"`
	AttemptTimeoutStep string `toml:"attempt_timeout_step"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	APIKey             string
	BaseURL            string
	MaxAttempts        string
	RetryBaseDelay     string
	AttemptTimeout     string
	AttemptTimeoutStep string
}

// RetryBaseDelayDuration returns RetryBaseDelay as a time.Duration.
func (c *Config) RetryBaseDelayDuration() time.Duration {
	d, _ := time.ParseDuration(c.RetryBaseDelay)
	return d
}

// AttemptTimeoutDuration returns AttemptTimeout as a time.Duration.
func (c *Config) AttemptTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.AttemptTimeout)
	return d
}

// AttemptTimeoutStepDuration returns AttemptTimeoutStep as a time.Duration.
func (c *Config) AttemptTimeoutStepDuration() time.Duration {
	d, _ := time.ParseDuration(c.AttemptTimeoutStep)
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
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.MaxAttempts != 0 {
		c.MaxAttempts = overlay.MaxAttempts
	}
	if overlay.RetryBaseDelay != "" {
		c.RetryBaseDelay = overlay.RetryBaseDelay
	}
	if overlay.AttemptTimeout != "" {
		c.AttemptTimeout = overlay.AttemptTimeout
	}
	if overlay.AttemptTimeoutStep != "" {
		c.AttemptTimeoutStep = overlay.AttemptTimeoutStep
	}
}

func (c *Config) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 3
	}
	if c.RetryBaseDelay == "" {
		c.RetryBaseDelay = "2s"
	}
	if c.AttemptTimeout == "" {
		c.AttemptTimeout = "30s"
	}
	if c.AttemptTimeoutStep == "" {
		c.AttemptTimeoutStep = "15s"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.APIKey != "" {
		if v := os.Getenv(env.APIKey); v != "" {
			c.APIKey = v
		}
	}
	if env.BaseURL != "" {
		if v := os.Getenv(env.BaseURL); v != "" {
			c.BaseURL = v
		}
	}
	if env.MaxAttempts != "" {
		if v := os.Getenv(env.MaxAttempts); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxAttempts = n
			}
		}
	}
	if env.RetryBaseDelay != "" {
		if v := os.Getenv(env.RetryBaseDelay); v != "" {
			c.RetryBaseDelay = v
		}
	}
	if env.AttemptTimeout != "" {
		if v := os.Getenv(env.AttemptTimeout); v != "" {
			c.AttemptTimeout = v
		}
	}
	if env.AttemptTimeoutStep != "" {
		if v := os.Getenv(env.AttemptTimeoutStep); v != "" {
			c.AttemptTimeoutStep = v
		}
	}
}

func (c *Config) validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be positive")
	}
	if _, err := time.ParseDuration(c.RetryBaseDelay); err != nil {
		return fmt.Errorf("invalid retry_base_delay: %w", err)
	}
	if _, err := time.ParseDuration(c.AttemptTimeout); err != nil {
		return fmt.Errorf("invalid attempt_timeout: %w", err)
	}
	if _, err := time.ParseDuration(c.AttemptTimeoutStep); err != nil {
		return fmt.Errorf("invalid attempt_timeout_step: %w", err)
	}
	return nil
}

package erp

import (
	"os"
	"strconv"
)

// Config holds connection settings for the remote ERP's attendance API.
type Config struct {
	Endpoint   string
	APIKey     string
	TimeoutMs  int
	MaxRetries int
}

// DefaultConfig returns a Config with sensible defaults. The endpoint must
// come from the environment; there is no useful default host.
func DefaultConfig() Config {
	return Config{
		TimeoutMs:  10000,
		MaxRetries: 1,
	}
}

// LoadConfig reads ERP configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("JORNADA_ERP_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("JORNADA_ERP_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("JORNADA_ERP_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("JORNADA_ERP_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}

// Configured reports whether an endpoint has been set.
func (c Config) Configured() bool {
	return c.Endpoint != ""
}

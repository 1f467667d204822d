package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the mock exporter server.
type Config struct {
	// Host is the HTTP server bind address (default: 0.0.0.0)
	Host string
	// Port is the HTTP server port (default: 9090)
	Port int
	// LogLevel is the slog level: debug, info, warn, error (default: info)
	LogLevel string
	// RequestTimeout is the server-side timeout for all requests
	RequestTimeout time.Duration
	// ShutdownTimeout is the max time to wait for in-flight requests
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Host:            "0.0.0.0",
		Port:            9090,
		LogLevel:        "info",
		RequestTimeout:  time.Minute,
		ShutdownTimeout: 30 * time.Second,
	}

	var err error

	cfg.Host = getEnvString("MOCKAZURE_HOST", cfg.Host)
	if cfg.Port, err = getEnvInt("MOCKAZURE_PORT", cfg.Port); err != nil {
		return nil, err
	}
	cfg.LogLevel = getEnvString("MOCKAZURE_LOG_LEVEL", cfg.LogLevel)
	if cfg.RequestTimeout, err = getEnvDuration("MOCKAZURE_REQUEST_TIMEOUT", cfg.RequestTimeout); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getEnvDuration("MOCKAZURE_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr returns the bind address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnvString(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return i, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// Validate checks that configuration values are valid.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host must not be empty")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}

	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must be non-negative, got %s", c.RequestTimeout)
	}

	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("shutdown timeout must be non-negative, got %s", c.ShutdownTimeout)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}

	return nil
}

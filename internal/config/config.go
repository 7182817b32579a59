package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Application
	AppEnv   string
	LogLevel string

	// Display
	DisplayTimezone string
	FarsiDigits     bool

	// Input handling
	MaxInputBytes  int64
	SanitizeOutput bool

	location *time.Location
}

// MaxInputBytesLimit bounds MAX_INPUT_BYTES so the limit can be used with
// io.LimitReader without overflowing.
const MaxInputBytesLimit = 1 << 30

// FromEnv reads the environment without validating it, so callers can
// apply overrides before calling Validate.
func FromEnv() *Config {
	return &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DisplayTimezone: getEnv("DISPLAY_TIMEZONE", "Asia/Tehran"),
		FarsiDigits:     getEnvBool("FARSI_DIGITS", true),

		MaxInputBytes:  getEnvInt64("MAX_INPUT_BYTES", 1<<20),
		SanitizeOutput: getEnvBool("SANITIZE_OUTPUT", true),
	}
}

func LoadConfig() (*Config, error) {
	cfg := FromEnv()

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field and resolves DisplayTimezone. It must be
// called again after fields are overridden, e.g. from command-line flags.
func (c *Config) Validate() error {
	switch c.AppEnv {
	case "development", "production", "test":
	default:
		return fmt.Errorf("APP_ENV must be development, production or test, got %q", c.AppEnv)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}
	if c.MaxInputBytes <= 0 {
		return fmt.Errorf("MAX_INPUT_BYTES must be positive")
	}
	if c.MaxInputBytes > MaxInputBytesLimit {
		return fmt.Errorf("MAX_INPUT_BYTES must not exceed %d", MaxInputBytesLimit)
	}
	if c.DisplayTimezone == "" {
		return fmt.Errorf("DISPLAY_TIMEZONE is required")
	}
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return fmt.Errorf("invalid DISPLAY_TIMEZONE: %w", err)
	}
	c.location = loc
	return nil
}

func (c *Config) ValidateProductionSecurity() error {
	if c.AppEnv != "production" {
		return nil
	}

	if !c.SanitizeOutput {
		return fmt.Errorf("SANITIZE_OUTPUT must be enabled in production")
	}
	if c.LogLevel == "debug" {
		return fmt.Errorf("LOG_LEVEL must not be debug in production")
	}

	return nil
}

// Location returns the display location resolved by Validate, or UTC when
// Validate has not run.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

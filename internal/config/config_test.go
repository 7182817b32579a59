package config

import (
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DISPLAY_TIMEZONE", "UTC")
	t.Setenv("FARSI_DIGITS", "false")
	t.Setenv("MAX_INPUT_BYTES", "2048")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.AppEnv != "test" {
		t.Errorf("AppEnv = %q, want %q", cfg.AppEnv, "test")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.FarsiDigits {
		t.Error("FarsiDigits = true, want false")
	}
	if cfg.MaxInputBytes != 2048 {
		t.Errorf("MaxInputBytes = %d, want 2048", cfg.MaxInputBytes)
	}
	if !cfg.SanitizeOutput {
		t.Error("SanitizeOutput = false, want true")
	}
	if cfg.Location() != time.UTC {
		t.Errorf("Location() = %v, want UTC", cfg.Location())
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "LOG_LEVEL", "FARSI_DIGITS", "MAX_INPUT_BYTES", "SANITIZE_OUTPUT"} {
		t.Setenv(key, "")
	}
	t.Setenv("DISPLAY_TIMEZONE", "UTC")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.AppEnv != "development" {
		t.Errorf("AppEnv = %q, want %q", cfg.AppEnv, "development")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if !cfg.FarsiDigits {
		t.Error("FarsiDigits = false, want true")
	}
	if cfg.MaxInputBytes != 1<<20 {
		t.Errorf("MaxInputBytes = %d, want %d", cfg.MaxInputBytes, 1<<20)
	}
}

func TestLoadConfig_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("DISPLAY_TIMEZONE", "UTC")
	t.Setenv("MAX_INPUT_BYTES", "lots")
	t.Setenv("FARSI_DIGITS", "maybe")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.MaxInputBytes != 1<<20 {
		t.Errorf("MaxInputBytes = %d, want default", cfg.MaxInputBytes)
	}
	if !cfg.FarsiDigits {
		t.Error("FarsiDigits = false, want default true")
	}
}

func TestFromEnv_DefersValidation(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("DISPLAY_TIMEZONE", "Mars/Olympus")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() expected error for unknown timezone, got nil")
	}

	cfg := FromEnv()
	if cfg.DisplayTimezone != "Mars/Olympus" {
		t.Errorf("DisplayTimezone = %q, want %q", cfg.DisplayTimezone, "Mars/Olympus")
	}

	// A flag override fixes the environment before validation.
	cfg.DisplayTimezone = "UTC"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			AppEnv:          "development",
			LogLevel:        "info",
			DisplayTimezone: "UTC",
			MaxInputBytes:   1024,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "Valid", mutate: func(*Config) {}, wantErr: false},
		{name: "Unknown env", mutate: func(c *Config) { c.AppEnv = "staging" }, wantErr: true},
		{name: "Unknown log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: true},
		{name: "Zero input limit", mutate: func(c *Config) { c.MaxInputBytes = 0 }, wantErr: true},
		{name: "Input limit at cap", mutate: func(c *Config) { c.MaxInputBytes = MaxInputBytesLimit }, wantErr: false},
		{name: "Input limit above cap", mutate: func(c *Config) { c.MaxInputBytes = 9223372036854775807 }, wantErr: true},
		{name: "Empty timezone", mutate: func(c *Config) { c.DisplayTimezone = "" }, wantErr: true},
		{name: "Unknown timezone", mutate: func(c *Config) { c.DisplayTimezone = "Mars/Olympus" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateProductionSecurity(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		shouldErr bool
	}{
		{
			name:      "Valid production config",
			cfg:       &Config{AppEnv: "production", LogLevel: "info", SanitizeOutput: true},
			shouldErr: false,
		},
		{
			name:      "Development mode - no validation",
			cfg:       &Config{AppEnv: "development", LogLevel: "debug", SanitizeOutput: false},
			shouldErr: false,
		},
		{
			name:      "Production without sanitizing",
			cfg:       &Config{AppEnv: "production", LogLevel: "info", SanitizeOutput: false},
			shouldErr: true,
		},
		{
			name:      "Production with debug logging",
			cfg:       &Config{AppEnv: "production", LogLevel: "debug", SanitizeOutput: true},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateProductionSecurity()
			if tt.shouldErr && err == nil {
				t.Error("ValidateProductionSecurity() expected error, got nil")
			}
			if !tt.shouldErr && err != nil {
				t.Errorf("ValidateProductionSecurity() unexpected error = %v", err)
			}
		})
	}
}

func TestLocation_BeforeValidate(t *testing.T) {
	cfg := &Config{}
	if cfg.Location() != time.UTC {
		t.Errorf("Location() = %v, want UTC", cfg.Location())
	}
}

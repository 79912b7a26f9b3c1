// Package config handles gateway configuration management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/radichu/radichu-serve/internal/radichu"
)

// Config holds all gateway configuration. Values come from environment
// variables with an optional YAML file underneath; environment wins.
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Schedule ScheduleConfig
	// Radichu is handed opaquely to the playlist collaborator at startup.
	Radichu radichu.Config
	// LogLevel controls logging verbosity (4=info, 5=debug)
	LogLevel    int
	Environment string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Address string
}

// AuthConfig holds the shared-secret configuration.
type AuthConfig struct {
	// Token is the single shared secret; required, no default.
	Token string
}

// ScheduleConfig holds upstream schedule-provider configuration.
type ScheduleConfig struct {
	BaseURL        string
	DefaultChannel string
	// Timezone is the IANA name of the reference timezone for
	// broadcast-date resolution.
	Timezone       string
	RequestTimeout time.Duration
}

// fileConfig mirrors Config for YAML decoding.
type fileConfig struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Auth struct {
		Token string `yaml:"token"`
	} `yaml:"auth"`
	Schedule struct {
		BaseURL        string `yaml:"base_url"`
		DefaultChannel string `yaml:"default_channel"`
		Timezone       string `yaml:"timezone"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"schedule"`
	Radichu radichu.Config `yaml:"radichu"`
}

// Load reads configuration from the optional YAML file and environment
// variables. The shared secret is required; Load fails without it.
func Load() (*Config, error) {
	return load(getEnv("RADICHU_CONFIG_FILE", ""))
}

func load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Address: ":3000",
		},
		Schedule: ScheduleConfig{
			BaseURL:        "https://radiko.jp",
			DefaultChannel: "QRR",
			Timezone:       "Asia/Tokyo",
			RequestTimeout: 10 * time.Second,
		},
		LogLevel:    4, // info level
		Environment: "development",
	}

	if path == "" {
		if _, err := os.Stat("config.yml"); err == nil {
			path = "config.yml"
		}
	}
	if path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if cfg.Auth.Token == "" {
		return nil, fmt.Errorf("shared secret is required: set RADICHU_TOKEN or auth.token in the config file")
	}

	return cfg, nil
}

// applyFile overlays the YAML file at path onto cfg.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from the operator
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Server.Address != "" {
		cfg.Server.Address = fc.Server.Address
	}
	if fc.Auth.Token != "" {
		cfg.Auth.Token = fc.Auth.Token
	}
	if fc.Schedule.BaseURL != "" {
		cfg.Schedule.BaseURL = fc.Schedule.BaseURL
	}
	if fc.Schedule.DefaultChannel != "" {
		cfg.Schedule.DefaultChannel = fc.Schedule.DefaultChannel
	}
	if fc.Schedule.Timezone != "" {
		cfg.Schedule.Timezone = fc.Schedule.Timezone
	}
	if fc.Schedule.TimeoutSeconds > 0 {
		cfg.Schedule.RequestTimeout = time.Duration(fc.Schedule.TimeoutSeconds) * time.Second
	}
	cfg.Radichu = fc.Radichu

	return nil
}

// applyEnv overlays environment variables onto cfg.
func applyEnv(cfg *Config) {
	cfg.Server.Address = getEnv("RADICHU_SERVER_ADDRESS", cfg.Server.Address)
	cfg.Auth.Token = getEnv("RADICHU_TOKEN", cfg.Auth.Token)
	cfg.Schedule.BaseURL = getEnv("RADICHU_SCHEDULE_BASE_URL", cfg.Schedule.BaseURL)
	cfg.Schedule.DefaultChannel = getEnv("RADICHU_DEFAULT_CHANNEL", cfg.Schedule.DefaultChannel)
	cfg.Schedule.Timezone = getEnv("RADICHU_TIMEZONE", cfg.Schedule.Timezone)
	cfg.Environment = getEnv("RADICHU_ENV", cfg.Environment)

	if v := os.Getenv("RADICHU_LOG_LEVEL"); v != "" {
		if level, err := strconv.Atoi(v); err == nil {
			cfg.LogLevel = level
		}
	}
	if v := os.Getenv("RADICHU_SCHEDULE_TIMEOUT_SECONDS"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cfg.Schedule.RequestTimeout = time.Duration(seconds) * time.Second
		}
	}
}

// getEnv returns the value of the environment variable key, or defaultValue if unset.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Package config defines process configuration and its loading order.
//
// Configuration layers, low to high precedence:
//  1. defaults (New)
//  2. YAML file named by HOOPSCOUT_CONFIG, if set
//  3. environment variables with the HOOPSCOUT_ prefix
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment overrides, e.g. HOOPSCOUT_DATA_DIR.
const EnvPrefix = "HOOPSCOUT_"

// Config contains process configuration
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DataDir holds the team and analysis tables.
	DataDir string `koanf:"data_dir"`

	// BaseURL is the source site root.
	BaseURL string `koanf:"base_url"`

	// UserAgent is sent on every scrape request.
	UserAgent string `koanf:"user_agent"`

	// StartYear and EndYear bound the scraped seasons, inclusive.
	StartYear int `koanf:"start_year"`
	EndYear   int `koanf:"end_year"`

	// RequestDelayMS throttles team page requests.
	RequestDelayMS int `koanf:"request_delay_ms"`
}

// New returns a Config populated with defaults. The default year range
// covers the fifteen most recent completed tournaments.
func New() *Config {
	endYear := time.Now().Year() - 1
	return &Config{
		LogLevel:       "info",
		DataDir:        "~/.local/share/hoopscout",
		BaseURL:        "https://www.sports-reference.com",
		UserAgent:      "hoopscout/1.0 (github.com/tbraden/hoopscout)",
		StartYear:      endYear - 14,
		EndYear:        endYear,
		RequestDelayMS: 3000,
	}
}

// Load builds a Config by layering defaults, the optional file, and env vars.
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(EnvPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// HOOPSCOUT_DATA_DIR -> data_dir, underscores preserved to match the
	// koanf tags above.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.DataDir == "" {
		return nil, errors.New("data_dir must not be empty")
	}
	if cfg.StartYear > cfg.EndYear {
		return nil, errors.New("start_year must not be after end_year")
	}
	return &cfg, nil
}

// RequestDelay returns the scrape throttle as a duration.
func (c *Config) RequestDelay() time.Duration {
	return time.Duration(c.RequestDelayMS) * time.Millisecond
}

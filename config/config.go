// Package config manages application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all settings for collection and coding runs.
type Config struct {
	// APIKey is the YouTube Data API key (required for collection).
	APIKey string `mapstructure:"api_key"`

	// MaxComments limits comments fetched per video.
	MaxComments int `mapstructure:"max_comments"`
	// Order is the comment ordering requested from the API ("time" or
	// "relevance").
	Order string `mapstructure:"order"`
	// QuotaReserve is the minimum estimated quota units kept unspent.
	QuotaReserve int `mapstructure:"quota_reserve"`
	// RateLimit is the sustained API request rate in requests/second.
	RateLimit float64 `mapstructure:"rate_limit"`
	// RateBurst is the rate limiter burst size.
	RateBurst int `mapstructure:"rate_burst"`
	// Workers bounds concurrent video fetches in batch collection.
	Workers int `mapstructure:"workers"`

	// MaxRetries is the maximum number of retries for failed API calls.
	MaxRetries int `mapstructure:"max_retries"`
	// InitialBackoff is the initial retry backoff duration.
	InitialBackoff time.Duration `mapstructure:"initial_backoff"`
	// MaxBackoff is the maximum retry backoff duration.
	MaxBackoff time.Duration `mapstructure:"max_backoff"`
	// BackoffMultiplier is the exponential backoff multiplier (must be > 1).
	BackoffMultiplier float64 `mapstructure:"backoff_multiplier"`

	// DBPath is the SQLite database path ("" = no database output).
	DBPath string `mapstructure:"db_path"`
	// CSVPath is the raw comment CSV output path ("" = no CSV output).
	CSVPath string `mapstructure:"csv_path"`
	// DictionaryPath overrides the built-in labeling dictionary with a YAML
	// file ("" = built-in).
	DictionaryPath string `mapstructure:"dictionary_path"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxComments:       500,
		Order:             "time",
		QuotaReserve:      0,
		RateLimit:         5,
		RateBurst:         5,
		Workers:           3,
		MaxRetries:        5,
		InitialBackoff:    1 * time.Second,
		MaxBackoff:        30 * time.Second,
		BackoffMultiplier: 2.0,
	}
}

// Load reads configuration from, in increasing priority: defaults, a YAML
// config file (ytpilot.yaml in the working directory or
// ~/.config/ytpilot/), and YTPILOT_* environment variables. cfgFile, when
// non-empty, names an explicit config file that must exist.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	// Every key needs a default registered so environment-only values are
	// picked up by Unmarshal.
	v.SetDefault("api_key", "")
	v.SetDefault("db_path", "")
	v.SetDefault("csv_path", "")
	v.SetDefault("dictionary_path", "")
	v.SetDefault("max_comments", defaults.MaxComments)
	v.SetDefault("order", defaults.Order)
	v.SetDefault("quota_reserve", defaults.QuotaReserve)
	v.SetDefault("rate_limit", defaults.RateLimit)
	v.SetDefault("rate_burst", defaults.RateBurst)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("max_retries", defaults.MaxRetries)
	v.SetDefault("initial_backoff", defaults.InitialBackoff)
	v.SetDefault("max_backoff", defaults.MaxBackoff)
	v.SetDefault("backoff_multiplier", defaults.BackoffMultiplier)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("ytpilot")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "ytpilot"))
		}
	}

	v.SetEnvPrefix("YTPILOT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// The config file is optional unless named explicitly.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if c.MaxComments < 0 {
		return fmt.Errorf("config: max_comments must be >= 0, got %d", c.MaxComments)
	}
	if c.Order != "time" && c.Order != "relevance" {
		return fmt.Errorf("config: order must be \"time\" or \"relevance\", got %q", c.Order)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("config: rate_limit must be > 0, got %f", c.RateLimit)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("config: workers must be > 0, got %d", c.Workers)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("config: max_retries must be >= 0, got %d", c.MaxRetries)
	}
	if c.BackoffMultiplier <= 1 {
		return fmt.Errorf("config: backoff_multiplier must be > 1, got %f", c.BackoffMultiplier)
	}
	return nil
}

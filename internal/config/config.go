// Package config handles configuration loading for CryptoTrack.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"     yaml:"api"`
	Watch   WatchConfig   `mapstructure:"watch"   yaml:"watch"`
	Search  SearchConfig  `mapstructure:"search"  yaml:"search"`
	News    NewsConfig    `mapstructure:"news"    yaml:"news"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// APIConfig holds upstream pricing API settings, including the base URL
// for each supported provider.
type APIConfig struct {
	Provider   string          `mapstructure:"provider"    yaml:"provider"` // "coingecko" or "coincap"
	VsCurrency string          `mapstructure:"vs_currency" yaml:"vs_currency"`
	TimeoutSec int             `mapstructure:"timeout_sec" yaml:"timeout_sec"`
	Coingecko  EndpointConfig  `mapstructure:"coingecko"   yaml:"coingecko"`
	Coincap    EndpointConfig  `mapstructure:"coincap"     yaml:"coincap"`
}

// EndpointConfig holds the base URL for one upstream API.
type EndpointConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// WatchConfig holds watch-mode settings.
type WatchConfig struct {
	IntervalSec int `mapstructure:"interval_sec" yaml:"interval_sec"`
}

// SearchConfig holds search settings.
type SearchConfig struct {
	Limit int `mapstructure:"limit" yaml:"limit"`
}

// NewsConfig holds RSS headline feed settings.
type NewsConfig struct {
	Feeds []FeedConfig `mapstructure:"feeds" yaml:"feeds"`
	Limit int          `mapstructure:"limit" yaml:"limit"`
}

// FeedConfig identifies one RSS feed.
type FeedConfig struct {
	Name string `mapstructure:"name" yaml:"name"`
	URL  string `mapstructure:"url"  yaml:"url"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Timeout returns the configured API timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSec) * time.Second
}

// WatchInterval returns the configured watch interval as a duration.
func (c *Config) WatchInterval() time.Duration {
	return time.Duration(c.Watch.IntervalSec) * time.Second
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.cryptotrack/config.yaml (home directory)
//
// Environment variables override config file values.
// Format: CRYPTOTRACK_<SECTION>_<KEY>, e.g. CRYPTOTRACK_API_PROVIDER.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".cryptotrack"))

	v.SetEnvPrefix("CRYPTOTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file not required to exist; defaults + env vars suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("CRYPTOTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.provider", "coingecko")
	v.SetDefault("api.vs_currency", "usd")
	v.SetDefault("api.timeout_sec", 10)
	v.SetDefault("api.coingecko.base_url", "https://api.coingecko.com/api/v3")
	v.SetDefault("api.coincap.base_url", "https://api.coincap.io/v2")

	// Watch defaults
	v.SetDefault("watch.interval_sec", 30)

	// Search defaults
	v.SetDefault("search.limit", 10)

	// News defaults
	v.SetDefault("news.limit", 10)
	v.SetDefault("news.feeds", []map[string]string{
		{"name": "CoinDesk", "url": "https://www.coindesk.com/arc/outboundfeeds/rss/"},
		{"name": "CoinTelegraph", "url": "https://cointelegraph.com/rss"},
	})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// Package config loads panelctl settings from an optional YAML file and PANEL_* environment
// variables using viper. Environment variables override the file; command line flags are applied
// on top by the caller.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	fetcher "github.com/spacemagneto/panel-fetcher"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "PANEL"

// ErrMissingBaseURL is returned by Validate when no backend address is configured.
var ErrMissingBaseURL = errors.New("base_url is required")

// Config is the resolved configuration of the console.
type Config struct {
	BaseURL   string        `mapstructure:"base_url"`
	Token     string        `mapstructure:"token"`
	Timeout   time.Duration `mapstructure:"timeout"`
	LogLevel  string        `mapstructure:"log_level"`
	LogFormat string        `mapstructure:"log_format"`
	Redis     RedisConfig   `mapstructure:"redis"`
	Metrics   MetricsConfig `mapstructure:"metrics"`
}

// RedisConfig controls the transition journal. An empty address disables it.
type RedisConfig struct {
	Address    string `mapstructure:"address"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	JournalKey string `mapstructure:"journal_key"`
}

// MetricsConfig controls the Prometheus endpoint. An empty address disables it.
type MetricsConfig struct {
	Address string `mapstructure:"address"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", "http://localhost:8000")
	v.SetDefault("token", "")
	v.SetDefault("timeout", "30s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.journal_key", "panel-fetcher::transitions")
	v.SetDefault("metrics.address", "")
}

// Load reads the configuration. When path is empty no file is read and only defaults and
// environment variables apply; a path that cannot be read is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the fields every command depends on.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}

	parsed, err := url.Parse(c.BaseURL)
	if err != nil || !parsed.IsAbs() {
		return fmt.Errorf("base_url %q must be an absolute URL", c.BaseURL)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}

	return nil
}

// Settings returns the ambient connection settings handed to the HTTP client.
func (c *Config) Settings() fetcher.Settings {
	return fetcher.Settings{
		BaseURL: c.BaseURL,
		Token:   c.Token,
	}
}

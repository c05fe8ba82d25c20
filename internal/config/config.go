package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix       = "CLINIC_SCHEDULER"
	defaultCacheTTL = 24 * time.Hour
)

// Config represents application configuration
type Config struct {
	Store    StoreConfig    `mapstructure:"store"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Log      LogConfig      `mapstructure:"log"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
}

// StoreConfig represents schedule storage configuration
type StoreConfig struct {
	Dir string `mapstructure:"dir"`
}

// HolidaysConfig represents public holiday source configuration
type HolidaysConfig struct {
	Source   string `mapstructure:"source"` // "embedded", "file" or "url"
	File     string `mapstructure:"file"`
	URL      string `mapstructure:"url"` // may contain a {year} placeholder
	CacheTTL string `mapstructure:"cache_ttl"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // empty logs to stderr
	Level string `mapstructure:"level"`
}

// ScheduleConfig represents month generation defaults
type ScheduleConfig struct {
	DefaultNotice string `mapstructure:"default_notice"`
}

// LoadEnvFile loads variables from a .env file into the process environment.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// Load loads configuration from file. Without an explicit path the usual
// locations are searched and a missing file falls back to defaults.
// Every key can be overridden with CLINIC_SCHEDULER_<SECTION>_<KEY>.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.clinic-scheduler")
		v.AddConfigPath("/etc/clinic-scheduler")
	}

	// Read environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.dir", "data")
	v.SetDefault("holidays.source", "embedded")
	v.SetDefault("holidays.file", "")
	v.SetDefault("holidays.url", "")
	v.SetDefault("holidays.cache_ttl", "24h")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("schedule.default_notice", "")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Store.Dir == "" {
		return fmt.Errorf("store.dir is required")
	}

	source := c.Holidays.Source
	if source == "" {
		source = "embedded"
	}

	switch source {
	case "embedded":
	case "file":
		if c.Holidays.File == "" {
			return fmt.Errorf("holidays.file is required for file source")
		}
	case "url":
		if c.Holidays.URL == "" {
			return fmt.Errorf("holidays.url is required for url source")
		}
	default:
		return fmt.Errorf("holidays.source must be 'embedded', 'file' or 'url', got '%s'", source)
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level)
	}

	return nil
}

// GetCacheTTL returns holiday cache TTL duration
func (c *HolidaysConfig) GetCacheTTL() time.Duration {
	if c.CacheTTL == "" {
		return defaultCacheTTL
	}
	duration, err := time.ParseDuration(c.CacheTTL)
	if err != nil || duration <= 0 {
		return defaultCacheTTL
	}
	return duration
}

// GetLevel returns the log level, defaulting to info
func (c *LogConfig) GetLevel() string {
	if c.Level == "" {
		return "info"
	}
	return strings.ToLower(c.Level)
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Store.Dir = os.ExpandEnv(c.Store.Dir)
	c.Holidays.File = os.ExpandEnv(c.Holidays.File)
	c.Log.File = os.ExpandEnv(c.Log.File)
}

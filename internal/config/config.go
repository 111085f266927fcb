// Package config provides the YAML configuration of the catalog builder.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/sane-sg23/internal/logger"
	"github.com/pfrederiksen/sane-sg23/internal/scraper"
	"github.com/pfrederiksen/sane-sg23/internal/storage"
)

// DefaultPath is read when no --config flag is given; a missing file means defaults
const DefaultPath = "sg23-catalog.yaml"

// Configuration validation errors.
var (
	ErrMissingOrigin       = errors.New("origin is required")
	ErrMissingListTemplate = errors.New("list_url_template is required")
	ErrInvalidMonth        = errors.New("month must be between 1 and 12")
	ErrInvalidDayRange     = errors.New("first_day and last_day must be within 1..31 and first_day <= last_day")
	ErrMissingCacheDir     = errors.New("cache_dir is required")
	ErrMissingOutput       = errors.New("output is required")
	ErrInvalidTimeout      = errors.New("timeout_sec must be at least 1")
	ErrInvalidLogLevel     = errors.New("log_level must be one of: debug, info, warn, error")
)

// Config is the complete catalog builder configuration
type Config struct {
	Origin          string `yaml:"origin"`
	ListURLTemplate string `yaml:"list_url_template"` // formatted with year, month, day
	Year            int    `yaml:"year"`
	Month           int    `yaml:"month"`
	FirstDay        int    `yaml:"first_day"`
	LastDay         int    `yaml:"last_day"`

	CacheDir       string `yaml:"cache_dir"`
	Output         string `yaml:"output"`
	CalendarOutput string `yaml:"calendar_output,omitempty"`

	UserAgent  string `yaml:"user_agent"`
	TimeoutSec int    `yaml:"timeout_sec"`
	LogLevel   string `yaml:"log_level"`
}

// DefaultConfig returns the configuration for the SIGGRAPH 2023 program
func DefaultConfig() *Config {
	return &Config{
		Origin:          scraper.DefaultOrigin,
		ListURLTemplate: scraper.DefaultListURLTemplate,
		Year:            scraper.DefaultYear,
		Month:           scraper.DefaultMonth,
		FirstDay:        6,
		LastDay:         12,
		CacheDir:        "local/data",
		Output:          "src/events.json",
		UserAgent:       scraper.UserAgent,
		TimeoutSec:      int(scraper.Timeout / time.Second),
		LogLevel:        "info",
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	path, err := storage.ExpandPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to path as YAML
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return storage.WriteFile(path, data)
}

// Validate checks the configuration for values the pipeline cannot run with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Origin) == "" {
		return ErrMissingOrigin
	}
	if strings.TrimSpace(c.ListURLTemplate) == "" {
		return ErrMissingListTemplate
	}
	if c.Month < 1 || c.Month > 12 {
		return ErrInvalidMonth
	}
	if c.FirstDay < 1 || c.LastDay > 31 || c.FirstDay > c.LastDay {
		return fmt.Errorf("%w: %d..%d", ErrInvalidDayRange, c.FirstDay, c.LastDay)
	}
	if strings.TrimSpace(c.CacheDir) == "" {
		return ErrMissingCacheDir
	}
	if strings.TrimSpace(c.Output) == "" {
		return ErrMissingOutput
	}
	if c.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return ErrInvalidLogLevel
	}
	return nil
}

// Timeout returns the HTTP timeout for page downloads
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// ScraperOptions returns the page locations for the scraper
func (c *Config) ScraperOptions() scraper.Options {
	return scraper.Options{
		Origin:          c.Origin,
		ListURLTemplate: c.ListURLTemplate,
		Year:            c.Year,
		Month:           c.Month,
	}
}

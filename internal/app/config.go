package app

import (
	"fmt"
	"net/url"
	"time"

	"github.com/vk/nutshell/internal/events"
	"go.uber.org/multierr"
)

// Defaults applied by NewConfig.
const (
	DefaultAddr         = ":8080"
	DefaultFetchTimeout = 10 * time.Second
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DeckPath     string // directory of .hcl slide documents; empty uses the built-in deck
	Addr         string
	EventsURL    string
	FetchTimeout time.Duration // zero disables the request timeout
	StorybookURL string        // empty links stories to this program's catalog

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.EventsURL == "" {
		cfg.EventsURL = events.DefaultURL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	var errs []error
	if u, err := url.Parse(cfg.EventsURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("events URL %q must be an absolute URL", cfg.EventsURL))
	}
	if cfg.StorybookURL != "" {
		if u, err := url.Parse(cfg.StorybookURL); err != nil || u.Scheme == "" {
			errs = append(errs, fmt.Errorf("storybook URL %q must be an absolute URL", cfg.StorybookURL))
		}
	}
	if cfg.FetchTimeout < 0 {
		errs = append(errs, fmt.Errorf("fetch timeout must not be negative, got %s", cfg.FetchTimeout))
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("unknown log format %q, want text or json", cfg.LogFormat))
	}
	if len(errs) > 0 {
		return nil, multierr.Combine(errs...)
	}
	return &cfg, nil
}

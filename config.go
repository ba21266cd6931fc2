package radar

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds client settings sourced from the environment.
// Variables are parsed from the RADAR_ prefix.
type Config struct {
	// BaseURL of the API, e.g. "http://api.radar.checkfirst.network".
	BaseURL string `envconfig:"BASE_URL" required:"true"`

	// ContactURL identifies the caller inside the User-Agent header.
	ContactURL string `envconfig:"CONTACT_URL" required:"true"`

	// DefaultVersion pins requests to one framework version when set.
	DefaultVersion string `envconfig:"VERSION" default:""`

	// HTTPTimeout bounds each request end to end.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// Debug turns on request/response dump logging.
	Debug bool `envconfig:"DEBUG" default:"false"`
}

// ConfigFromEnv creates a Config by parsing environment variables.
// Example: RADAR_BASE_URL, RADAR_CONTACT_URL, RADAR_VERSION.
func ConfigFromEnv() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("RADAR", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("RADAR_HTTP_TIMEOUT must be > 0")
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Str("contact_url", cfg.ContactURL).
		Str("default_version", cfg.DefaultVersion).
		Dur("http_timeout", cfg.HTTPTimeout).
		Bool("debug", cfg.Debug).
		Msg("configuration loaded")

	return &cfg, nil
}

// NewClient builds a Client from the config. Options given here are applied
// after the config-derived ones and take precedence.
func (cfg *Config) NewClient(opts ...Option) *Client {
	base := []Option{WithHTTPTimeout(cfg.HTTPTimeout)}
	if cfg.DefaultVersion != "" {
		base = append(base, WithDefaultVersion(cfg.DefaultVersion))
	}
	if cfg.Debug {
		base = append(base, WithDebugLogging(true))
	}
	return New(cfg.BaseURL, cfg.ContactURL, append(base, opts...)...)
}

// NewFromEnv constructs a Client entirely from RADAR_* environment
// variables. RADAR_BASE_URL and RADAR_CONTACT_URL are required.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return cfg.NewClient(opts...), nil
}

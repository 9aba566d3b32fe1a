package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ssrkit/ssrclient"
	"github.com/ssrkit/ssrclient/logger"
)

// ClientConfig is the file/env representation of ssrclient defaults.
type ClientConfig struct {
	// BaseURL is the upstream base URL. Leave empty to derive it from the
	// incoming request at client-construction time.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// Timeout is the per-request timeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers for every client built from this config.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Query are default query parameters.
	Query map[string]string `yaml:"query" mapstructure:"query"`

	// ForwardHeaders restricts which incoming-request headers are forwarded.
	ForwardHeaders []string `yaml:"forward_headers" mapstructure:"forward_headers"`

	// H2C enables cleartext HTTP/2 toward the upstream.
	H2C bool `yaml:"h2c" mapstructure:"h2c"`

	// TLS configures the upstream transport.
	TLS *ssrclient.TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Logging configures the library logger.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`

	// Telemetry configures OpenTelemetry export for outgoing calls.
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// TelemetryConfig configures tracing and metrics export.
type TelemetryConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// ApplyDefaults fills in zero-value fields.
func (c *ClientConfig) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.Telemetry.Endpoint == "" {
		c.Telemetry.Endpoint = "localhost:4318"
	}
	if c.Telemetry.SampleRate == 0 {
		c.Telemetry.SampleRate = 1.0
	}
	c.Logging.ApplyDefaults()
}

// Validate checks the configuration via struct tags plus the nested
// logging and TLS rules.
func (c *ClientConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// Options converts the configuration into factory options.
func (c *ClientConfig) Options() ssrclient.Options {
	return ssrclient.Options{
		BaseURL:        c.BaseURL,
		Timeout:        c.Timeout,
		Headers:        c.Headers,
		Query:          c.Query,
		ForwardHeaders: c.ForwardHeaders,
		H2C:            c.H2C,
		TLS:            c.TLS,
	}
}

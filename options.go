package ssrclient

import (
	"net/http"
	"time"

	"github.com/ssrkit/ssrclient/logger"
)

const defaultTimeout = 30 * time.Second

// Options configures the client produced by New.
type Options struct {
	// BaseURL is prepended to relative request paths. When empty and an
	// incoming request is bound, it is derived from that request's scheme
	// and Host header.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout is the per-request timeout of the default adapter. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers for all requests made by the client.
	// They override forwarded incoming-request headers and library defaults.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Query are default query parameters added to every request.
	Query map[string]string `yaml:"query" mapstructure:"query"`

	// ForwardHeaders restricts which incoming-request headers are copied
	// into the client defaults. Empty means all except hop-by-hop headers
	// and Host.
	ForwardHeaders []string `yaml:"forward_headers" mapstructure:"forward_headers"`

	// Auth configures default authentication applied to all requests.
	// Individual requests can override this.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// TLS configures the default adapter's transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// H2C enables cleartext HTTP/2 on the default adapter.
	H2C bool `yaml:"h2c" mapstructure:"h2c"`

	// RewriteRequest are request interceptors registered, in order, on the
	// new client before ModifyClient runs.
	RewriteRequest []RequestInterceptor `yaml:"-" mapstructure:"-"`

	// ModifyClient is invoked exactly once with the constructed client; its
	// return value becomes the client handed back to the caller.
	ModifyClient func(*Client) *Client `yaml:"-" mapstructure:"-"`

	// Adapter overrides the default HTTP adapter.
	Adapter Doer `yaml:"-" mapstructure:"-"`

	// DisableDefaultAdapter makes construction fail unless an adapter is
	// supplied explicitly. Used by callers that must not fall back to a
	// real network transport.
	DisableDefaultAdapter bool `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (o *Options) ApplyDefaults() {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
}

// Validate checks that the options are consistent.
func (o *Options) Validate() error {
	if o.Timeout <= 0 {
		return NewConfigError("timeout must be positive")
	}
	if o.TLS != nil {
		if err := o.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FactoryOption binds per-invocation collaborators to New.
type FactoryOption func(*factoryState)

type factoryState struct {
	req        *http.Request
	writer     http.ResponseWriter
	adapter    Doer
	adapterSet bool
	log        *logger.Logger
}

// WithIncomingRequest binds the server-side request the client is created
// for. Its headers seed the client defaults and its scheme and host derive
// the base URL.
func WithIncomingRequest(req *http.Request) FactoryOption {
	return func(s *factoryState) { s.req = req }
}

// WithResponseWriter binds the server response that relayed Set-Cookie
// headers are appended to.
func WithResponseWriter(w http.ResponseWriter) FactoryOption {
	return func(s *factoryState) { s.writer = w }
}

// WithAdapter overrides the HTTP adapter for this invocation. Takes
// precedence over Options.Adapter.
func WithAdapter(d Doer) FactoryOption {
	return func(s *factoryState) {
		s.adapter = d
		s.adapterSet = true
	}
}

// WithLogger sets the logger used by the client.
func WithLogger(l *logger.Logger) FactoryOption {
	return func(s *factoryState) { s.log = l }
}

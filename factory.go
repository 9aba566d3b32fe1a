package ssrclient

import (
	"net/http"
	"strings"

	"github.com/ssrkit/ssrclient/logger"
)

// New creates a client for one server-side request. The incoming request and
// response writer bindings are optional: without them no base URL is derived,
// no headers are forwarded, and cookie relay is skipped.
func New(opts Options, fopts ...FactoryOption) (*Client, error) {
	opts.ApplyDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var st factoryState
	for _, fo := range fopts {
		fo(&st)
	}

	log := st.log
	if log == nil {
		log = logger.NewDefault("ssrclient")
	}

	adapter, err := resolveAdapter(opts, st)
	if err != nil {
		return nil, err
	}

	baseURL := opts.BaseURL
	if baseURL == "" && st.req != nil {
		baseURL = deriveBaseURL(st.req)
	}

	defaults := libraryDefaults()
	if st.req != nil {
		forwardIncoming(defaults, st.req, opts.ForwardHeaders)
	}
	for k, v := range opts.Headers {
		defaults[http.CanonicalHeaderKey(k)] = v
	}

	c := &Client{
		adapter:  adapter,
		baseURL:  baseURL,
		defaults: defaults,
		query:    opts.Query,
		auth:     opts.Auth,
		writer:   st.writer,
		log:      log,
	}

	c.UseResponse(c.relayCookies)

	for _, ic := range opts.RewriteRequest {
		c.UseRequest(ic)
	}

	if opts.ModifyClient != nil {
		c = opts.ModifyClient(c)
		if c == nil {
			return nil, NewConfigError("modify hook returned nil client")
		}
	}

	log.Debug("client created", logger.Fields(
		"base_url", baseURL,
		"server_bound", st.req != nil,
	))

	return c, nil
}

// resolveAdapter picks the HTTP adapter: factory option, then Options.Adapter,
// then the default adapter unless disabled.
func resolveAdapter(opts Options, st factoryState) (Doer, error) {
	adapter := opts.Adapter
	if st.adapterSet {
		adapter = st.adapter
	}
	if adapter == nil {
		if st.adapterSet || opts.DisableDefaultAdapter {
			return nil, NewConfigError("no HTTP adapter supplied")
		}
		return buildAdapter(opts)
	}
	return adapter, nil
}

// deriveBaseURL computes scheme://host from the request the server is
// handling. TLS termination at a fronting proxy is honored via
// X-Forwarded-Proto.
func deriveBaseURL(req *http.Request) string {
	if req.Host == "" {
		return ""
	}
	scheme := "http"
	if req.TLS != nil || strings.EqualFold(req.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + req.Host
}

// libraryDefaults returns the headers every client starts from.
func libraryDefaults() map[string]string {
	return map[string]string{
		"Accept":     "application/json, text/plain, */*",
		"User-Agent": "ssrclient/" + Version,
	}
}

// hop-by-hop headers per RFC 9110 §7.6.1; never forwarded upstream.
var hopByHopHeaders = map[string]struct{}{
	"Connection":          {},
	"Keep-Alive":          {},
	"Proxy-Authenticate":  {},
	"Proxy-Authorization": {},
	"Proxy-Connection":    {},
	"Te":                  {},
	"Trailer":             {},
	"Transfer-Encoding":   {},
	"Upgrade":             {},
}

// forwardIncoming copies the incoming request's headers into the defaults.
// An allowlist restricts forwarding; otherwise everything except hop-by-hop
// headers goes through. Multi-value headers are flattened to their first
// value, matching the single-value default map.
func forwardIncoming(defaults map[string]string, req *http.Request, allow []string) {
	if len(allow) > 0 {
		for _, name := range allow {
			key := http.CanonicalHeaderKey(name)
			if v := req.Header.Get(key); v != "" {
				defaults[key] = v
			}
		}
		return
	}
	for k, vs := range req.Header {
		if _, skip := hopByHopHeaders[k]; skip || len(vs) == 0 {
			continue
		}
		defaults[k] = vs[0]
	}
}

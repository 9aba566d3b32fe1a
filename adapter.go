package ssrclient

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"

	"golang.org/x/net/http2"
)

// Doer issues HTTP requests. *http.Client satisfies it; tests and
// instrumentation layers wrap it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// buildAdapter constructs the default *http.Client from the options.
func buildAdapter(opts Options) (Doer, error) {
	if opts.H2C {
		// Cleartext HTTP/2 for upstreams that speak h2c (internal gRPC
		// gateways, sidecars). The standard transport only negotiates h2
		// over TLS.
		return &http.Client{
			Transport: &http2.Transport{
				AllowHTTP: true,
				DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
					return (&net.Dialer{}).DialContext(ctx, network, addr)
				},
			},
			Timeout: opts.Timeout,
		}, nil
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	if opts.TLS != nil {
		tlsCfg, err := opts.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   opts.Timeout,
	}, nil
}

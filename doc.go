// Package ssrclient builds per-request HTTP clients for server-side
// rendering. Each call to New produces an isolated client whose default
// headers are merged from the library defaults, the incoming request (when
// one is bound), and caller options. Set-Cookie headers on upstream
// responses are relayed to the bound http.ResponseWriter and accumulated
// into the client's own Cookie header so follow-up calls on the same client
// resend them.
//
// # Server context
//
//	client, err := ssrclient.New(ssrclient.Options{
//	    Headers: map[string]string{"X-App": "storefront"},
//	}, ssrclient.WithIncomingRequest(req), ssrclient.WithResponseWriter(w))
//
//	resp, err := client.Get(ctx, "/api/session")
//
// # Browser-less / worker context
//
// Omitting the request and writer bindings is valid: no base URL is derived,
// no headers are forwarded, and cookie relay is skipped.
//
//	client, err := ssrclient.New(ssrclient.Options{BaseURL: "https://api.example.com"})
//
// Subpackages:
//
//   - ginssr: gin middleware that binds a client to each handled request
//   - config: file/env configuration loading for client defaults
//   - observability: OpenTelemetry tracing and metrics for outgoing calls
//   - logger: structured logging used across the library
package ssrclient

// Version is the library version reported in the default User-Agent header.
const Version = "0.2.0"

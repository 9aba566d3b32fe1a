// Package config loads ssrclient defaults from config.yml and .env files.
//
// SSR services typically share one set of upstream-client defaults (base
// URL, timeout, standard headers) across all per-request clients; this
// package turns a file/env configuration into an ssrclient.Options value
// those services hand to ssrclient.New or ginssr.Middleware.
//
//	cfg, err := config.Load("storefront")
//	client, err := ssrclient.New(cfg.Options(), ssrclient.WithIncomingRequest(req))
package config

// Package observability provides OpenTelemetry tracing and metrics for
// outgoing HTTP calls. InitTracer and InitMeter set up OTLP export;
// Instrument wraps an HTTP adapter so every request made through it is
// traced and measured.
//
//	tp, _ := observability.InitTracer(ctx, observability.DefaultTracerConfig("storefront"))
//	metrics, _ := observability.NewMetrics(otel.Meter("storefront"))
//	adapter := observability.Instrument(http.DefaultClient, otel.Tracer("storefront"), metrics)
//
//	client, _ := ssrclient.New(opts, ssrclient.WithAdapter(adapter))
package observability

package observability

import (
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Doer issues HTTP requests. It mirrors the adapter interface of the root
// package so an instrumented adapter can be passed to ssrclient.WithAdapter.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Instrument wraps an HTTP adapter so every request through it is traced and
// measured. Either tracer or metrics may be nil to disable that signal.
func Instrument(next Doer, tracer trace.Tracer, metrics *Metrics) Doer {
	return &instrumentedDoer{next: next, tracer: tracer, metrics: metrics}
}

type instrumentedDoer struct {
	next    Doer
	tracer  trace.Tracer
	metrics *Metrics
}

func (d *instrumentedDoer) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	var span trace.Span
	if d.tracer != nil {
		ctx, span = d.tracer.Start(ctx, SpanHTTPRequest,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("http.method", req.Method),
				attribute.String("http.url", req.URL.String()),
			),
		)
		defer span.End()
		req = req.WithContext(ctx)
	}

	start := time.Now()
	resp, err := d.next.Do(req)
	elapsed := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}

	if d.metrics != nil {
		attrs := metric.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.status_code", strconv.Itoa(status)),
		)
		d.metrics.requests.Add(ctx, 1, attrs)
		d.metrics.duration.Record(ctx, float64(elapsed.Milliseconds()), attrs)
	}

	if span != nil {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int("http.status_code", status))
			if status >= 400 {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
		}
	}

	return resp, err
}

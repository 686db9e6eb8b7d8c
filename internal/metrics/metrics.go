// Package metrics wires an OpenTelemetry meter to a Prometheus exporter and
// instruments HTTP handlers with it.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	export "go.opentelemetry.io/otel/sdk/export/metric"
	"go.opentelemetry.io/otel/sdk/metric/aggregator/histogram"
	controller "go.opentelemetry.io/otel/sdk/metric/controller/basic"
	processor "go.opentelemetry.io/otel/sdk/metric/processor/basic"
	selector "go.opentelemetry.io/otel/sdk/metric/selector/simple"
)

var (
	methodKey = attribute.Key("http.method")
	routeKey  = attribute.Key("http.route")
	statusKey = attribute.Key("http.status_code")
)

// Metrics owns the exporter and the HTTP instruments.
type Metrics struct {
	exporter *prometheus.Exporter
	requests metric.Int64Counter
	latency  metric.Float64ValueRecorder
}

// New builds a pull-based Prometheus exporter. Its MeterProvider is also
// exposed so callers may install it globally.
func New(serviceName string) (*Metrics, error) {
	config := prometheus.Config{}
	c := controller.New(
		processor.New(
			selector.NewWithHistogramDistribution(
				histogram.WithExplicitBoundaries(config.DefaultHistogramBoundaries),
			),
			export.CumulativeExportKindSelector(),
			processor.WithMemory(true),
		),
	)

	exporter, err := prometheus.New(config, c)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize prometheus exporter: %w", err)
	}

	meter := exporter.MeterProvider().Meter(serviceName)
	m := &Metrics{exporter: exporter}

	m.requests, err = meter.NewInt64Counter(
		"http.server.request_count",
		metric.WithDescription("Count of completed requests, by route, HTTP method and response status"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request counter: %w", err)
	}

	m.latency, err = meter.NewFloat64ValueRecorder(
		"http.server.duration_ms",
		metric.WithDescription("Request latency in milliseconds, by route and HTTP method"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create latency recorder: %w", err)
	}

	return m, nil
}

// MeterProvider returns the exporter's provider.
func (m *Metrics) MeterProvider() metric.MeterProvider {
	return m.exporter.MeterProvider()
}

// Handler serves the Prometheus scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return m.exporter
}

// Middleware records one count and one latency sample per request. The
// route label is the chi pattern so path ids do not explode cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		labels := []attribute.KeyValue{
			methodKey.String(r.Method),
			routeKey.String(route),
		}
		m.latency.Record(r.Context(), float64(time.Since(start).Microseconds())/1000, labels...)
		m.requests.Add(r.Context(), 1, append(labels, statusKey.String(strconv.Itoa(status)))...)
	})
}

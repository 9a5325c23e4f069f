package observability

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records pool lifecycle metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRegistration records one entry registration of the given kind.
	RecordRegistration(ctx context.Context, kind string)

	// RecordClear records a bulk release of entries.
	RecordClear(ctx context.Context, entries int, durationMs float64, failures int)

	// RecordRemoveLast records a single-entry rollback.
	RecordRemoveLast(ctx context.Context, failed bool)

	// RecordTransfer records an ownership transfer of entries between pools.
	RecordTransfer(ctx context.Context, entries int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	registrations metric.Int64Counter
	destructions  metric.Int64Counter
	destroyErrors metric.Int64Counter
	clearLatency  metric.Float64Histogram
	clearEntries  metric.Int64Histogram
	transferred   metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("objpool")

	registrations, err := meter.Int64Counter("objpool.registrations",
		metric.WithDescription("Number of entries registered"),
	)
	if err != nil {
		return nil, err
	}

	destructions, err := meter.Int64Counter("objpool.destructions",
		metric.WithDescription("Number of entries released"),
	)
	if err != nil {
		return nil, err
	}

	destroyErrors, err := meter.Int64Counter("objpool.destroy.errors",
		metric.WithDescription("Number of failed release operations"),
	)
	if err != nil {
		return nil, err
	}

	clearLatency, err := meter.Float64Histogram("objpool.clear.latency_ms",
		metric.WithDescription("Bulk release latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	clearEntries, err := meter.Int64Histogram("objpool.clear.entries",
		metric.WithDescription("Entries released per bulk release"),
	)
	if err != nil {
		return nil, err
	}

	transferred, err := meter.Int64Counter("objpool.transfer.entries",
		metric.WithDescription("Entries moved between pools"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		registrations: registrations,
		destructions:  destructions,
		destroyErrors: destroyErrors,
		clearLatency:  clearLatency,
		clearEntries:  clearEntries,
		transferred:   transferred,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordRegistration records one entry registration.
func (m *otelMetrics) RecordRegistration(ctx context.Context, kind string) {
	m.registrations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

// RecordClear records a bulk release.
func (m *otelMetrics) RecordClear(ctx context.Context, entries int, durationMs float64, failures int) {
	m.destructions.Add(ctx, int64(entries))
	m.clearLatency.Record(ctx, durationMs)
	m.clearEntries.Record(ctx, int64(entries))
	if failures > 0 {
		m.destroyErrors.Add(ctx, int64(failures))
	}
}

// RecordRemoveLast records a single-entry rollback.
func (m *otelMetrics) RecordRemoveLast(ctx context.Context, failed bool) {
	m.destructions.Add(ctx, 1)
	if failed {
		m.destroyErrors.Add(ctx, 1)
	}
}

// RecordTransfer records an ownership transfer.
func (m *otelMetrics) RecordTransfer(ctx context.Context, entries int) {
	m.transferred.Add(ctx, int64(entries))
}

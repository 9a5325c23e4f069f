package observability

import "context"

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordRegistration does nothing.
func (NoopMetrics) RecordRegistration(_ context.Context, _ string) {}

// RecordClear does nothing.
func (NoopMetrics) RecordClear(_ context.Context, _ int, _ float64, _ int) {}

// RecordRemoveLast does nothing.
func (NoopMetrics) RecordRemoveLast(_ context.Context, _ bool) {}

// RecordTransfer does nothing.
func (NoopMetrics) RecordTransfer(_ context.Context, _ int) {}

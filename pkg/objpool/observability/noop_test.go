package observability

import (
	"context"
	"testing"
)

func TestNoopMetrics_AllMethodsSafe(t *testing.T) {
	var m MetricsRecorder = NoopMetrics{}
	ctx := context.Background()

	// Must not panic and must not require any provider setup.
	m.RecordRegistration(ctx, "scalar")
	m.RecordClear(ctx, 10, 1.5, 2)
	m.RecordRemoveLast(ctx, true)
	m.RecordRemoveLast(ctx, false)
	m.RecordTransfer(ctx, 3)
}

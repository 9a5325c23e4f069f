// Package observability provides structured logging and metrics for
// objpool: slog-based lifecycle logging and OpenTelemetry metrics.
//
// All features are opt-in. The logging helpers are nil-safe and the
// metrics recorder has a no-op implementation, so an unconfigured pool
// pays almost nothing for them.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger derives a pool-scoped logger carrying the pool_id
// field. Every record logged through the helpers below inherits it.
// A nil logger stays nil, which disables logging.
func EnrichLogger(logger *slog.Logger, poolID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("pool_id", poolID),
	)
}

// LogClear logs a completed bulk release.
func LogClear(logger *slog.Logger, entries int, durationMs float64, failures int) {
	if logger == nil {
		return
	}
	logger.Debug("pool cleared",
		slog.Int("entries", entries),
		slog.Float64("duration_ms", durationMs),
		slog.Int("failures", failures),
	)
}

// LogRemoveLast logs a successful single-entry rollback.
func LogRemoveLast(logger *slog.Logger, kind string) {
	if logger == nil {
		return
	}
	logger.Debug("last entry released",
		slog.String("kind", kind),
	)
}

// LogDestroyError logs a failed release operation.
func LogDestroyError(logger *slog.Logger, index int, err error) {
	if logger == nil {
		return
	}
	logger.Error("release failed",
		slog.Int("index", index),
		slog.String("error", err.Error()),
	)
}

// LogTransfer logs an ownership transfer into the logger's pool.
func LogTransfer(logger *slog.Logger, srcID string, entries int) {
	if logger == nil {
		return
	}
	logger.Debug("ownership transferred",
		slog.String("source_pool_id", srcID),
		slog.Int("entries", entries),
	)
}

// LogJournalError logs a journal append failure (non-fatal).
func LogJournalError(logger *slog.Logger, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("journal append failed",
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}

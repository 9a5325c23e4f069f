package objpool

import (
	"log/slog"
	"sync"

	"github.com/randalmurphal/objpool/pkg/objpool/journal"
	"github.com/randalmurphal/objpool/pkg/objpool/observability"
)

// Option configures a pool at construction time.
type Option func(*Pool)

// WithLocker sets the mutual-exclusion primitive serializing entry
// mutations. Default: a spinlock.SpinLock. Any sync.Locker works; use
// a *sync.Mutex when critical sections may be preempted for long, or a
// *spinlock.TicketLock when FIFO fairness matters under contention.
// A nil locker is ignored.
func WithLocker(l sync.Locker) Option {
	return func(p *Pool) {
		if l != nil {
			p.mu = l
		}
	}
}

// WithLogger sets the logger for pool lifecycle events.
// Default: slog.Default(). Pass nil to disable logging entirely.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pool) {
		p.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
// Default: observability.NoopMetrics. Use
// observability.NewMetricsRecorder() for OpenTelemetry metrics.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(p *Pool) {
		if m != nil {
			p.metrics = m
		}
	}
}

// WithJournal sets a lifecycle journal recording registrations,
// releases, and transfers for leak diagnostics. Default: none.
// Journal failures are logged, never propagated; closing the store is
// the caller's responsibility.
func WithJournal(s journal.Store) Option {
	return func(p *Pool) {
		p.journal = s
	}
}

// WithCapacity pre-sizes the entry sequence for a known registration
// count, avoiding growth inside the critical section.
func WithCapacity(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.entries = make([]entry, 0, n)
		}
	}
}

// WithID overrides the generated pool identifier.
// Empty IDs are ignored.
func WithID(id string) Option {
	return func(p *Pool) {
		if id != "" {
			p.id = id
		}
	}
}

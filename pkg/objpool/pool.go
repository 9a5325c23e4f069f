package objpool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/randalmurphal/objpool/pkg/objpool/journal"
	"github.com/randalmurphal/objpool/pkg/objpool/observability"
	"github.com/randalmurphal/objpool/pkg/objpool/spinlock"
)

// destroyFunc releases one entry's owned value.
// The value's static type is recovered inside the closure, so the pool
// itself never needs to know what it is holding.
type destroyFunc func(any) error

// entry pairs an owned value with the release operation bound for it at
// registration time.
type entry struct {
	obj     any
	kind    Kind
	destroy destroyFunc
}

// Pool owns a heterogeneous set of values and guarantees each one's
// release operation runs exactly once: individually via RemoveLast, in
// bulk via Clear, or through Close.
//
// All mutations of the entry sequence are serialized by a single
// injected sync.Locker (a spin lock by default; see WithLocker).
// Acquire is the one exception, documented on the method.
//
// A Pool must not be copied after first use.
type Pool struct {
	id      string
	mu      sync.Locker
	entries []entry

	logger  *slog.Logger
	metrics observability.MetricsRecorder
	journal journal.Store
}

// New creates an empty pool.
//
// The default configuration uses a spinlock.SpinLock, slog.Default()
// for logging, no-op metrics, and no journal.
func New(opts ...Option) *Pool {
	p := &Pool{
		id:      fmt.Sprintf("pool-%s", uuid.New().String()[:8]),
		mu:      new(spinlock.SpinLock),
		logger:  slog.Default(),
		metrics: observability.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = observability.EnrichLogger(p.logger, p.id)
	return p
}

// ID returns the pool's identifier, used in logs and journal rows.
func (p *Pool) ID() string {
	return p.id
}

// Len returns the number of entries currently owned by the pool.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

// add appends an erased entry under the lock. Journal and metrics hooks
// run outside the critical section.
func (p *Pool) add(e entry) {
	p.mu.Lock()
	p.entries = append(p.entries, e)
	p.mu.Unlock()

	p.metrics.RecordRegistration(context.Background(), string(e.kind))
	p.journalAppend(journal.KindRegistered, fmt.Sprintf("%T", e.obj))
}

// Clear releases every entry in insertion order and empties the pool.
// Calling Clear on an empty pool is a no-op.
//
// If a release operation fails, Clear keeps releasing the remaining
// entries so a single failure cannot leak everything behind it. All
// failures are wrapped in *DestroyError and joined into the returned
// error; errors.As can recover the individual entries.
func (p *Pool) Clear() error {
	done := observability.TimedOperation()

	n, errs := p.clearLocked()
	if n == 0 {
		return nil
	}

	durationMs := done()
	p.metrics.RecordClear(context.Background(), n, durationMs, len(errs))
	for _, err := range errs {
		var de *DestroyError
		if errors.As(err, &de) {
			observability.LogDestroyError(p.logger, de.Index, de.Err)
		}
	}
	observability.LogClear(p.logger, n, durationMs, len(errs))
	p.journalAppend(journal.KindCleared, fmt.Sprintf("%d entries", n))

	return errors.Join(errs...)
}

// clearLocked detaches the entry sequence and releases it under the
// lock. The unlock is deferred and the sequence is detached before any
// release runs, so a panicking release leaves the pool empty with the
// lock free. The backing array is reattached only after every release
// completed.
func (p *Pool) clearLocked() (n int, errs []error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	owned := p.entries
	p.entries = nil
	for i := range owned {
		e := &owned[i]
		if err := e.destroy(e.obj); err != nil {
			errs = append(errs, &DestroyError{PoolID: p.id, Index: i, Kind: e.kind, Err: err})
		}
		// Drop the reference as soon as the entry is released.
		*e = entry{}
	}
	p.entries = owned[:0]
	return len(owned), errs
}

// RemoveLast releases only the most recently added entry and removes
// it. Calling RemoveLast on an empty pool is a no-op. It exists for
// error-path unwinding: the last registration can be rolled back
// without touching anything registered before it.
func (p *Pool) RemoveLast() error {
	e, index, err, ok := p.removeLastLocked()
	if !ok {
		return nil
	}

	failed := err != nil
	p.metrics.RecordRemoveLast(context.Background(), failed)
	p.journalAppend(journal.KindRemoved, fmt.Sprintf("%T", e.obj))
	if failed {
		observability.LogDestroyError(p.logger, index, err)
		return &DestroyError{PoolID: p.id, Index: index, Kind: e.kind, Err: err}
	}
	observability.LogRemoveLast(p.logger, string(e.kind))
	return nil
}

// removeLastLocked pops and releases the newest entry under the lock.
// The entry is removed before its release runs and the unlock is
// deferred, so a panicking release leaves the pool consistent with the
// lock free. ok is false when the pool was empty.
func (p *Pool) removeLastLocked() (e entry, index int, err error, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.entries) == 0 {
		return entry{}, 0, nil, false
	}
	index = len(p.entries) - 1
	e = p.entries[index]
	p.entries[index] = entry{}
	p.entries = p.entries[:index]
	err = e.destroy(e.obj)
	return e, index, err, true
}

// Acquire moves every entry owned by src into p, appended after p's
// existing entries in src's insertion order, and leaves src empty. No
// release operation runs; this is a pure ownership transfer. It lets a
// nested unit of work hand everything it allocated to a longer-lived
// pool on success while remaining independently clearable on failure.
//
// Acquire takes no locks on either pool. The caller must guarantee
// that no other goroutine touches p or src for the duration of the
// call, e.g. by only transferring during single-threaded setup or
// teardown phases. Acquiring from a nil pool or from p itself is a
// no-op.
func (p *Pool) Acquire(src *Pool) {
	if src == nil || src == p {
		return
	}
	n := len(src.entries)
	if n == 0 {
		return
	}
	p.entries = append(p.entries, src.entries...)
	src.entries = nil

	p.metrics.RecordTransfer(context.Background(), n)
	observability.LogTransfer(p.logger, src.id, n)
	p.journalAppend(journal.KindTransferred, fmt.Sprintf("%d entries from %s", n, src.id))
	src.journalAppend(journal.KindTransferred, fmt.Sprintf("%d entries to %s", n, p.id))
}

// Close releases every owned entry, exactly like Clear. It implements
// io.Closer so a pool can be wired into existing teardown paths. The
// pool remains usable after Close.
func (p *Pool) Close() error {
	return p.Clear()
}

// journalAppend records a lifecycle event if a journal is configured.
// Journal failures never fail the pool operation; they are logged and
// dropped.
func (p *Pool) journalAppend(kind journal.Kind, detail string) {
	if p.journal == nil {
		return
	}
	if err := p.journal.Append(p.id, kind, detail); err != nil {
		observability.LogJournalError(p.logger, string(kind), err)
	}
}

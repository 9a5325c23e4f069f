// Package journal provides an optional audit trail of pool lifecycle
// events for leak diagnostics.
//
// A pool configured with a journal records every registration,
// release, and transfer. When a process leaks resources, listing a
// pool's events shows what was registered and never released.
package journal

import (
	"errors"
	"time"
)

// Kind classifies a lifecycle event.
type Kind string

// Lifecycle event kinds.
const (
	// KindRegistered records an entry entering a pool's ownership.
	KindRegistered Kind = "registered"

	// KindRemoved records a single-entry rollback.
	KindRemoved Kind = "removed"

	// KindCleared records a bulk release.
	KindCleared Kind = "cleared"

	// KindTransferred records entries moving between pools.
	KindTransferred Kind = "transferred"
)

// Event is one recorded lifecycle event.
type Event struct {
	// PoolID identifies the pool the event belongs to.
	PoolID string
	// Sequence orders events within a pool, starting at 1.
	Sequence int
	// Kind classifies the event.
	Kind Kind
	// Detail is free-form context: the registered value's type,
	// entry counts, or the peer pool of a transfer.
	Detail string
	// Timestamp is when the event was recorded, in UTC.
	Timestamp time.Time
}

// Store persists lifecycle events.
// Implementations must be safe for concurrent use.
type Store interface {
	// Append records an event for a pool, assigning the next sequence.
	Append(poolID string, kind Kind, detail string) error

	// List returns all events for a pool, ordered by sequence.
	// Returns an empty slice (not an error) if the pool has no events.
	List(poolID string) ([]Event, error)

	// DeletePool removes all events for a pool.
	// Returns nil if the pool has no events.
	DeletePool(poolID string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for journal operations.
var (
	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("journal store closed")
)

// Package spinlock provides lightweight spin-wait mutual exclusion primitives.
//
// Both locks implement sync.Locker, so they are interchangeable with
// sync.Mutex anywhere a Locker is accepted. They are intended for very
// short critical sections (a few pointer operations) where parking a
// goroutine on a blocking mutex costs more than briefly spinning.
//
// SpinLock is unfair: under contention, acquisition order is whatever the
// scheduler produces. TicketLock grants the lock in strict FIFO order at
// the cost of an extra atomic word.
package spinlock

import (
	"runtime"
	"sync/atomic"
)

// SpinLock is a test-and-set spin lock. The zero value is an unlocked lock.
//
// A SpinLock must not be copied after first use.
type SpinLock struct {
	state atomic.Uint32
}

// Lock acquires the lock, spinning until it is available.
// Gosched is called between attempts so a contended lock does not
// starve the holder's goroutine of its P.
func (l *SpinLock) Lock() {
	for !l.state.CompareAndSwap(0, 1) {
		runtime.Gosched()
	}
}

// TryLock acquires the lock without spinning.
// Returns true if the lock was acquired.
func (l *SpinLock) TryLock() bool {
	return l.state.CompareAndSwap(0, 1)
}

// Unlock releases the lock.
// Calling Unlock on an unlocked SpinLock leaves it unlocked.
func (l *SpinLock) Unlock() {
	l.state.Store(0)
}

// TicketLock is a FIFO-fair spin lock. Each caller takes a ticket and
// spins until its ticket is served, so waiters acquire the lock in
// arrival order. The zero value is an unlocked lock.
//
// A TicketLock must not be copied after first use.
type TicketLock struct {
	next    atomic.Uint64
	serving atomic.Uint64
}

// Lock takes the next ticket and spins until it is served.
func (l *TicketLock) Lock() {
	ticket := l.next.Add(1) - 1
	for l.serving.Load() != ticket {
		runtime.Gosched()
	}
}

// Unlock serves the next ticket.
func (l *TicketLock) Unlock() {
	l.serving.Add(1)
}

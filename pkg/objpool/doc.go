/*
Package objpool provides a thread-safe, type-erased ownership pool.

# Overview

A Pool takes ownership of heterogeneous values as they are created
during a unit of work (a request, a query, a job) and guarantees each
one's release operation runs exactly once, without the caller tracking
every value's type. The release operation is bound at the registration
call site, where the static type is known, and erased into the pool as
an opaque closure, so the pool itself is never generic over what it
holds.

The library is a Go rendering of the object-pool idiom common in
database and query engines, with:
  - Type-safe generic registration, erased storage
  - An injectable sync.Locker (spin lock by default)
  - Insertion-order bulk release, LIFO single rollback
  - Lock-free ownership transfer between pools
  - OpenTelemetry metrics and an optional lifecycle journal

# Basic Usage

Register values inline with construction and release everything at
once:

	pool := objpool.New()
	defer pool.Close()

	f := objpool.Add(pool, mustOpen("data.bin"), (*os.File).Close)
	buf := objpool.AddSlice(pool, newBuffers(3), releaseBuffer)
	objpool.AddFunc(pool, func() error { return cache.Invalidate(key) })

	// ... use f and buf; Close releases all three in insertion order.

Add returns its argument unchanged, so registration nests anywhere an
expression fits. AddCloser binds Close for anything implementing
io.Closer.

# Rollback

RemoveLast releases only the most recent registration, supporting
error-path unwinding:

	a := objpool.Add(pool, newA(), releaseA)
	b := objpool.Add(pool, newB(), releaseB)
	if err := wire(a, b); err != nil {
	    pool.RemoveLast() // releases b; a stays live
	    return err
	}

# Scoped Handoff

A nested unit of work owns what it allocates until it succeeds, then
hands everything to a longer-lived pool:

	child := objpool.New()
	defer child.Close() // releases everything if we bail early

	populate(child)
	if ok {
	    parent.Acquire(child) // child is now empty; nothing released
	}

Acquire takes no locks on either pool; the caller must guarantee
exclusive access to both for the duration of the call.

# Failure Semantics

Release operations may return errors. Clear keeps going past a failed
entry so one failure cannot leak the entries behind it, and joins every
failure into the returned error; inspect individual entries with
errors.As on *DestroyError.

# Thread Safety

Registration, Clear, RemoveLast, Len, and Close are safe for
concurrent use; all entry mutations run inside a single injected
sync.Locker. The default spin lock suits the short critical sections
involved; substitute a *sync.Mutex or *spinlock.TicketLock via
WithLocker. Acquire is the documented exception and requires caller
serialization.
*/
package objpool

package objpool

import (
	"errors"
	"io"
)

// ReleaseFunc releases a single owned value of type T.
// Implementations must be safe to call exactly once per value.
type ReleaseFunc[T any] func(T) error

// Add registers v with the pool, binding release as its destruction
// operation, and returns v unchanged so registration composes inline
// with construction:
//
//	conn := objpool.Add(pool, dial(addr), (*Conn).Close)
//
// The pool takes ownership of v: the caller must not release it
// independently. release must be non-nil; like the allocation contract
// this composes with, that precondition is documented rather than
// checked.
func Add[T any](p *Pool, v T, release ReleaseFunc[T]) T {
	p.add(entry{
		obj:  v,
		kind: KindScalar,
		destroy: func(o any) error {
			return release(o.(T))
		},
	})
	return v
}

// AddSlice registers a slice with the pool as a single entry and
// returns it unchanged. On destruction, release is applied to every
// element front to back; element failures do not stop the remaining
// elements from being released, and all failures are joined.
func AddSlice[T any](p *Pool, s []T, release ReleaseFunc[T]) []T {
	p.add(entry{
		obj:  s,
		kind: KindSlice,
		destroy: func(o any) error {
			var errs []error
			for _, v := range o.([]T) {
				if err := release(v); err != nil {
					errs = append(errs, err)
				}
			}
			return errors.Join(errs...)
		},
	})
	return s
}

// AddCloser registers a value whose release operation is its own Close
// method, and returns it unchanged.
func AddCloser[T io.Closer](p *Pool, c T) T {
	return Add(p, c, func(c T) error { return c.Close() })
}

// AddFunc registers a bare cleanup with no tracked value. It is useful
// when the work to undo is not a single releasable object, e.g.
// deregistering from an external system.
func AddFunc(p *Pool, release func() error) {
	p.add(entry{
		kind: KindFunc,
		destroy: func(any) error {
			return release()
		},
	})
}

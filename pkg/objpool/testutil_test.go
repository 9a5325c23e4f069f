package objpool_test

import (
	"sync"

	"github.com/randalmurphal/objpool/pkg/objpool"
)

// recorder tracks release invocations across test resources.
type recorder struct {
	mu       sync.Mutex
	released []string
}

func (r *recorder) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.released = append(r.released, name)
}

// names returns a snapshot of recorded releases in order.
func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.released))
	copy(out, r.released)
	return out
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.released)
}

// resource is a heap value with an instrumented release path.
type resource struct {
	name string
}

// releaseTo returns a scalar release function recording into rec.
func releaseTo(rec *recorder) objpool.ReleaseFunc[*resource] {
	return func(res *resource) error {
		rec.record(res.name)
		return nil
	}
}

// failRelease returns a release function that records and then fails.
func failRelease(rec *recorder, err error) objpool.ReleaseFunc[*resource] {
	return func(res *resource) error {
		rec.record(res.name)
		return err
	}
}

// closerResource implements io.Closer for AddCloser tests.
type closerResource struct {
	rec    *recorder
	name   string
	closed int
}

func (c *closerResource) Close() error {
	c.closed++
	c.rec.record(c.name)
	return nil
}

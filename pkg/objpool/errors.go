package objpool

import "fmt"

// Kind identifies which registration form produced an entry, and
// therefore which destruction path releases it.
type Kind string

// Registration kinds.
const (
	// KindScalar entries release a single value (Add, AddCloser).
	KindScalar Kind = "scalar"

	// KindSlice entries release a slice element by element (AddSlice).
	KindSlice Kind = "slice"

	// KindFunc entries run a bare cleanup function (AddFunc).
	KindFunc Kind = "func"
)

// DestroyError wraps a failed release operation with the entry's
// position and kind. Clear joins one DestroyError per failed entry;
// RemoveLast returns at most one.
type DestroyError struct {
	// PoolID identifies the pool the entry belonged to.
	PoolID string
	// Index is the entry's insertion position at the time it was released.
	Index int
	// Kind is the entry's registration kind.
	Kind Kind
	// Err is the error returned by the release operation.
	Err error
}

// Error implements the error interface.
func (e *DestroyError) Error() string {
	return fmt.Sprintf("%s: destroy entry %d (%s): %v", e.PoolID, e.Index, e.Kind, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *DestroyError) Unwrap() error {
	return e.Err
}

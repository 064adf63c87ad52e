package intset

import "github.com/pkg/errors"

// InvalidArgumentError reports a bad constructor argument (a non-positive
// maxEntries, or a loadFactor outside (0, 1]). It is returned, not
// panicked, since the caller can act on it (pick different parameters)
// without the program being in an inconsistent state.
type InvalidArgumentError struct {
	cause error
}

func newInvalidArgumentError(format string, args ...interface{}) *InvalidArgumentError {
	return &InvalidArgumentError{cause: errors.Errorf(format, args...)}
}

func (e *InvalidArgumentError) Error() string { return e.cause.Error() }
func (e *InvalidArgumentError) Unwrap() error { return e.cause }

// TableFullError is returned by Add when no empty cell could be found
// within the probe bound the variant guarantees (one full revolution for
// LP/RH, both directions for BLP). The table is left in the state it was
// in before the failed Add.
type TableFullError struct {
	Key      int32
	Capacity int
	cause    error
}

func newTableFullError(key int32, capacity int) *TableFullError {
	return &TableFullError{
		Key:      key,
		Capacity: capacity,
		cause:    errors.Errorf("intset: table full (capacity=%d) inserting key %d", capacity, key),
	}
}

func (e *TableFullError) Error() string { return e.cause.Error() }
func (e *TableFullError) Unwrap() error { return e.cause }

package containers

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidCapacity is returned when a requested capacity is negative or
	// smaller than what the container already holds.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrInvalidLoadFactor is returned for a load factor that is not a finite
	// number greater than zero.
	ErrInvalidLoadFactor = errors.New("invalid load factor")

	// ErrStaleView is returned by a view or cursor whose owner was mutated or
	// freed after the view was taken.
	ErrStaleView = errors.New("view used after its owner changed")

	// ErrElementSize is returned when a record does not match the element
	// size fixed at construction.
	ErrElementSize = errors.New("invalid element size")

	// ErrMissingFunc is returned when a table is built without a hash or
	// equality function.
	ErrMissingFunc = errors.New("missing table function")
)

// IndexError reports an access outside [0, Len).
//
// It matches ErrIndexOutOfRange with errors.Is.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: index %d, len %d", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

func indexError(index, length int) error {
	return &IndexError{Index: index, Len: length}
}

func capacityError(want, have int) error {
	return fmt.Errorf("%w: want %d, have %d", ErrInvalidCapacity, want, have)
}

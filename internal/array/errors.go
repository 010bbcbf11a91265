package array

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates an element access outside [0, Len()).
var ErrIndexOutOfRange = errors.New("array: index out of range")

// IndexError wraps ErrIndexOutOfRange with the offending access.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("array: %s index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

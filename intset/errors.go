package intset

import "fmt"

// ErrInvalidRange indicates a range that cannot back a set.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidRange[K Integer] struct {
	Lo, Hi K
	cause  error
}

func (e *ErrInvalidRange[K]) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("intset: invalid range [%d, %d]: %v", e.Lo, e.Hi, e.cause)
	}
	return fmt.Sprintf("intset: invalid range [%d, %d]", e.Lo, e.Hi)
}

func (e *ErrInvalidRange[K]) Unwrap() error { return e.cause }

// ErrKeyOutOfRange is the panic value when a key lies outside [Lo, Hi].
type ErrKeyOutOfRange[K Integer] struct {
	Key    K
	Lo, Hi K
}

func (e *ErrKeyOutOfRange[K]) Error() string {
	return fmt.Sprintf("intset: key %d out of range [%d, %d]", e.Key, e.Lo, e.Hi)
}

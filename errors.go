package bitarray

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is the panic value of FindLSB on an empty bit array.
	ErrEmpty = errors.New("bitarray: find lsb on empty bit array")
)

// ErrIndexOutOfRange indicates an index outside [0, Size).
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("bitarray: index %d out of range [0, %d)", e.Index, e.Size)
}

// ErrInvalidSize indicates a size outside [1, MaxSize].
type ErrInvalidSize struct {
	Size int
}

func (e *ErrInvalidSize) Error() string {
	return fmt.Sprintf("bitarray: invalid size %d, must be in [1, %d]", e.Size, MaxSize)
}

// ErrSizeMismatch indicates a Swap between bit arrays of different sizes.
type ErrSizeMismatch struct {
	Size  int
	Other int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("bitarray: size mismatch: %d vs %d", e.Size, e.Other)
}

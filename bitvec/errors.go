package bitvec

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidValue is returned when a Vector is built from a negative
	// integer.
	ErrInvalidValue = errors.New("bitvec: value must not be negative")

	// ErrInvalidLength is returned when a Vector is built with an explicit
	// bit length smaller than 1.
	ErrInvalidLength = errors.New("bitvec: bit length must be at least 1")

	// ErrIndexOutOfRange is returned by Bit for an index outside of
	// [0, Len()).
	ErrIndexOutOfRange = errors.New("bitvec: index out of range")
)

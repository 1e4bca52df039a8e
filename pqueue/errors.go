package pqueue

import (
	"github.com/pkg/errors"
)

var (
	// ErrDuplicateElement is returned when an operation would store two
	// elements that compare equal.
	ErrDuplicateElement = errors.New("pqueue: duplicate element")

	// ErrInvalidReplacement is returned by IncreaseKey when the replacement
	// would be popped before the element it replaces.
	ErrInvalidReplacement = errors.New("pqueue: replacement sorts before the original")

	// ErrNotFound is returned by IncreaseKey when the element to replace is
	// not in the queue.
	ErrNotFound = errors.New("pqueue: element not found")
)

package pqueue

import (
	"github.com/chronos-tachyon/huffmantree/internal/options"
)

type config[T any] struct {
	descending bool
	items      []T
}

// Option configures a Queue at construction time.
type Option[T any] interface {
	options.Option[*config[T]]
}

// Descending makes the Queue pop its greatest element first.  The default
// is ascending order.
func Descending[T any]() Option[T] {
	return options.NoError(func(c *config[T]) {
		c.descending = true
	})
}

// WithItems seeds the Queue with items.  The items must be unique.
func WithItems[T any](items ...T) Option[T] {
	return options.NoError(func(c *config[T]) {
		c.items = append(c.items, items...)
	})
}

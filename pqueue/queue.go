// Package pqueue implements a priority queue backed by a binary heap.
//
// Unlike container/heap, a Queue refuses to hold two elements that compare
// equal, and it supports replacing an element in place with IncreaseKey.
//
package pqueue

import (
	"bytes"
	"cmp"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffmantree/internal/options"
)

// Queue is an array-backed binary heap of unique elements.
type Queue[T any] struct {
	items     []T
	ascending bool
	compare   func(a, b T) int
}

// New constructs a Queue ordered by compare, which must return a negative
// number, zero or a positive number when a is less than, equal to or
// greater than b.
//
// New fails with ErrDuplicateElement if the items given by WithItems are not
// unique.
//
func New[T any](compare func(a, b T) int, opts ...Option[T]) (*Queue[T], error) {
	assert.Assertf(compare != nil, "pqueue: compare function is nil")

	var c config[T]
	for _, opt := range opts {
		if err := options.Apply[*config[T]](&c, opt); err != nil {
			return nil, err
		}
	}

	q := &Queue[T]{
		items:     make([]T, 0, len(c.items)),
		ascending: !c.descending,
		compare:   compare,
	}
	for _, item := range c.items {
		if err := q.Push(item); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// NewOrdered constructs a Queue ordered by the natural order of T.
func NewOrdered[T cmp.Ordered](opts ...Option[T]) (*Queue[T], error) {
	return New(cmp.Compare[T], opts...)
}

// Size returns the number of elements in the Queue.
func (q *Queue[T]) Size() int {
	return len(q.items)
}

// Empty reports whether the Queue has no elements.
func (q *Queue[T]) Empty() bool {
	return len(q.items) == 0
}

// Ascending reports whether the Queue pops its least element first.
func (q *Queue[T]) Ascending() bool {
	return q.ascending
}

// Depth returns the height of the heap: 0 for zero or one elements,
// otherwise ceil(log2(Size())).
func (q *Queue[T]) Depth() int {
	if len(q.items) <= 1 {
		return 0
	}
	return ceilLog2(len(q.items))
}

// Items returns a copy of the elements in heap array order.
func (q *Queue[T]) Items() []T {
	out := make([]T, len(q.items))
	copy(out, q.items)
	return out
}

// Push adds item to the Queue.  It fails with ErrDuplicateElement, leaving
// the Queue unchanged, if an element equal to item is already present.
func (q *Queue[T]) Push(item T) error {
	if q.indexOf(item) >= 0 {
		return errors.Wrapf(ErrDuplicateElement, "push %v", item)
	}
	q.items = append(q.items, item)
	q.siftUp(len(q.items) - 1)
	return nil
}

// Top returns the element that Pop would return, without removing it.  The
// second result is false if the Queue is empty.
func (q *Queue[T]) Top() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

// Pop removes and returns the highest priority element.  The second result
// is false if the Queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}

	top := q.items[0]
	last := len(q.items) - 1
	q.items[0] = q.items[last]
	q.items[last] = zero
	q.items = q.items[:last]
	if len(q.items) > 1 {
		q.siftDown(0)
	}
	return top, true
}

// IncreaseKey replaces original with replacement.  The replacement must not
// sort before original in the Queue's order: in an ascending Queue it must
// be greater than or equal to original, in a descending Queue less than or
// equal to it.
//
// Errors are checked in this order: ErrInvalidReplacement,
// ErrDuplicateElement (replacement differs from original but is already
// present), ErrNotFound.  The Queue is unchanged on error.
//
func (q *Queue[T]) IncreaseKey(original, replacement T) error {
	if q.before(replacement, original) {
		return errors.Wrapf(ErrInvalidReplacement, "replace %v with %v", original, replacement)
	}
	if q.compare(replacement, original) != 0 && q.indexOf(replacement) >= 0 {
		return errors.Wrapf(ErrDuplicateElement, "replace %v with %v", original, replacement)
	}
	i := q.indexOf(original)
	if i < 0 {
		return errors.Wrapf(ErrNotFound, "replace %v with %v", original, replacement)
	}

	q.items[i] = replacement
	if !q.siftUp(i) {
		q.siftDown(i)
	}
	return nil
}

// Traverse calls visit for every element in pre-order: the root, then the
// left subtree, then the right subtree.
func (q *Queue[T]) Traverse(visit func(T)) {
	if len(q.items) == 0 {
		return
	}
	stack := make([]int, 1, q.Depth()+2)
	for len(stack) != 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(q.items[i])
		if r := right(i); r < len(q.items) {
			stack = append(stack, r)
		}
		if l := left(i); l < len(q.items) {
			stack = append(stack, l)
		}
	}
}

// BreadthFirstTraverse calls visit for every element in heap array order.
func (q *Queue[T]) BreadthFirstTraverse(visit func(T)) {
	for _, item := range q.items {
		visit(item)
	}
}

// Map returns fn applied to every element, in the order of Traverse.
func Map[T, U any](q *Queue[T], fn func(T) U) []U {
	out := make([]U, 0, q.Size())
	q.Traverse(func(item T) {
		out = append(out, fn(item))
	})
	return out
}

// MapBreadthFirst returns fn applied to every element, in the order of
// BreadthFirstTraverse.
func MapBreadthFirst[T, U any](q *Queue[T], fn func(T) U) []U {
	out := make([]U, 0, q.Size())
	q.BreadthFirstTraverse(func(item T) {
		out = append(out, fn(item))
	})
	return out
}

// Dump writes a programmer-readable debugging dump of the Queue's current
// state to the given writer.
func (q *Queue[T]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Queue{\n")
	fmt.Fprintf(&buf, "\tSize() = %d\n", q.Size())
	fmt.Fprintf(&buf, "\tDepth() = %d\n", q.Depth())
	fmt.Fprintf(&buf, "\tAscending() = %t\n", q.ascending)
	for i, item := range q.items {
		fmt.Fprintf(&buf, "\t[%d] = %v\n", i, item)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// before reports whether a has strictly higher priority than b.
func (q *Queue[T]) before(a, b T) bool {
	if q.ascending {
		return q.compare(a, b) < 0
	}
	return q.compare(a, b) > 0
}

func (q *Queue[T]) indexOf(item T) int {
	for i, x := range q.items {
		if q.compare(x, item) == 0 {
			return i
		}
	}
	return -1
}

// siftUp moves the element at i toward the root and reports whether it
// moved at all.
func (q *Queue[T]) siftUp(i int) bool {
	start := i
	for i > 0 {
		p := parent(i)
		if !q.before(q.items[i], q.items[p]) {
			break
		}
		q.items[i], q.items[p] = q.items[p], q.items[i]
		i = p
	}
	return i != start
}

func (q *Queue[T]) siftDown(i int) {
	n := len(q.items)
	for {
		best := left(i)
		if best >= n {
			return
		}
		if r := right(i); r < n && q.before(q.items[r], q.items[best]) {
			best = r
		}
		if !q.before(q.items[best], q.items[i]) {
			return
		}
		q.items[i], q.items[best] = q.items[best], q.items[i]
		i = best
	}
}

package pqueue

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newInts(t *testing.T, opts ...Option[int]) *Queue[int] {
	t.Helper()
	q, err := NewOrdered(opts...)
	require.NoError(t, err)
	return q
}

func popAll[T any](q *Queue[T]) []T {
	var out []T
	for {
		x, ok := q.Pop()
		if !ok {
			return out
		}
		out = append(out, x)
	}
}

func TestQueue_MinHeap(t *testing.T) {
	q := newInts(t, WithItems(43, 25, 37, 100, 19))
	require.Equal(t, 5, q.Size())
	require.Equal(t, 3, q.Depth())
	require.True(t, q.Ascending())

	require.Equal(t, []int{19, 25, 37, 43, 100}, popAll(q))

	require.Equal(t, 0, q.Size())
	require.Equal(t, 0, q.Depth())
	require.True(t, q.Empty())
	require.True(t, q.Ascending())
}

func TestQueue_MaxHeap(t *testing.T) {
	q, err := NewOrdered(Descending[float32]())
	require.NoError(t, err)
	require.Equal(t, 0, q.Size())
	require.Equal(t, 0, q.Depth())
	require.False(t, q.Ascending())

	for _, x := range []float32{12.4, 16.0, 9.72, 31.19, 40.2, 17.6, 8.9, 10.11, 25.66} {
		require.NoError(t, q.Push(x))
	}
	require.Equal(t, 9, q.Size())
	require.Equal(t, 4, q.Depth())

	require.Equal(t, []float32{40.2, 31.19, 25.66, 17.6, 16.0, 12.4, 10.11, 9.72, 8.9}, popAll(q))
	require.Equal(t, 0, q.Depth())
	require.False(t, q.Ascending())
}

func TestQueue_PushDuplicate(t *testing.T) {
	_, err := NewOrdered(WithItems(2, 2))
	require.True(t, errors.Is(err, ErrDuplicateElement), "%v", err)

	q := newInts(t, WithItems(10, 17, 8, 92, 6))
	before := q.Items()
	err = q.Push(10)
	require.True(t, errors.Is(err, ErrDuplicateElement), "%v", err)
	require.Equal(t, 5, q.Size())
	require.Equal(t, before, q.Items())
}

func TestQueue_Top(t *testing.T) {
	q := newInts(t, WithItems(10, 17, 8, 92, 6))
	top, ok := q.Top()
	require.True(t, ok)
	require.Equal(t, 6, top)
	require.Equal(t, 5, q.Size())

	q = newInts(t, WithItems(10, 17, 8, 92, 6), Descending[int]())
	top, ok = q.Top()
	require.True(t, ok)
	require.Equal(t, 92, top)

	q = newInts(t)
	top, ok = q.Top()
	require.False(t, ok)
	require.Equal(t, 0, top)
}

func TestQueue_Pop(t *testing.T) {
	q := newInts(t, WithItems(12, 5, 34, 92, 87))
	x, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, 5, x)

	q = newInts(t, WithItems(12, 5, 34, 92, 87), Descending[int]())
	x, ok = q.Pop()
	require.True(t, ok)
	require.Equal(t, 92, x)

	q = newInts(t)
	x, ok = q.Pop()
	require.False(t, ok)
	require.Equal(t, 0, x)
}

func TestQueue_IncreaseKey(t *testing.T) {
	t.Run("ascending", func(t *testing.T) {
		q := newInts(t, WithItems(10, 17, 8, 92, 6))

		require.NoError(t, q.IncreaseKey(10, 15))
		require.NoError(t, q.IncreaseKey(92, 92))

		err := q.IncreaseKey(8, 7)
		require.True(t, errors.Is(err, ErrInvalidReplacement), "%v", err)
		err = q.IncreaseKey(8, 15)
		require.True(t, errors.Is(err, ErrDuplicateElement), "%v", err)
		err = q.IncreaseKey(2, 3)
		require.True(t, errors.Is(err, ErrNotFound), "%v", err)

		require.Equal(t, []int{6, 8, 15, 17, 92}, popAll(q))
	})

	t.Run("descending", func(t *testing.T) {
		q := newInts(t, WithItems(10, 17, 8, 92, 6), Descending[int]())

		require.NoError(t, q.IncreaseKey(92, 9))

		err := q.IncreaseKey(6, 7)
		require.True(t, errors.Is(err, ErrInvalidReplacement), "%v", err)
		err = q.IncreaseKey(17, 8)
		require.True(t, errors.Is(err, ErrDuplicateElement), "%v", err)
		err = q.IncreaseKey(50, 40)
		require.True(t, errors.Is(err, ErrNotFound), "%v", err)

		require.Equal(t, []int{17, 10, 9, 8, 6}, popAll(q))
	})

	t.Run("root moves down", func(t *testing.T) {
		q := newInts(t, WithItems(1, 2, 3, 4, 5, 6, 7))
		require.NoError(t, q.IncreaseKey(1, 100))
		require.Equal(t, []int{2, 3, 4, 5, 6, 7, 100}, popAll(q))
	})
}

func TestQueue_Traverse(t *testing.T) {
	q := newInts(t, WithItems(10, 17, 8, 92, 6), Descending[int]())
	items := q.Items()

	var visited []int
	q.Traverse(func(x int) { visited = append(visited, x) })
	require.Equal(t, []int{items[0], items[1], items[3], items[4], items[2]}, visited)
	require.ElementsMatch(t, []int{10, 17, 8, 92, 6}, visited)

	require.Equal(t, visited, Map(q, func(x int) int { return x }))

	newInts(t).Traverse(func(int) { t.Fatal("visited an element of an empty queue") })
}

func TestQueue_BreadthFirstTraverse(t *testing.T) {
	q := newInts(t, WithItems(10, 17, 8, 92, 6), Descending[int]())

	var visited []int
	q.BreadthFirstTraverse(func(x int) { visited = append(visited, x) })
	require.Equal(t, q.Items(), visited)

	doubled := MapBreadthFirst(q, func(x int) int { return 2 * x })
	require.Len(t, doubled, 5)
	require.ElementsMatch(t, []int{20, 34, 16, 184, 12}, doubled)
}

func TestQueue_SortsDistinctElements(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	input := rng.Perm(257)

	for _, descending := range []bool{false, true} {
		var opts []Option[int]
		if descending {
			opts = append(opts, Descending[int]())
		}
		q := newInts(t, opts...)
		for _, x := range input {
			require.NoError(t, q.Push(x))
		}

		expect := slices.Clone(input)
		slices.Sort(expect)
		if descending {
			slices.Reverse(expect)
		}
		require.Equal(t, expect, popAll(q))
	}
}

func TestQueue_SizeAndDepth(t *testing.T) {
	q := newInts(t)
	for n := 1; n <= 40; n++ {
		require.NoError(t, q.Push(n))
	}
	for k := 0; k <= 40; k++ {
		size := 40 - k
		require.Equal(t, size, q.Size())
		expectDepth := 0
		for size > 1 && 1<<expectDepth < size {
			expectDepth++
		}
		require.Equal(t, expectDepth, q.Depth(), "size %d", size)
		q.Pop()
	}
}

func TestQueue_CustomCompare(t *testing.T) {
	type entry struct {
		key  string
		rank int
	}
	byRank := func(a, b entry) int { return a.rank - b.rank }

	q, err := New(byRank, WithItems(entry{"c", 3}, entry{"a", 1}, entry{"b", 2}))
	require.NoError(t, err)

	err = q.Push(entry{"z", 2})
	require.True(t, errors.Is(err, ErrDuplicateElement), "%v", err)

	keys := Map(q, func(e entry) string { return e.key })
	require.Len(t, keys, 3)
	top, _ := q.Top()
	require.Equal(t, "a", top.key)
}

func TestQueue_Dump(t *testing.T) {
	q := newInts(t, WithItems(3, 1, 2))

	expectDump := strings.Join([]string{
		"Queue{\n",
		"\tSize() = 3\n",
		"\tDepth() = 2\n",
		"\tAscending() = true\n",
		"\t[0] = 1\n",
		"\t[1] = 3\n",
		"\t[2] = 2\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = q.Dump(&buf)
	require.Equal(t, expectDump, buf.String())
}

func TestParent(t *testing.T) {
	for i := 1; i < 100; i++ {
		p := parent(i)
		require.True(t, left(p) == i || right(p) == i, "parent(%d) = %d", i, p)
	}
	require.Panics(t, func() { parent(0) })
}

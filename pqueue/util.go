package pqueue

import (
	mathbits "math/bits"

	"github.com/chronos-tachyon/assert"
)

func left(i int) int {
	return 2*i + 1
}

func right(i int) int {
	return 2*i + 2
}

func parent(i int) int {
	assert.Assertf(i > 0, "pqueue: root has no parent")
	if i%2 != 0 {
		return (i - 1) / 2
	}
	return i/2 - 1
}

// ceilLog2 returns ceil(log2(x)) for x >= 1.
func ceilLog2(x int) int {
	return mathbits.Len(uint(x - 1))
}

package huffman

import (
	mathbits "math/bits"
)

// log2int returns the bit length of x, treating 0 as 1.  It is a cheap
// estimate of the height of a balanced tree with x leaves.
func log2int(x int) int {
	if x == 0 {
		x = 1
	}
	return mathbits.Len(uint(x))
}

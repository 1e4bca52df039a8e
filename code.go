package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffmantree/bitvec"
)

// Codeword represents the root-to-leaf path of a symbol in a Tree.
type Codeword struct {
	// Size holds the number of valid bits.  It always equals Bits.Len().
	Size int

	// Bits holds the path.  The most significant bit is the first branch
	// taken from the root: 0 for left, 1 for right.
	Bits bitvec.Vector
}

// MakeCodeword is a convenience function that constructs a Codeword.
func MakeCodeword(bits bitvec.Vector) Codeword {
	return Codeword{Size: bits.Len(), Bits: bits}
}

// ParseCodeword constructs a Codeword from a string of '0' and '1'
// characters, first branch first.
func ParseCodeword(str string) (Codeword, error) {
	path := make([]bool, len(str))
	for i, ch := range []byte(str) {
		switch ch {
		case '0':
		case '1':
			path[i] = true
		default:
			return Codeword{}, errors.Errorf("invalid character %q at position %d in codeword %q", ch, i, str)
		}
	}
	return MakeCodeword(bitvec.FromBits(path...)), nil
}

// Branch returns the i'th branch of the path: false for left, true for
// right.
func (cw Codeword) Branch(i int) bool {
	bit, err := cw.Bits.Bit(cw.Size - 1 - i)
	if err != nil {
		panic(err)
	}
	return bit
}

// String returns the string representation of this Codeword.
func (cw Codeword) String() string {
	var sb strings.Builder
	sb.Grow(cw.Size)
	for i := 0; i < cw.Size; i++ {
		if cw.Branch(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Codeword{}

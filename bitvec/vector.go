package bitvec

import (
	"bytes"
	"fmt"
	mathbits "math/bits"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Vector represents a sequence of bits with an explicit length.
//
// The zero Vector is empty: Len() == 0 and it has no bytes.
type Vector struct {
	bytes []byte
	size  int
}

// FromUint64 constructs the shortest Vector holding value.  Zero is
// represented with a single bit.
func FromUint64(value uint64) Vector {
	size := mathbits.Len64(value)
	if size == 0 {
		size = 1
	}
	out := make([]byte, byteLen(size))
	for i := range out {
		out[i] = byte(value >> (8 * uint(i)))
	}
	return Vector{bytes: out, size: size}
}

// FromInt is like FromUint64, but fails with ErrInvalidValue for negative
// values.
func FromInt(value int64) (Vector, error) {
	if value < 0 {
		return Vector{}, errors.Wrapf(ErrInvalidValue, "got %d", value)
	}
	return FromUint64(uint64(value)), nil
}

// FromLength constructs a Vector of n zero bits.
func FromLength(n int) (Vector, error) {
	if n < 1 {
		return Vector{}, errors.Wrapf(ErrInvalidLength, "got %d", n)
	}
	return Vector{bytes: make([]byte, byteLen(n)), size: n}, nil
}

// FromBytes constructs a Vector of len(b)*8 bits.  The slice is copied.
func FromBytes(b []byte) Vector {
	if len(b) == 0 {
		return Vector{}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return Vector{bytes: out, size: len(b) * 8}
}

// FromBits constructs a Vector of len(bits) bits.  The first argument is the
// most significant bit.
func FromBits(bits ...bool) Vector {
	size := len(bits)
	if size == 0 {
		return Vector{}
	}
	out := make([]byte, byteLen(size))
	for i, bit := range bits {
		if bit {
			pos := size - 1 - i
			out[pos/8] |= 1 << uint(pos%8)
		}
	}
	return Vector{bytes: out, size: size}
}

// Mask constructs a Vector of n one bits.
func Mask(n int) (Vector, error) {
	zero, err := FromLength(n)
	if err != nil {
		return Vector{}, err
	}
	m := Not(zero)
	clearTail(m.bytes, n)
	return m, nil
}

// Len returns the number of significant bits.
func (v Vector) Len() int {
	return v.size
}

// Bytes returns a copy of the backing bytes, least significant byte first.
func (v Vector) Bytes() []byte {
	out := make([]byte, len(v.bytes))
	copy(out, v.bytes)
	return out
}

// Bit returns the value of the bit at index, where 0 is the least
// significant bit.
func (v Vector) Bit(index int) (bool, error) {
	if index < 0 || index >= v.size {
		return false, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", index, v.size)
	}
	return v.bytes[index/8]&(1<<uint(index%8)) != 0, nil
}

// MostSignificantBit returns the 1-based position of the highest set bit in
// the allocated bytes, or 0 if no bit is set.  The result is not clamped to
// Len().
func (v Vector) MostSignificantBit() int {
	for i := len(v.bytes) - 1; i >= 0; i-- {
		if b := v.bytes[i]; b != 0 {
			return i*8 + mathbits.Len8(b)
		}
	}
	return 0
}

// ShiftLeft returns a Vector of Len()+n bits in which every bit has moved
// up by n positions.  The vacated low bits are zero.
func (v Vector) ShiftLeft(n int) Vector {
	assert.Assertf(n >= 0, "bitvec: negative shift %d", n)
	if n == 0 {
		return v
	}

	size := v.size + n
	out := make([]byte, byteLen(size))
	byteShift, bitShift := n/8, uint(n%8)
	for i := range v.bytes {
		b := v.byteAt(i)
		j := i + byteShift
		out[j] |= b << bitShift
		if bitShift != 0 && j+1 < len(out) {
			out[j+1] |= b >> (8 - bitShift)
		}
	}
	return Vector{bytes: out, size: size}
}

// ShiftRight returns a Vector of Len()-n bits in which the low n bits have
// been discarded and the rest have moved down by n positions.  Shifting by
// Len() yields the empty Vector.
func (v Vector) ShiftRight(n int) Vector {
	assert.Assertf(n >= 0, "bitvec: negative shift %d", n)
	assert.Assertf(n <= v.size, "bitvec: shift %d exceeds length %d", n, v.size)
	if n == 0 {
		return v
	}

	size := v.size - n
	if size == 0 {
		return Vector{}
	}
	out := make([]byte, byteLen(size))
	byteShift, bitShift := n/8, uint(n%8)
	for i := range out {
		j := i + byteShift
		b := v.byteAt(j) >> bitShift
		if bitShift != 0 && j+1 < len(v.bytes) {
			b |= v.byteAt(j+1) << (8 - bitShift)
		}
		out[i] = b
	}
	clearTail(out, size)
	return Vector{bytes: out, size: size}
}

// Truncate keeps the low n bits and drops the rest.
func (v Vector) Truncate(n int) Vector {
	assert.Assertf(n >= 0 && n <= v.size, "bitvec: truncate to %d bits, length %d", n, v.size)
	if n == 0 {
		return Vector{}
	}
	if n == v.size {
		return v
	}
	m, _ := Mask(n)
	return And(v, m)
}

// Uint64 returns the integer value of the backing bytes.  The caller must
// make sure that the value fits.
func (v Vector) Uint64() uint64 {
	var x uint64
	for i, b := range v.bytes {
		x |= uint64(b) << (8 * uint(i))
	}
	return x
}

// String returns the backing bytes in binary, most significant byte first,
// separated by spaces.
func (v Vector) String() string {
	groups := make([]string, len(v.bytes))
	for i, b := range v.bytes {
		groups[len(v.bytes)-1-i] = fmt.Sprintf("%08b", b)
	}
	return strings.Join(groups, " ")
}

// GoString returns a Go-ish representation suitable for debugging.
func (v Vector) GoString() string {
	return fmt.Sprintf("bitvec.Vector{%d bits: %s}", v.size, v.String())
}

var (
	_ fmt.Stringer   = Vector{}
	_ fmt.GoStringer = Vector{}
)

// And returns the bitwise AND of a and b.  The result has as many bits as
// the shorter operand; the excess bits of the longer operand are dropped.
func And(a, b Vector) Vector {
	size := min(a.size, b.size)
	if size == 0 {
		return Vector{}
	}
	out := make([]byte, min(len(a.bytes), len(b.bytes)))
	for i := range out {
		out[i] = a.bytes[i] & b.bytes[i]
	}
	return Vector{bytes: out, size: size}
}

// Or returns the bitwise OR of a and b.  The result has as many bits as the
// longer operand, whose high bytes pass through unchanged.
func Or(a, b Vector) Vector {
	lesser, greater := a, b
	if a.size > b.size {
		lesser, greater = b, a
	}
	if greater.size == 0 {
		return Vector{}
	}
	out := make([]byte, len(greater.bytes))
	copy(out, greater.bytes)
	for i, x := range lesser.bytes {
		out[i] |= x
	}
	return Vector{bytes: out, size: greater.size}
}

// Not flips every bit of the allocated bytes, including the bits above
// Len() in the last byte.  Callers must not rely on the value of those bits.
func Not(a Vector) Vector {
	if a.size == 0 {
		return Vector{}
	}
	out := make([]byte, len(a.bytes))
	for i, x := range a.bytes {
		out[i] = ^x
	}
	return Vector{bytes: out, size: a.size}
}

// Equal reports whether a and b have the same length and the same bytes.
func Equal(a, b Vector) bool {
	return a.size == b.size && bytes.Equal(a.bytes, b.bytes)
}

// byteAt returns byte i with the bits above Len() cleared.
func (v Vector) byteAt(i int) byte {
	b := v.bytes[i]
	if i == len(v.bytes)-1 {
		if r := v.size % 8; r != 0 {
			b &= byte(1<<uint(r)) - 1
		}
	}
	return b
}

func clearTail(b []byte, size int) {
	if r := size % 8; r != 0 && len(b) != 0 {
		b[len(b)-1] &= byte(1<<uint(r)) - 1
	}
}

func byteLen(size int) int {
	return (size + 7) / 8
}

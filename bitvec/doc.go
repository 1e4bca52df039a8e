// Package bitvec implements an immutable vector of bits whose length is
// tracked explicitly, independently of the size of its backing array.
//
// This matters for prefix codes: the 3-bit code "010" and the 2-bit code
// "10" have the same integer value but are different codes.
//
// Bit 0 is the least significant bit of byte 0.  Every operation returns a
// new Vector; none of them modify their operands.
//
package bitvec

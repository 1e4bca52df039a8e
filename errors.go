package huffman

import (
	"github.com/pkg/errors"
)

var (
	// ErrEmptyAlphabet is returned by Build for an empty frequency table.
	ErrEmptyAlphabet = errors.New("huffman: empty frequency table")

	// ErrInvalidFrequency is returned by Build for a symbol with a count of
	// zero.
	ErrInvalidFrequency = errors.New("huffman: frequency must be positive")

	// ErrInvalidSymbol is returned by Build for a negative symbol.
	ErrInvalidSymbol = errors.New("huffman: invalid symbol")

	// ErrUnknownSymbol is returned when encoding a symbol that has no leaf in
	// the Tree.
	ErrUnknownSymbol = errors.New("huffman: symbol not in tree")

	// ErrUnknownCode is returned when a codeword does not end exactly on a
	// leaf of the Tree.
	ErrUnknownCode = errors.New("huffman: codeword not in tree")

	// ErrTruncatedStream is returned when a stream ends in the middle of a
	// codeword.
	ErrTruncatedStream = errors.New("huffman: stream ends inside a codeword")
)

package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffmantree/bitvec"
)

// Encoder packs symbols into a bit vector using the codewords of a Tree.
type Encoder struct {
	tree    *Tree
	codes   map[Symbol]Codeword
	minSize int
	maxSize int
}

// Init initializes this Encoder by deriving the codeword of every symbol in
// the given Tree.
func (e *Encoder) Init(t *Tree) {
	assert.Assertf(t != nil, "huffman: Encoder.Init called with a nil Tree")

	symbols := t.Symbols()
	codes := make(map[Symbol]Codeword, len(symbols))
	var minSize, maxSize int
	for index, symbol := range symbols {
		cw, err := t.Codeword(symbol)
		assert.Assertf(err == nil, "huffman: %v", err)
		codes[symbol] = cw

		if index == 0 {
			minSize, maxSize = cw.Size, cw.Size
		} else if minSize > cw.Size {
			minSize = cw.Size
		} else if maxSize < cw.Size {
			maxSize = cw.Size
		}
	}

	*e = Encoder{
		tree:    t,
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Tree returns the Tree this Encoder was initialized with.
func (e Encoder) Tree() *Tree {
	return e.tree
}

// Encode returns the codeword of a single Symbol.
func (e Encoder) Encode(symbol Symbol) (Codeword, error) {
	cw, found := e.codes[symbol]
	if !found {
		return Codeword{}, errors.Wrapf(ErrUnknownSymbol, "symbol %v", symbol)
	}
	return cw, nil
}

// EncodeAll concatenates the codewords of symbols.  The first symbol's
// codeword ends up in the most significant bits.  An empty input yields the
// empty Vector.
func (e Encoder) EncodeAll(symbols []Symbol) (bitvec.Vector, error) {
	var acc bitvec.Vector
	for i, symbol := range symbols {
		cw, err := e.Encode(symbol)
		if err != nil {
			return bitvec.Vector{}, errors.Wrapf(err, "position %d", i)
		}
		acc = bitvec.Or(acc.ShiftLeft(cw.Size), cw.Bits)
	}
	return acc, nil
}

// MinSize is the bit length of the shortest codeword.
func (e Encoder) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest codeword.
func (e Encoder) MaxSize() int {
	return e.maxSize
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	if e.tree != nil {
		for _, symbol := range e.tree.Symbols() {
			fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", symbol, e.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

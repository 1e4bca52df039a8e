package huffman

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffmantree/bitvec"
)

// Decoder unpacks symbols from a bit vector by walking a Tree.
type Decoder struct {
	tree *Tree
}

// Init initializes this Decoder.
func (d *Decoder) Init(t *Tree) {
	assert.Assertf(t != nil, "huffman: Decoder.Init called with a nil Tree")
	*d = Decoder{tree: t}
}

// Tree returns the Tree this Decoder was initialized with.
func (d Decoder) Tree() *Tree {
	return d.tree
}

// Decode recovers the symbols packed into stream by Encoder.EncodeAll.
//
// Starting from the most significant bit, each codeword is decoded by
// walking from the root, and its bits are then cut off the top of the
// stream, until no bits remain.
//
func (d Decoder) Decode(stream bitvec.Vector) ([]Symbol, error) {
	var out []Symbol
	for stream.Len() > 0 {
		symbol, depth, err := d.next(stream)
		if err != nil {
			return out, errors.Wrapf(err, "after %d symbols", len(out))
		}
		out = append(out, symbol)
		stream = stream.Truncate(stream.Len() - depth)
	}
	return out, nil
}

// next decodes the codeword in the most significant bits of stream.
func (d Decoder) next(stream bitvec.Vector) (Symbol, int, error) {
	t := d.tree
	n := t.nodes[t.root]
	top := stream.Len() - 1

	if n.IsLeaf() {
		if bit, _ := stream.Bit(top); bit {
			return InvalidSymbol, 0, errors.WithStack(ErrUnknownCode)
		}
		return n.Symbol, 1, nil
	}

	depth := 0
	for !n.IsLeaf() {
		if depth > top {
			return InvalidSymbol, 0, errors.Wrapf(ErrTruncatedStream, "%d bits left", stream.Len())
		}
		bit, err := stream.Bit(top - depth)
		if err != nil {
			return InvalidSymbol, 0, err
		}
		if bit {
			n = t.nodes[n.Right]
		} else {
			n = t.nodes[n.Left]
		}
		depth++
	}
	return n.Symbol, depth, nil
}

// Lookup returns the symbol whose codeword is cw.
func (d Decoder) Lookup(cw Codeword) (Symbol, error) {
	t := d.tree
	n := t.nodes[t.root]

	if n.IsLeaf() {
		if cw.Size != 1 || cw.Branch(0) {
			return InvalidSymbol, errors.Wrapf(ErrUnknownCode, "codeword %v", cw)
		}
		return n.Symbol, nil
	}

	for i := 0; i < cw.Size; i++ {
		if n.IsLeaf() {
			return InvalidSymbol, errors.Wrapf(ErrUnknownCode, "codeword %v", cw)
		}
		if cw.Branch(i) {
			n = t.nodes[n.Right]
		} else {
			n = t.nodes[n.Left]
		}
	}
	if !n.IsLeaf() {
		return InvalidSymbol, errors.Wrapf(ErrUnknownCode, "codeword %v", cw)
	}
	return n.Symbol, nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.  Codewords are listed shortest first.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	type row struct {
		code   string
		symbol Symbol
	}

	var rows []row
	if d.tree != nil {
		for _, symbol := range d.tree.Symbols() {
			cw, err := d.tree.Codeword(symbol)
			assert.Assertf(err == nil, "huffman: %v", err)
			rows = append(rows, row{cw.String(), symbol})
		}
	}
	slices.SortFunc(rows, func(a, b row) int {
		if len(a.code) != len(b.code) {
			return len(a.code) - len(b.code)
		}
		return strings.Compare(a.code, b.code)
	})

	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	for _, r := range rows {
		fmt.Fprintf(&buf, "\tDecode(%s) = %v\n", r.code, r.symbol)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

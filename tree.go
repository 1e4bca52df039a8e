package huffman

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"fmt"
	"io"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffmantree/bitvec"
	"github.com/chronos-tachyon/huffmantree/internal/options"
	"github.com/chronos-tachyon/huffmantree/pqueue"
)

// NodeID is a handle to a Node within its Tree.
type NodeID int32

// NoNode is the NodeID of an absent parent or child.
const NoNode = NodeID(-1)

// Node is a node of a Tree.
type Node struct {
	// Symbol is the symbol of a leaf, or InvalidSymbol for an internal node.
	Symbol Symbol

	// Weight is the frequency of a leaf's symbol, or the sum of the weights
	// of an internal node's children.
	Weight uint64

	Parent NodeID
	Left   NodeID
	Right  NodeID
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool {
	return n.Left == NoNode && n.Right == NoNode
}

// String returns the string representation of this Node.
func (n Node) String() string {
	if n.Symbol == InvalidSymbol {
		return fmt.Sprintf("{*:%d}", n.Weight)
	}
	return fmt.Sprintf("{%v:%d}", n.Symbol, n.Weight)
}

var _ fmt.Stringer = Node{}

// Tree is a Huffman code tree.  Its nodes are stored in an arena and refer
// to each other by NodeID.  A Tree is immutable once Build returns it.
type Tree struct {
	nodes  []Node
	leaves map[Symbol]NodeID
	root   NodeID
}

// TieBreak selects how Build orders nodes of equal weight.
type TieBreak byte

const (
	// TieBreakSequence orders nodes of equal weight by creation order:
	// leaves in ascending symbol order, then internal nodes as they are
	// merged.
	TieBreakSequence TieBreak = iota

	// TieBreakNone orders nodes by weight alone.  Since the queue refuses
	// elements that compare equal, Build fails with an error wrapping
	// pqueue.ErrDuplicateElement as soon as two nodes of equal weight meet
	// in the queue.
	TieBreakNone
)

type buildConfig struct {
	tieBreak TieBreak
}

// BuildOption configures Build.
type BuildOption interface {
	options.Option[*buildConfig]
}

// WithTieBreak selects the TieBreak policy.  The default is
// TieBreakSequence.
func WithTieBreak(tb TieBreak) BuildOption {
	return options.New(func(c *buildConfig) error {
		if tb > TieBreakNone {
			return errors.Errorf("huffman: unknown TieBreak %d", tb)
		}
		c.tieBreak = tb
		return nil
	})
}

type queueEntry struct {
	weight uint64
	id     NodeID
}

func compareBySequence(a, b queueEntry) int {
	if c := cmp.Compare(a.weight, b.weight); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}

func compareByWeight(a, b queueEntry) int {
	return cmp.Compare(a.weight, b.weight)
}

// Build constructs the Huffman tree for the given frequency table.  Every
// symbol must be valid and have a positive count.
//
// When two nodes are merged, the first one popped from the queue (the
// lighter one) becomes the left child.
//
func Build(frequencies map[Symbol]uint32, opts ...BuildOption) (*Tree, error) {
	var c buildConfig
	for _, opt := range opts {
		if err := options.Apply[*buildConfig](&c, opt); err != nil {
			return nil, err
		}
	}

	if len(frequencies) == 0 {
		return nil, errors.WithStack(ErrEmptyAlphabet)
	}

	symbols := make([]Symbol, 0, len(frequencies))
	for symbol, freq := range frequencies {
		if symbol < 0 {
			return nil, errors.Wrapf(ErrInvalidSymbol, "symbol %d", int32(symbol))
		}
		if freq == 0 {
			return nil, errors.Wrapf(ErrInvalidFrequency, "symbol %v", symbol)
		}
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)

	compare := compareBySequence
	if c.tieBreak == TieBreakNone {
		compare = compareByWeight
	}
	q, err := pqueue.New(compare)
	if err != nil {
		return nil, err
	}

	numLeaves := len(symbols)
	t := &Tree{
		nodes:  make([]Node, 0, 2*numLeaves-1),
		leaves: make(map[Symbol]NodeID, numLeaves),
		root:   NoNode,
	}

	for _, symbol := range symbols {
		id := t.add(symbol, uint64(frequencies[symbol]), NoNode, NoNode)
		t.leaves[symbol] = id
		if err := q.Push(queueEntry{t.nodes[id].Weight, id}); err != nil {
			return nil, errors.Wrapf(err, "huffman: leaf %v", symbol)
		}
	}

	for i := 1; i < numLeaves; i++ {
		a, okA := q.Pop()
		b, okB := q.Pop()
		assert.Assertf(okA && okB, "huffman: queue ran dry after %d merges", i-1)

		id := t.add(InvalidSymbol, a.weight+b.weight, a.id, b.id)
		t.nodes[a.id].Parent = id
		t.nodes[b.id].Parent = id
		if err := q.Push(queueEntry{t.nodes[id].Weight, id}); err != nil {
			return nil, errors.Wrapf(err, "huffman: merge of %v and %v", t.nodes[a.id], t.nodes[b.id])
		}
	}

	root, ok := q.Pop()
	assert.Assertf(ok && q.Empty(), "huffman: expected exactly one root, %d nodes left over", q.Size())
	t.root = root.id
	return t, nil
}

func (t *Tree) add(symbol Symbol, weight uint64, left, right NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Symbol: symbol,
		Weight: weight,
		Parent: NoNode,
		Left:   left,
		Right:  right,
	})
	return id
}

// Root returns the NodeID of the root.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of nodes, which is 2n-1 for n symbols.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node identified by id.
func (t *Tree) Node(id NodeID) Node {
	assert.Assertf(id >= 0 && int(id) < len(t.nodes), "huffman: NodeID %d out of range", id)
	return t.nodes[id]
}

// Leaf returns the NodeID of the leaf carrying symbol.
func (t *Tree) Leaf(symbol Symbol) (NodeID, bool) {
	id, found := t.leaves[symbol]
	return id, found
}

// Symbols returns the symbols of the Tree in ascending order.
func (t *Tree) Symbols() []Symbol {
	out := make([]Symbol, 0, len(t.leaves))
	for symbol := range t.leaves {
		out = append(out, symbol)
	}
	slices.Sort(out)
	return out
}

// Depth returns the number of edges between id and the root.
func (t *Tree) Depth(id NodeID) int {
	var depth int
	for n := t.Node(id); n.Parent != NoNode; n = t.nodes[n.Parent] {
		depth++
	}
	return depth
}

// Find returns the first node in pre-order (node, left, right) for which
// match returns true, or NoNode if there is none.
func (t *Tree) Find(match func(Node) bool) NodeID {
	stack := make([]NodeID, 1, log2int(len(t.leaves))+1)
	stack[0] = t.root
	for len(stack) != 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[id]
		if match(n) {
			return id
		}
		if n.Right != NoNode {
			stack = append(stack, n.Right)
		}
		if n.Left != NoNode {
			stack = append(stack, n.Left)
		}
	}
	return NoNode
}

// Traverse calls visit for every node in depth-first in-order (left, node,
// right).
func (t *Tree) Traverse(visit func(NodeID, Node)) {
	stack := make([]NodeID, 0, log2int(len(t.leaves))+1)
	id := t.root
	for id != NoNode || len(stack) != 0 {
		for id != NoNode {
			stack = append(stack, id)
			id = t.nodes[id].Left
		}
		id = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(id, t.nodes[id])
		id = t.nodes[id].Right
	}
}

// Codeword returns the codeword of symbol.
//
// A Tree of a single symbol has no edges; that symbol is given the one-bit
// codeword "0" so that every occurrence still takes up space in a stream.
//
func (t *Tree) Codeword(symbol Symbol) (Codeword, error) {
	id, found := t.leaves[symbol]
	if !found {
		return Codeword{}, errors.Wrapf(ErrUnknownSymbol, "symbol %v", symbol)
	}
	if id == t.root {
		return MakeCodeword(bitvec.FromBits(false)), nil
	}

	// Leaf to root, then reversed.
	path := make([]bool, 0, log2int(len(t.leaves)))
	for n := id; t.nodes[n].Parent != NoNode; n = t.nodes[n].Parent {
		p := t.nodes[t.nodes[n].Parent]
		assert.Assertf(p.Left == n || p.Right == n, "huffman: node %d is not a child of its parent", n)
		path = append(path, p.Right == n)
	}
	slices.Reverse(path)
	return MakeCodeword(bitvec.FromBits(path...)), nil
}

// Fingerprint returns a hash of the symbols and their codewords.  Two Trees
// with equal fingerprints encode every symbol identically.
func (t *Tree) Fingerprint() uint64 {
	d := xxhash.New()
	var scratch []byte
	for _, symbol := range t.Symbols() {
		cw, err := t.Codeword(symbol)
		assert.Assertf(err == nil, "huffman: %v", err)
		scratch = binary.LittleEndian.AppendUint32(scratch[:0], uint32(symbol))
		scratch = binary.AppendUvarint(scratch, uint64(cw.Size))
		scratch = append(scratch, cw.Bits.Bytes()...)
		_, _ = d.Write(scratch)
	}
	return d.Sum64()
}

// String returns a one-line summary of the Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols, total weight %d)", len(t.leaves), t.nodes[t.root].Weight)
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	for i, n := range t.nodes {
		fmt.Fprintf(&buf, "\t[%d] %v parent=%d left=%d right=%d\n", i, n, n.Parent, n.Left, n.Right)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

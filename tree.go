package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// node is a single node of a code tree.  A leaf owns one symbol and no
// children; an internal node owns exactly two children and carries
// InvalidSymbol.  Ownership is exclusive, so the depth of a leaf equals
// the length of that symbol's code.
type node struct {
	left   *node
	right  *node
	symbol Symbol
}

func newLeaf(symbol Symbol) *node {
	assert.Assertf(symbol >= 0, "leaf symbol %d is negative", symbol)
	return &node{symbol: symbol}
}

func newInternal(left, right *node) *node {
	assert.Assertf(left != nil && right != nil, "internal node requires two children")
	return &node{left: left, right: right, symbol: InvalidSymbol}
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// CodeTree wraps the root of a prefix code tree together with the
// per-symbol bit paths derived from it.  The tree shape alone makes
// the code prefix-free; no separate check is needed.
type CodeTree struct {
	root  *node
	codes []Code
}

// newCodeTree derives the bit path of every reachable leaf.  The root
// must be an internal node: a tree over two or more leaves cannot be
// rooted at a single leaf.
func newCodeTree(root *node, symbolLimit Symbol) *CodeTree {
	assert.Assertf(root != nil, "nil root")
	assert.Assertf(!root.isLeaf(), "code tree rooted at a leaf")
	assert.Assertf(symbolLimit >= 2, "symbolLimit %d < 2", symbolLimit)

	t := &CodeTree{
		root:  root,
		codes: make([]Code, symbolLimit),
	}
	t.buildCodes(root, Code{})
	return t
}

func (t *CodeTree) buildCodes(n *node, prefix Code) {
	if n.isLeaf() {
		assert.Assertf(n.symbol < Symbol(len(t.codes)), "leaf symbol %d outside alphabet of %d", n.symbol, len(t.codes))
		t.codes[n.symbol] = prefix
		return
	}
	t.buildCodes(n.left, prefix.Append(0))
	t.buildCodes(n.right, prefix.Append(1))
}

// Code returns the bit path assigned to symbol.
func (t *CodeTree) Code(symbol Symbol) (Code, error) {
	if symbol < 0 || symbol >= Symbol(len(t.codes)) {
		return Code{}, fmt.Errorf("%w: %d", ErrSymbolRange, symbol)
	}
	hc := t.codes[symbol]
	if hc.Size() == 0 {
		return Code{}, fmt.Errorf("%w: %d", ErrNoCode, symbol)
	}
	return hc, nil
}

// SymbolLimit is the size of the alphabet this tree was built over.
//
// (The first Symbol in the alphabet is always 0.)
func (t *CodeTree) SymbolLimit() Symbol {
	return Symbol(len(t.codes))
}

// Dump writes a programmer-readable debugging dump of the code
// assignment to the given writer.  Symbols without a code are omitted.
func (t *CodeTree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTree{\n")
	numSymbols := t.SymbolLimit()
	for symbol := Symbol(0); symbol < numSymbols; symbol++ {
		hc := t.codes[symbol]
		if hc.Size() == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tCode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

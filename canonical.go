package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/slices"
)

// CanonicalCode holds one code length per symbol, where 0 means the
// symbol is absent from the code.  When the lengths come from a full
// binary tree they satisfy Kraft equality (the lengths of the used
// symbols sum to exactly 1 as powers of one half), and the table alone
// determines a unique tree.  That is all a decoder ever needs to
// receive.
type CanonicalCode struct {
	lengths []int
}

// NewCanonicalCode records the depth of every leaf of tree as that
// symbol's code length.
func NewCanonicalCode(tree *CodeTree) *CanonicalCode {
	cc := &CanonicalCode{lengths: make([]int, tree.SymbolLimit())}

	type walkItem struct {
		n     *node
		depth int
	}
	stack := make([]walkItem, 0, tree.SymbolLimit())
	stack = append(stack, walkItem{tree.root, 0})
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.n.isLeaf() {
			cc.lengths[it.n.symbol] = it.depth
			continue
		}
		stack = append(stack, walkItem{it.n.right, it.depth + 1})
		stack = append(stack, walkItem{it.n.left, it.depth + 1})
	}
	return cc
}

// NewCanonicalCodeFromLengths constructs a CanonicalCode from a raw
// length table, such as one read back from a stream header.  The table
// must describe a full prefix code; anything else (including an
// all-zero table) is rejected with ErrBadLengthTable.
func NewCanonicalCodeFromLengths(lengths []int) (*CanonicalCode, error) {
	cc := &CanonicalCode{lengths: make([]int, len(lengths))}
	copy(cc.lengths, lengths)
	if _, err := buildCanonicalTree(cc.lengths); err != nil {
		return nil, err
	}
	return cc, nil
}

// SymbolLimit is the size of the alphabet this code was built over.
func (cc *CanonicalCode) SymbolLimit() Symbol {
	return Symbol(len(cc.lengths))
}

// CodeLength returns the code length assigned to symbol, 0 if the
// symbol is absent from the code.
func (cc *CanonicalCode) CodeLength(symbol Symbol) (int, error) {
	if symbol < 0 || symbol >= cc.SymbolLimit() {
		return 0, fmt.Errorf("%w: %d", ErrSymbolRange, symbol)
	}
	return cc.lengths[symbol], nil
}

// ToCodeTree rebuilds the unique canonical tree described by the
// length table.  The lengths of a CanonicalCode are always validated
// or freshly derived, so a failed reconstruction means the length
// computation itself is broken and the call fails loudly.
func (cc *CanonicalCode) ToCodeTree() *CodeTree {
	root, err := buildCanonicalTree(cc.lengths)
	assert.Assertf(err == nil, "canonical code invariant violated: %v", err)
	return newCodeTree(root, cc.SymbolLimit())
}

// buildCanonicalTree performs the canonical reconstruction: walk the
// length levels from the maximum down to 1, collect this level's
// leaves in increasing symbol order, then pair the previous level's
// nodes left to right into internal nodes appended after the leaves.
// Exactly one node may remain at the end; any other count means the
// table violates Kraft equality.
func buildCanonicalTree(lengths []int) (*node, error) {
	if len(lengths) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrBadLengthTable)
	}
	for symbol, length := range lengths {
		if length < 0 {
			return nil, fmt.Errorf("%w: symbol %d has negative length %d", ErrBadLengthTable, symbol, length)
		}
	}

	maxLen := slices.Max(lengths)
	if maxLen == 0 {
		return nil, fmt.Errorf("%w: no symbols in use", ErrBadLengthTable)
	}

	var nodes []*node
	for level := maxLen; level >= 0; level-- {
		if len(nodes)%2 != 0 {
			return nil, fmt.Errorf("%w: unpaired node at length %d", ErrBadLengthTable, level+1)
		}
		var next []*node
		if level > 0 {
			for symbol, length := range lengths {
				if length == level {
					next = append(next, newLeaf(Symbol(symbol)))
				}
			}
		}
		for j := 0; j < len(nodes); j += 2 {
			next = append(next, newInternal(nodes[j], nodes[j+1]))
		}
		nodes = next
	}

	if len(nodes) != 1 {
		return nil, fmt.Errorf("%w: reconstruction ended with %d roots", ErrBadLengthTable, len(nodes))
	}
	return nodes[0], nil
}

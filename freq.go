package huffman

import (
	"container/heap"
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// FrequencyTable counts occurrences of each symbol in a fixed-size
// alphabet.  Counts only grow; there is no decrement or removal.
type FrequencyTable struct {
	counts []uint64
}

// NewFrequencyTable constructs a table over an alphabet of numSymbols
// symbols.  A meaningful code needs at least two distinct symbols.
func NewFrequencyTable(numSymbols int) *FrequencyTable {
	assert.Assertf(numSymbols >= 2, "numSymbols %d < 2", numSymbols)
	return &FrequencyTable{counts: make([]uint64, numSymbols)}
}

// SymbolLimit is the size of this table's alphabet.
func (ft *FrequencyTable) SymbolLimit() Symbol {
	return Symbol(len(ft.counts))
}

// Get returns the current count for symbol.
func (ft *FrequencyTable) Get(symbol Symbol) (uint64, error) {
	if symbol < 0 || symbol >= ft.SymbolLimit() {
		return 0, fmt.Errorf("%w: %d", ErrSymbolRange, symbol)
	}
	return ft.counts[symbol], nil
}

// Increment records one more occurrence of symbol.
func (ft *FrequencyTable) Increment(symbol Symbol) error {
	if symbol < 0 || symbol >= ft.SymbolLimit() {
		return fmt.Errorf("%w: %d", ErrSymbolRange, symbol)
	}
	ft.counts[symbol]++
	return nil
}

// BuildTree runs Huffman's algorithm over the symbols with nonzero
// frequency and returns the resulting code tree.
//
// Queue entries are ordered by frequency first and by the lowest
// symbol value contained in the subtree second.  The tie-break is part
// of the wire contract: equal-frequency subtrees must merge in the
// same order on every run and in every implementation.
func (ft *FrequencyTable) BuildTree() *CodeTree {
	h := new(treeHeap)
	numSymbols := ft.SymbolLimit()
	for symbol := Symbol(0); symbol < numSymbols; symbol++ {
		if freq := ft.counts[symbol]; freq != 0 {
			h.list = append(h.list, treeEntry{newLeaf(symbol), symbol, freq})
		}
	}

	// Pad with zero-frequency leaves, lowest symbols first, until the
	// queue can form a tree.
	for symbol := Symbol(0); symbol < numSymbols && len(h.list) < 2; symbol++ {
		if ft.counts[symbol] == 0 {
			h.list = append(h.list, treeEntry{newLeaf(symbol), symbol, 0})
		}
	}
	assert.Assertf(len(h.list) >= 2, "cannot build a code over %d leaves", len(h.list))

	heap.Init(h)
	for h.Len() > 1 {
		x := heap.Pop(h).(treeEntry)
		y := heap.Pop(h).(treeEntry)
		heap.Push(h, treeEntry{
			node:         newInternal(x.node, y.node),
			lowestSymbol: minSymbol(x.lowestSymbol, y.lowestSymbol),
			freq:         x.freq + y.freq,
		})
	}
	root := heap.Pop(h).(treeEntry).node
	return newCodeTree(root, numSymbols)
}

func minSymbol(a, b Symbol) Symbol {
	if a < b {
		return a
	}
	return b
}

// type treeEntry + type treeHeap {{{

type treeEntry struct {
	node         *node
	lowestSymbol Symbol
	freq         uint64
}

type treeHeap struct {
	list []treeEntry
}

func (h *treeHeap) Len() int {
	return len(h.list)
}

func (h *treeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *treeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.lowestSymbol < b.lowestSymbol
}

func (h *treeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(treeEntry))
}

func (h *treeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*treeHeap)(nil)

// }}}

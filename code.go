package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits: the path from a tree's root down
// to one leaf, where 0 descends left and 1 descends right.  The first
// bit of the path is Bit(0).
//
// A path is stored one bit per byte rather than packed into a machine
// word, because a 257-symbol alphabet admits code lengths up to 256.
type Code struct {
	path []byte
}

// MakeCode constructs a Code from a bit path.  Every element of path
// must be 0 or 1, and the caller must not modify path afterwards.
func MakeCode(path []byte) Code {
	return Code{path: path}
}

// Size holds the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc.path)
}

// Bit returns the i'th bit of the path, counting from the root.
func (hc Code) Bit(i int) byte {
	return hc.path[i]
}

// Append returns a new Code extended by one bit.  The receiver is left
// unchanged.
func (hc Code) Append(bit byte) Code {
	next := make([]byte, len(hc.path)+1)
	copy(next, hc.path)
	next[len(hc.path)] = bit
	return Code{path: next}
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if len(hc.path) == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(len(hc.path))
	for _, bit := range hc.path {
		sb.WriteByte('0' + bit)
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code{}

package huffman

import (
	"bufio"
	"fmt"
	"io"
)

// Decoder mirrors Encoder: it walks the canonical tree one bit at a
// time and resolves a symbol each time it reaches a leaf.
type Decoder struct {
	tree *CodeTree
	in   *BitReader
}

// NewDecoder returns a Decoder resolving tree's codes from in.
func NewDecoder(tree *CodeTree, in *BitReader) *Decoder {
	return &Decoder{tree: tree, in: in}
}

// Read returns the next decoded symbol.  Running out of bits mid-code
// yields ErrTruncated.
func (d *Decoder) Read() (Symbol, error) {
	n := d.tree.root
	for !n.isLeaf() {
		bit, err := d.in.ReadBit()
		if err != nil {
			if err == io.EOF {
				return InvalidSymbol, ErrTruncated
			}
			return InvalidSymbol, err
		}
		if bit == 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.symbol, nil
}

// readCodeLengthTable parses and validates the NumSymbols-byte header.
func readCodeLengthTable(in *BitReader) (*CanonicalCode, error) {
	lengths := make([]int, NumSymbols)
	for symbol := range lengths {
		v, err := in.ReadBits(8)
		if err != nil {
			return nil, fmt.Errorf("reading code length table: %w", err)
		}
		lengths[symbol] = int(v)
	}
	return NewCanonicalCodeFromLengths(lengths)
}

// Decompress inverts Compress: it rebuilds the canonical tree from the
// length header alone and decodes codes until it sees the end-of-stream
// symbol.  Padding bits after that are ignored.
func Decompress(in io.Reader, out io.Writer) error {
	br := NewBitReader(in)
	canon, err := readCodeLengthTable(br)
	if err != nil {
		return err
	}
	if length, err := canon.CodeLength(EOFSymbol); err != nil {
		return err
	} else if length == 0 {
		return fmt.Errorf("%w: no end-of-stream code", ErrBadLengthTable)
	}
	tree := canon.ToCodeTree()

	bw := bufio.NewWriter(out)
	dec := NewDecoder(tree, br)
	for {
		symbol, err := dec.Read()
		if err != nil {
			return err
		}
		if symbol == EOFSymbol {
			break
		}
		if err := bw.WriteByte(byte(symbol)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

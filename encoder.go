package huffman

import (
	"fmt"
	"io"
)

// Encoder emits the code-tree bit path for each symbol it is given.
type Encoder struct {
	tree *CodeTree
	out  *BitWriter
}

// NewEncoder returns an Encoder writing tree's codes to out.
func NewEncoder(tree *CodeTree, out *BitWriter) *Encoder {
	return &Encoder{tree: tree, out: out}
}

// Write emits the bit path assigned to symbol, first bit first.
func (e *Encoder) Write(symbol Symbol) error {
	hc, err := e.tree.Code(symbol)
	if err != nil {
		return err
	}
	for i := 0; i < hc.Size(); i++ {
		if err := e.out.WriteBit(int(hc.Bit(i))); err != nil {
			return err
		}
	}
	return nil
}

// maxHeaderLength is the largest code length representable in the
// one-byte-per-symbol header field.
const maxHeaderLength = 255

// writeCodeLengthTable serializes the header: one 8-bit big-endian
// length per symbol, in increasing symbol order.
func writeCodeLengthTable(out *BitWriter, canon *CanonicalCode) error {
	numSymbols := canon.SymbolLimit()
	for symbol := Symbol(0); symbol < numSymbols; symbol++ {
		length, err := canon.CodeLength(symbol)
		if err != nil {
			return err
		}
		if length > maxHeaderLength {
			return fmt.Errorf("%w: symbol %d has length %d", ErrCodeTooLong, symbol, length)
		}
		if err := out.WriteBits(uint64(length), 8); err != nil {
			return err
		}
	}
	return nil
}

// countFrequencies scans r to the end, counting every byte value.
func countFrequencies(r io.Reader) (*FrequencyTable, error) {
	freqs := NewFrequencyTable(NumSymbols)
	buf := make([]byte, 64*1024)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if ierr := freqs.Increment(Symbol(b)); ierr != nil {
				return nil, ierr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return freqs, nil
}

func encodePayload(tree *CodeTree, in io.Reader, out *BitWriter) error {
	enc := NewEncoder(tree, out)
	buf := make([]byte, 64*1024)
	for {
		n, err := in.Read(buf)
		for _, b := range buf[:n] {
			if werr := enc.Write(Symbol(b)); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	return enc.Write(EOFSymbol)
}

// Compress encodes the bytes of in as a canonical Huffman bitstream on
// out.  The input is read twice, once to gather frequencies and once
// to encode, so in must support seeking back to the start.
//
// The output layout is [NumSymbols length bytes][bit-packed payload].
// The payload holds one code per input byte in order, then the
// end-of-stream code, zero-padded to a byte boundary.  There is no
// magic number, version tag, or length prefix.
func Compress(in io.ReadSeeker, out io.Writer) error {
	freqs, err := countFrequencies(in)
	if err != nil {
		return err
	}
	// The terminator always gets a code, even for empty input.
	if err := freqs.Increment(EOFSymbol); err != nil {
		return err
	}

	tree := freqs.BuildTree()
	canon := NewCanonicalCode(tree)
	canonTree := canon.ToCodeTree()

	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return err
	}

	bw := NewBitWriter(out)
	if err := writeCodeLengthTable(bw, canon); err != nil {
		return err
	}
	if err := encodePayload(canonTree, in, bw); err != nil {
		return err
	}
	return bw.Close()
}

package huffman

import (
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// BitWriter is a byte-buffering, most-significant-bit-first bit sink.
// Close pads the final partial byte with 0 bits before flushing it, so
// a decoder must recognize the end of data from the stream contents
// rather than from byte alignment.
type BitWriter struct {
	bw *bitio.Writer
}

// NewBitWriter returns a BitWriter emitting to w.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{bw: bitio.NewWriter(w)}
}

// WriteBit writes a single bit.  The argument must be 0 or 1.
func (w *BitWriter) WriteBit(bit int) error {
	if bit != 0 && bit != 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBit, bit)
	}
	return w.bw.WriteBool(bit == 1)
}

// WriteBits writes the n lowest bits of value, most significant bit
// first.  value must not have bits set at position n or above.
func (w *BitWriter) WriteBits(value uint64, n uint8) error {
	return w.bw.WriteBits(value, n)
}

// Close pads the current partial byte with 0 bits, flushes it, and
// releases the writer.  It does not close the underlying io.Writer.
func (w *BitWriter) Close() error {
	return w.bw.Close()
}

// BitReader is the reading counterpart of BitWriter: it consumes bytes
// most significant bit first.
type BitReader struct {
	br *bitio.Reader
}

// NewBitReader returns a BitReader consuming from r.
func NewBitReader(r io.Reader) *BitReader {
	return &BitReader{br: bitio.NewReader(r)}
}

// ReadBit returns the next bit as 0 or 1, or io.EOF past the final
// byte.
func (r *BitReader) ReadBit() (int, error) {
	b, err := r.br.ReadBool()
	if err != nil {
		return 0, err
	}
	if b {
		return 1, nil
	}
	return 0, nil
}

// ReadBits reads n bits, most significant bit first.
func (r *BitReader) ReadBits(n uint8) (uint64, error) {
	return r.br.ReadBits(n)
}

// Package huffman implements a canonical Huffman compressor for byte
// streams.  The alphabet is the 256 byte values plus a reserved
// end-of-stream symbol, so the emitted bitstream is self-terminating:
// a decoder stops when it recognizes the end-of-stream code, not when
// the input runs out of bytes.
//
// The code is transmitted as a bare table of per-symbol code lengths.
// Canonical reconstruction turns that table back into the exact tree
// the encoder used, so the bit patterns themselves never appear on the
// wire.
//
// References:
//
//	<https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
//	<https://en.wikipedia.org/wiki/Canonical_Huffman_code>
package huffman

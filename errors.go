package huffman

import "errors"

var (
	// ErrInvalidBit is returned when a value other than 0 or 1 is
	// passed to BitWriter.WriteBit.
	ErrInvalidBit = errors.New("huffman: bit must be 0 or 1")

	// ErrSymbolRange is returned when a symbol falls outside the
	// alphabet a table or tree was built for.
	ErrSymbolRange = errors.New("huffman: symbol out of range")

	// ErrNoCode is returned when a symbol has no code in the tree,
	// i.e. it had zero frequency when the tree was built.
	ErrNoCode = errors.New("huffman: symbol has no code")

	// ErrCodeTooLong is returned when a canonical code length does not
	// fit the one-byte-per-symbol header field.
	ErrCodeTooLong = errors.New("huffman: code length too long for header")

	// ErrBadLengthTable is returned when a code length table does not
	// describe a full prefix code.
	ErrBadLengthTable = errors.New("huffman: invalid code length table")

	// ErrTruncated is returned when a bitstream ends before the
	// end-of-stream code has been seen.
	ErrTruncated = errors.New("huffman: truncated bitstream")
)

package huffman

// Symbol represents a symbol in the compressor's alphabet.  Symbols 0
// through 255 stand for the byte values.  Negative symbols are not
// valid.
type Symbol int32

// NumSymbols is the size of the alphabet: 256 byte values plus the
// end-of-stream marker.
const NumSymbols = 257

// EOFSymbol is the reserved end-of-stream symbol.  It is forced to a
// nonzero frequency before tree construction, so every stream has a
// terminator code even when the input is empty.
const EOFSymbol = Symbol(256)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

package huffman

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func compress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Compress(bytes.NewReader(data), &buf))
	return buf.Bytes()
}

// The header is one byte per symbol, always exactly NumSymbols bytes,
// no matter how little of the alphabet the input uses.
func TestCompress_Header(t *testing.T) {
	out := compress(t, []byte("hello"))
	require.Greater(t, len(out), NumSymbols)

	header := out[:NumSymbols]
	for _, symbol := range []byte("helo") {
		require.NotZero(t, header[symbol], "symbol %q should have a code", symbol)
	}
	require.NotZero(t, header[256], "end-of-stream symbol should have a code")
	require.Zero(t, header['z'], "unused symbol should have length 0")
	require.Zero(t, header[0], "unused symbol should have length 0")
}

// Empty input still encodes: the end-of-stream symbol is forced to
// frequency 1 and the tree is padded with a zero-frequency leaf for
// symbol 0, so both get length-1 codes and the payload is the single
// end-of-stream bit, zero-padded.
func TestCompress_Empty(t *testing.T) {
	out := compress(t, nil)
	require.Len(t, out, NumSymbols+1)

	require.EqualValues(t, 1, out[0])
	require.EqualValues(t, 1, out[256])
	for symbol := 1; symbol < 256; symbol++ {
		require.Zero(t, out[symbol], "symbol %d should be absent", symbol)
	}
	require.EqualValues(t, 0x80, out[NumSymbols])
}

func TestCompress_Deterministic(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	first := compress(t, data)
	second := compress(t, data)
	require.Equal(t, first, second)
}

// No symbol's code may be a bit-prefix of another symbol's code.
func TestCompress_PrefixFree(t *testing.T) {
	ft := NewFrequencyTable(NumSymbols)
	for _, b := range []byte("abracadabra") {
		require.NoError(t, ft.Increment(Symbol(b)))
	}
	require.NoError(t, ft.Increment(EOFSymbol))

	canonTree := NewCanonicalCode(ft.BuildTree()).ToCodeTree()

	var paths []string
	for symbol := Symbol(0); symbol < canonTree.SymbolLimit(); symbol++ {
		hc, err := canonTree.Code(symbol)
		if err != nil {
			continue
		}
		paths = append(paths, strings.Trim(hc.String(), "\""))
	}
	require.GreaterOrEqual(t, len(paths), 2)

	for i, a := range paths {
		for j, b := range paths {
			if i == j {
				continue
			}
			require.False(t, strings.HasPrefix(b, a), "code %s is a prefix of %s", a, b)
		}
	}
}

func TestEncoder_NoCode(t *testing.T) {
	ft := NewFrequencyTable(NumSymbols)
	require.NoError(t, ft.Increment(0))
	require.NoError(t, ft.Increment(1))

	enc := NewEncoder(ft.BuildTree(), NewBitWriter(&bytes.Buffer{}))
	require.ErrorIs(t, enc.Write(42), ErrNoCode)
}

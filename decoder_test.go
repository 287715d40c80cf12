package huffman

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, data []byte) {
	t.Helper()
	var compressed bytes.Buffer
	require.NoError(t, Compress(bytes.NewReader(data), &compressed))

	var restored bytes.Buffer
	require.NoError(t, Decompress(bytes.NewReader(compressed.Bytes()), &restored))
	require.True(t, bytes.Equal(data, restored.Bytes()), "round trip failed: got %q, want %q", restored.Bytes(), data)
}

func TestRoundTrip_Empty(t *testing.T) {
	roundTrip(t, []byte{})
}

func TestRoundTrip_Short(t *testing.T) {
	roundTrip(t, []byte("hi"))
}

func TestRoundTrip_Text(t *testing.T) {
	roundTrip(t, []byte("the quick brown fox jumps over the lazy dog"))
}

func TestRoundTrip_300Zeros(t *testing.T) {
	roundTrip(t, make([]byte, 300))
}

func TestRoundTrip_AllByteValues(t *testing.T) {
	data := make([]byte, 0, 3*256)
	for rep := 0; rep < 3; rep++ {
		for b := 0; b < 256; b++ {
			data = append(data, byte(b))
		}
	}
	roundTrip(t, data)
}

func TestRoundTrip_Skewed(t *testing.T) {
	data := bytes.Repeat([]byte{'x'}, 10000)
	data = append(data, []byte("abcdefg")...)
	roundTrip(t, data)
}

func TestRoundTrip_PseudoRandom(t *testing.T) {
	data := make([]byte, 4096)
	state := uint32(0x2545f491)
	for i := range data {
		state = state*1664525 + 1013904223
		data[i] = byte(state >> 24)
	}
	roundTrip(t, data)
}

func TestDecompress_AllZeroHeader(t *testing.T) {
	stream := make([]byte, NumSymbols)
	err := Decompress(bytes.NewReader(stream), &bytes.Buffer{})
	require.ErrorIs(t, err, ErrBadLengthTable)
}

func TestDecompress_ShortHeader(t *testing.T) {
	stream := []byte{1, 1, 0, 0}
	err := Decompress(bytes.NewReader(stream), &bytes.Buffer{})
	require.Error(t, err)
}

// A header describing a full code without the end-of-stream symbol is
// rejected before any payload bit is read.
func TestDecompress_MissingEOFCode(t *testing.T) {
	stream := make([]byte, NumSymbols+1)
	stream[0] = 1
	stream[1] = 1
	err := Decompress(bytes.NewReader(stream), &bytes.Buffer{})
	require.ErrorIs(t, err, ErrBadLengthTable)
}

// Chopping the payload off a valid stream leaves the decoder without
// an end-of-stream code to find.
func TestDecompress_Truncated(t *testing.T) {
	var compressed bytes.Buffer
	require.NoError(t, Compress(bytes.NewReader(nil), &compressed))
	require.Len(t, compressed.Bytes(), NumSymbols+1)

	headerOnly := compressed.Bytes()[:NumSymbols]
	err := Decompress(bytes.NewReader(headerOnly), &bytes.Buffer{})
	require.ErrorIs(t, err, ErrTruncated)
}

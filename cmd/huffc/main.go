// Command huffc compresses a file into a self-describing canonical
// Huffman bitstream, or expands one back with -d.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ChiefGitau/huffman"
)

func main() {
	decompress := flag.Bool("d", false, "decompress the input instead of compressing it")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: huffc [-d] <input file> <output file>")
		os.Exit(2)
	}
	inPath := flag.Arg(0)
	outPath := flag.Arg(1)

	if err := run(inPath, outPath, *decompress); err != nil {
		log.Error().Err(err).Str("input", inPath).Str("output", outPath).Msg("failed")
		os.Exit(1)
	}

	inSize := fileSize(inPath)
	outSize := fileSize(outPath)
	ev := log.Info().
		Int64("input_bytes", inSize).
		Int64("output_bytes", outSize)
	if *decompress {
		ev.Msg("decompressed")
		return
	}
	if inSize > 0 {
		ev = ev.Float64("ratio_pct", float64(outSize)/float64(inSize)*100)
	}
	ev.Msg("compressed")
}

func run(inPath, outPath string, decompress bool) (err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}

	if decompress {
		err = huffman.Decompress(in, out)
	} else {
		err = huffman.Compress(in, out)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

func fileSize(path string) int64 {
	fi, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return fi.Size()
}

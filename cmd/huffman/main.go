// Command huffman builds a Huffman code for a piece of text, packs the text
// with it, and checks that the packed stream decodes back to the input.
//
// Usage:
//
//     huffman [-in FILE] [-out FILE] [-dump] [TEXT...]
//
// With -out, the stream is written to FILE as a uvarint bit count followed
// by the bits, most significant first, padded with zeros to a whole byte.
// The file is then read back and decoded.
//
package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/icza/bitio"
	"github.com/pkg/errors"

	huffman "github.com/chronos-tachyon/huffmantree"
	"github.com/chronos-tachyon/huffmantree/bitvec"
	"github.com/chronos-tachyon/huffmantree/internal/logger"
)

func main() {
	logg := logger.New(os.Stderr)
	if err := run(os.Args[1:], os.Stdout, logg); err != nil {
		logg.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, logg logger.Logger) error {
	fs := flag.NewFlagSet("huffman", flag.ContinueOnError)
	inPath := fs.String("in", "", "read the text from `file` instead of the arguments")
	outPath := fs.String("out", "", "write the packed stream to `file`")
	dump := fs.Bool("dump", false, "print the tree and the codebook")
	if err := fs.Parse(args); err != nil {
		return err
	}

	text, err := readText(*inPath, fs.Args())
	if err != nil {
		return err
	}
	symbols := huffman.SymbolsOf(text)
	if len(symbols) == 0 {
		return errors.New("no input text")
	}

	tree, err := huffman.Build(huffman.Frequencies(symbols))
	if err != nil {
		return err
	}

	var enc huffman.Encoder
	enc.Init(tree)
	stream, err := enc.EncodeAll(symbols)
	if err != nil {
		return err
	}
	logg.Infof("encoded %d symbols (%d distinct) into %d bits, codewords %d..%d bits, fingerprint %016x",
		len(symbols), len(tree.Symbols()), stream.Len(), enc.MinSize(), enc.MaxSize(), tree.Fingerprint())

	if *dump {
		if _, err := tree.Dump(stdout); err != nil {
			return err
		}
		if _, err := enc.Dump(stdout); err != nil {
			return err
		}
	}

	if *outPath != "" {
		if err := writeStream(*outPath, stream); err != nil {
			return err
		}
		stream, err = readStream(*outPath)
		if err != nil {
			return err
		}
		logg.Infof("wrote %s", *outPath)
	}

	var dec huffman.Decoder
	dec.Init(tree)
	decoded, err := dec.Decode(stream)
	if err != nil {
		return err
	}
	if got := huffman.StringOf(decoded); got != text {
		return errors.Errorf("round trip mismatch: got %q", got)
	}
	logg.Infof("round trip ok")

	_, err = fmt.Fprintln(stdout, stream)
	return err
}

func readText(path string, args []string) (string, error) {
	if path == "" {
		return strings.Join(args, " "), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(raw), nil
}

func writeStream(path string, stream bitvec.Vector) error {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if _, err := w.Write(binary.AppendUvarint(nil, uint64(stream.Len()))); err != nil {
		return errors.WithStack(err)
	}
	for i := stream.Len() - 1; i >= 0; i-- {
		bit, err := stream.Bit(i)
		if err != nil {
			return err
		}
		if err := w.WriteBool(bit); err != nil {
			return errors.WithStack(err)
		}
	}
	if err := w.Close(); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(os.WriteFile(path, buf.Bytes(), 0o666))
}

func readStream(path string) (bitvec.Vector, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return bitvec.Vector{}, errors.WithStack(err)
	}
	r := bitio.NewReader(bytes.NewReader(raw))
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return bitvec.Vector{}, errors.Wrapf(err, "%s: bit count", path)
	}
	if n > uint64(len(raw))*8 {
		return bitvec.Vector{}, errors.Errorf("%s: bit count %d exceeds file size", path, n)
	}
	bits := make([]bool, n)
	for i := range bits {
		if bits[i], err = r.ReadBool(); err != nil {
			return bitvec.Vector{}, errors.Wrapf(err, "%s: bit %d", path, i)
		}
	}
	return bitvec.FromBits(bits...), nil
}

package huffarc

import (
	"bufio"
	"fmt"
	"io"
)

// Encoder writes a sequence of files into a single self-describing
// archive. Every block carries codes for both SymbolOneMoreFile and
// SymbolArchiveEnd, so the separator bit following a block and the
// terminator bit following the final block can always be decoded
// under that block's own table, before the encoder knows whether
// another file follows.
type Encoder struct {
	bw       *bitWriter
	codes    map[Symbol]HuffmanCode // previous block's table
	wroteAny bool
	closed   bool
}

// NewEncoder returns an Encoder that writes its archive to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{bw: newBitWriter(w)}
}

// AddFile encodes one file's name and contents as a new block.
func (e *Encoder) AddFile(name string, r io.Reader) error {
	if e.wroteAny {
		if err := e.writeSeparator(SymbolOneMoreFile); err != nil {
			return err
		}
	}

	symbols := make([]Symbol, 0, len(name)+8)
	for i := 0; i < len(name); i++ {
		symbols = append(symbols, Symbol(name[i]))
	}
	symbols = append(symbols, SymbolFilenameEnd)

	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("huffarc: read input: %w", err)
		}
		symbols = append(symbols, Symbol(b))
	}

	// These two sentinels exist only to guarantee their codes are
	// present in this block's table; they are not part of the coded
	// payload (see below).
	symbols = append(symbols, SymbolOneMoreFile, SymbolArchiveEnd)

	freq := make(map[Symbol]int, len(symbols))
	for _, s := range symbols {
		freq[s]++
	}
	lengths := buildCodeLengths(freq)
	codes := canonicalCodes(lengths)

	payload := symbols[:len(symbols)-2]

	if err := writeBlockHeader(e.bw, codes); err != nil {
		return err
	}
	for _, s := range payload {
		e.bw.WriteBits(codes[s])
	}
	if err := e.bw.Err(); err != nil {
		return err
	}

	e.codes = codes
	e.wroteAny = true
	return nil
}

func (e *Encoder) writeSeparator(sym Symbol) error {
	code, ok := e.codes[sym]
	if !ok {
		return fmt.Errorf("huffarc: %w: no code for framing symbol %d", ErrCorruptStream, sym)
	}
	e.bw.WriteBits(code)
	return e.bw.Err()
}

// Close writes the end-of-archive terminator (if at least one file
// was added) and flushes the underlying BitWriter. It is safe to call
// more than once.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if e.wroteAny {
		if err := e.writeSeparator(SymbolArchiveEnd); err != nil {
			return err
		}
	}
	return e.bw.Close()
}

// File is one archive member as reconstructed by the Decoder.
type File struct {
	Name string
	Data []byte
}

// Decoder reads files back out of an archive produced by Encoder.
type Decoder struct {
	br *bitReader
}

// NewDecoder returns a Decoder that reads its archive from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{br: newBitReader(r)}
}

// DecodeAll decodes every file in the archive. Any failure surfaces
// as a single ErrInvalidArchive, wrapping the underlying cause. If
// info is non-nil, a short per-block diagnostic is written to it.
func (d *Decoder) DecodeAll(info io.Writer) ([]File, error) {
	var files []File
	for {
		f, terminator, err := d.decodeBlock(info)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArchive, err)
		}
		files = append(files, f)
		if terminator == SymbolArchiveEnd {
			return files, nil
		}
	}
}

func (d *Decoder) decodeBlock(info io.Writer) (File, Symbol, error) {
	symbols, lengthCounts, err := readBlockHeader(d.br)
	if err != nil {
		return File{}, 0, err
	}

	codes, err := reconstructCodeTable(symbols, lengthCounts)
	if err != nil {
		return File{}, 0, err
	}

	if info != nil {
		fmt.Fprintf(info, "block: %d symbols, max code length %d\n", len(symbols), len(lengthCounts))
	}

	t := emptyTrie()
	for sym, code := range codes {
		t.addSymbol(sym, code)
	}

	var name []byte
	for {
		sym, err := t.decodeNext(d.br)
		if err != nil {
			return File{}, 0, err
		}
		if sym == SymbolFilenameEnd {
			break
		}
		name = append(name, byte(sym))
	}

	var data []byte
	for {
		sym, err := t.decodeNext(d.br)
		if err != nil {
			return File{}, 0, err
		}
		if sym == SymbolOneMoreFile || sym == SymbolArchiveEnd {
			if info != nil {
				fmt.Fprintf(info, "  %s (%d bytes)\n", name, len(data))
			}
			return File{Name: string(name), Data: data}, sym, nil
		}
		data = append(data, byte(sym))
	}
}

package huffarc

import (
	"bytes"
	"testing"
)

func TestTrieAddAndDecode(t *testing.T) {
	codes := map[Symbol]HuffmanCode{
		Symbol('a'):       {0, 0},
		Symbol('b'):       {0, 1},
		Symbol('c'):       {1, 0},
		SymbolFilenameEnd: {1, 1},
	}

	tr := emptyTrie()
	for sym, code := range codes {
		tr.addSymbol(sym, code)
	}

	var bits HuffmanCode
	for _, sym := range []Symbol{Symbol('a'), Symbol('c'), Symbol('b'), SymbolFilenameEnd} {
		bits = append(bits, codes[sym]...)
	}

	buf := new(bytes.Buffer)
	w := newBitWriter(buf)
	w.WriteBits(bits)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r := newBitReader(buf)
	want := []Symbol{Symbol('a'), Symbol('c'), Symbol('b'), SymbolFilenameEnd}
	for _, w := range want {
		got, err := tr.decodeNext(r)
		if err != nil {
			t.Fatal(err)
		}
		if got != w {
			t.Fatalf("got %d want %d", got, w)
		}
	}
}

func TestTrieMergeOwnership(t *testing.T) {
	left := newLeafTrie(1)
	right := newLeafTrie(2)
	m := merge(left, right)

	if m.nodes[m.root].leaf {
		t.Fatal("merged root must not be a leaf")
	}

	r := newBitReader(bytes.NewBuffer([]byte{0x00})) // single 0 bit
	sym, err := m.decodeNext(r)
	if err != nil {
		t.Fatal(err)
	}
	if sym != 1 {
		t.Fatalf("descending left should reach symbol 1, got %d", sym)
	}
}

func TestTrieCorruptStreamOnMissingChild(t *testing.T) {
	tr := emptyTrie()
	tr.addSymbol(Symbol('a'), HuffmanCode{0})

	r := newBitReader(bytes.NewBuffer([]byte{0xff})) // all-1 bits, but only a left child exists
	if _, err := tr.decodeNext(r); err != ErrCorruptStream {
		t.Fatalf("got %v want ErrCorruptStream", err)
	}
}

func TestSymbolsWithCodeLengthsBFSOrder(t *testing.T) {
	left := newLeafTrie(10)
	right := newLeafTrie(20)
	m := merge(left, right)

	got := m.symbolsWithCodeLengths()
	if len(got) != 2 {
		t.Fatalf("expected 2 leaves, got %d", len(got))
	}
	if got[0].symbol != 10 || got[1].symbol != 20 {
		t.Fatalf("expected BFS order [10 20], got [%d %d]", got[0].symbol, got[1].symbol)
	}
	for _, sl := range got {
		if sl.length != 1 {
			t.Fatalf("expected depth 1, got %d", sl.length)
		}
	}
}

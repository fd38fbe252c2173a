package huffarc

import (
	"container/heap"
	"sort"
)

// buildCodeLengths builds the optimal Huffman code lengths for the
// given per-symbol frequencies via the classic min-heap merge: insert
// one leaf trie per symbol, repeatedly merge the two lowest-count
// entries, and extract lengths by BFS from the single surviving root.
//
// The heap compares by count only; ties are broken by heap-internal
// order, which is deliberately left unspecified (see canonicalCodes).
func buildCodeLengths(freq map[Symbol]int) map[Symbol]int {
	symbols := make([]Symbol, 0, len(freq))
	for s := range freq {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	h := make(huffHeap, 0, len(symbols))
	for _, s := range symbols {
		h = append(h, huffHeapItem{count: freq[s], t: newLeafTrie(s)})
	}
	heap.Init(&h)

	for len(h) > 1 {
		a := heap.Pop(&h).(huffHeapItem)
		b := heap.Pop(&h).(huffHeapItem)
		heap.Push(&h, huffHeapItem{count: a.count + b.count, t: merge(a.t, b.t)})
	}

	lengths := make(map[Symbol]int, len(symbols))
	for _, sl := range h[0].t.symbolsWithCodeLengths() {
		lengths[sl.symbol] = sl.length
	}

	// A single-symbol alphabet degenerates to a one-node tree (depth
	// 0); force a length of at least 1. Real blocks never hit this:
	// the encoder always adds at least two sentinels to the payload.
	if len(lengths) == 1 {
		for s := range lengths {
			lengths[s] = 1
		}
	}

	return lengths
}

type huffHeapItem struct {
	count int
	t     *trie
}

type huffHeap []huffHeapItem

func (h huffHeap) Len() int            { return len(h) }
func (h huffHeap) Less(i, j int) bool  { return h[i].count < h[j].count }
func (h huffHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *huffHeap) Push(x interface{}) { *h = append(*h, x.(huffHeapItem)) }
func (h *huffHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// canonicalCodes sorts (symbol, length) pairs by length ascending then
// symbol ascending, and assigns each the lexicographically smallest
// code consistent with that order: codes of equal length are
// consecutive integers, and a code is extended with zero bits and
// incremented whenever the length grows.
func canonicalCodes(lengths map[Symbol]int) map[Symbol]HuffmanCode {
	entries := sortedSymbolLengths(lengths)

	codes := make(map[Symbol]HuffmanCode, len(entries))
	current := HuffmanCode{}

	for _, e := range entries {
		for len(current) < e.length {
			current = append(current, 0)
		}

		stored := make(HuffmanCode, len(current))
		copy(stored, current)
		codes[e.symbol] = stored

		current = incrementCode(current)
	}

	return codes
}

func sortedSymbolLengths(lengths map[Symbol]int) []symbolLength {
	entries := make([]symbolLength, 0, len(lengths))
	for s, l := range lengths {
		entries = append(entries, symbolLength{symbol: s, length: l})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].length != entries[j].length {
			return entries[i].length < entries[j].length
		}
		return entries[i].symbol < entries[j].symbol
	})
	return entries
}

// incrementCode treats code as a big-endian binary number (bit 0 is
// the MSB) and returns code+1: trailing 1 bits flip to 0 and the first
// 0 bit encountered flips to 1; if every bit was 1, the code grows by
// one bit.
func incrementCode(code HuffmanCode) HuffmanCode {
	i := len(code)
	for i > 0 && code[i-1] == 1 {
		i--
	}

	if i == 0 {
		out := make(HuffmanCode, len(code)+1)
		out[0] = 1
		return out
	}

	out := make(HuffmanCode, len(code))
	copy(out, code)
	for j := i; j < len(out); j++ {
		out[j] = 0
	}
	out[i-1] = 1
	return out
}

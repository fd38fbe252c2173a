package huffarc

// This file implements the self-describing per-block header: the
// symbol count, the symbol list in canonical (length, symbol) order,
// and the run of per-length symbol counts, all as 9-bit fields.

func writeUint9(bw *bitWriter, v int) {
	bits := make(HuffmanCode, symbolBits)
	for i := 0; i < symbolBits; i++ {
		bits[i] = byte((v >> i) & 1)
	}
	bw.WriteBits(bits)
}

func readUint9(br *bitReader) (int, error) {
	bits, err := br.ReadBits(symbolBits)
	if err != nil {
		return 0, err
	}
	v := 0
	for i, b := range bits {
		v |= int(b) << i
	}
	return v, nil
}

// writeBlockHeader emits symCount, the symbols in (length, symbol)
// order, and the per-length symbol counts.
func writeBlockHeader(bw *bitWriter, codes map[Symbol]HuffmanCode) error {
	lengths := make(map[Symbol]int, len(codes))
	for s, c := range codes {
		lengths[s] = len(c)
	}
	entries := sortedSymbolLengths(lengths)

	writeUint9(bw, len(entries))
	for _, e := range entries {
		writeUint9(bw, int(e.symbol))
	}

	maxLen := entries[len(entries)-1].length
	counts := make([]int, maxLen)
	for _, e := range entries {
		counts[e.length-1]++
	}
	for _, c := range counts {
		writeUint9(bw, c)
	}

	return bw.Err()
}

// readBlockHeader reads symCount symbols (in canonical order) and the
// length-count run that follows them. The open question in spec §9
// ("single-symbol file") is resolved here: an empty alphabet
// (symCount == 0) is rejected as corrupt rather than producing a
// trie with no leaves.
func readBlockHeader(br *bitReader) (symbols []Symbol, lengthCounts []int, err error) {
	n, err := readUint9(br)
	if err != nil {
		return nil, nil, err
	}
	if n == 0 {
		return nil, nil, ErrCorruptStream
	}

	symbols = make([]Symbol, n)
	for i := range symbols {
		v, err := readUint9(br)
		if err != nil {
			return nil, nil, err
		}
		symbols[i] = Symbol(v)
	}

	total := 0
	for total < n {
		if len(lengthCounts) >= n {
			return nil, nil, ErrCorruptStream
		}
		c, err := readUint9(br)
		if err != nil {
			return nil, nil, err
		}
		lengthCounts = append(lengthCounts, c)
		total += c
		if total > n {
			return nil, nil, ErrCorruptStream
		}
	}

	return symbols, lengthCounts, nil
}

// reconstructCodeTable rebuilds the canonical code for every symbol
// from the header alone: the k-th symbol (0-indexed, in the order
// transmitted) gets the length ℓ for which c_1+…+c_ℓ first reaches
// k+1, and codes within a length are assigned by the same
// zero-extend-then-increment procedure used to encode them.
func reconstructCodeTable(symbols []Symbol, lengthCounts []int) (map[Symbol]HuffmanCode, error) {
	if len(lengthCounts) == 0 {
		return nil, ErrCorruptStream
	}

	codes := make(map[Symbol]HuffmanCode, len(symbols))
	current := HuffmanCode{0}
	countAtCurrentLength := 0

	for _, sym := range symbols {
		for {
			idx := len(current) - 1
			if idx >= len(lengthCounts) {
				return nil, ErrCorruptStream
			}
			if countAtCurrentLength != lengthCounts[idx] {
				break
			}
			countAtCurrentLength = 0
			current = append(current, 0)
		}

		stored := make(HuffmanCode, len(current))
		copy(stored, current)
		codes[sym] = stored

		countAtCurrentLength++
		current = incrementCode(current)
	}

	return codes, nil
}

package huffarc

// Symbol is a code point in the archive's 9-bit alphabet: the 256 byte
// values plus three framing sentinels.
type Symbol uint16

const (
	// SymbolFilenameEnd terminates a file name in the symbol stream.
	SymbolFilenameEnd Symbol = 256
	// SymbolOneMoreFile separates consecutive files inside the archive.
	SymbolOneMoreFile Symbol = 257
	// SymbolArchiveEnd marks the end of the archive.
	SymbolArchiveEnd Symbol = 258
)

// symbolBits is the width of a Symbol as written on the wire.
const symbolBits = 9

// HuffmanCode is an ordered sequence of bits, MSB-first: bit 0 is the
// first bit written to (or read from) the bit stream for this code.
type HuffmanCode []byte

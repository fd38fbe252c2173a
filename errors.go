package huffarc

import "errors"

// ErrEndOfStream is returned when a bit source cannot supply a
// requested bit.
var ErrEndOfStream = errors.New("huffarc: end of stream")

// ErrCorruptStream is returned when a Trie descent falls off the tree
// or a block header is internally inconsistent (e.g. accumulated
// length counts exceed the declared symbol count).
var ErrCorruptStream = errors.New("huffarc: corrupt stream")

// ErrInvalidArchive is the single user-facing error surfaced by the
// Decoder; it wraps the lower-level ErrEndOfStream/ErrCorruptStream
// (or an underlying I/O failure) that caused decoding to fail.
var ErrInvalidArchive = errors.New("huffarc: cannot decode encoded data")

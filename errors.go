package huffman

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when there is no text, and therefore no
	// symbols, to build a Huffman tree from.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrZeroFrequency is returned by BuildTree when a symbol is listed
	// with a count of zero.
	ErrZeroFrequency = errors.New("huffman: symbol with zero frequency")

	// ErrEmptyTable is returned when canonicalizing a table with no
	// entries.
	ErrEmptyTable = errors.New("huffman: empty code table")

	// ErrInvalidCode is returned for codes that are empty or that contain
	// anything other than '0' and '1'.
	ErrInvalidCode = errors.New("huffman: invalid code")

	// ErrOversubscribed is returned when a set of code lengths cannot be
	// assigned prefix-free codes.
	ErrOversubscribed = errors.New("huffman: code lengths are oversubscribed")

	// ErrShortBuffer is returned by Unpack when the packed buffer holds
	// fewer bits than requested.
	ErrShortBuffer = errors.New("huffman: packed buffer too short")
)

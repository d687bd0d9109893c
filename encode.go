package huffman

import (
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Encode replaces every symbol of text with its code from codes and returns
// the concatenation, as a string of '0' and '1' characters.
//
// Every symbol of text must appear in codes.  A missing symbol means the table
// was built for some other text; Encode panics rather than drop it.
func Encode(codes CodeTable, text string) string {
	var sb strings.Builder
	sb.Grow(EncodedSize(codes, text))
	for _, ch := range text {
		sb.WriteString(codes[Symbol(ch)])
	}
	return sb.String()
}

// EncodedSize returns the number of bits Encode would produce for text, i.e.
// the sum of the code lengths of its symbols.  It panics under the same
// conditions as Encode.
func EncodedSize(codes CodeTable, text string) int {
	var size int
	for _, ch := range text {
		code, found := codes[Symbol(ch)]
		assert.Assertf(found, "symbol %s is missing from the code table", Symbol(ch))
		size += len(code)
	}
	return size
}

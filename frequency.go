package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Frequencies maps each distinct symbol of a text to its number of
// occurrences.
type Frequencies map[Symbol]uint64

// CountFrequencies scans text one code point at a time and counts each
// symbol.  Bytes that are not valid UTF-8 count as U+FFFD.  The empty string
// yields an empty, non-nil table.
func CountFrequencies(text string) Frequencies {
	freq := make(Frequencies)
	for _, ch := range text {
		freq[Symbol(ch)]++
	}
	return freq
}

// Total returns the sum of all counts, i.e. the number of symbols in the text
// that was counted.
func (freq Frequencies) Total() uint64 {
	var sum uint64
	for _, n := range freq {
		sum += n
	}
	return sum
}

// Symbols returns the distinct symbols in ascending order.
func (freq Frequencies) Symbols() []Symbol {
	list := make(bySymbol, 0, len(freq))
	for symbol := range freq {
		list = append(list, symbol)
	}
	list.Sort()
	return list
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (freq Frequencies) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Frequencies{\n")
	for _, symbol := range freq.Symbols() {
		fmt.Fprintf(&buf, "\t%s: %d\n", symbol, freq[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

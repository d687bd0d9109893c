package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

// CodeTable maps each symbol to its code, written as a string of '0' and '1'
// characters.
type CodeTable map[Symbol]string

// Symbols returns the symbols of the table in ascending order.
func (codes CodeTable) Symbols() []Symbol {
	list := make(bySymbol, 0, len(codes))
	for symbol := range codes {
		list = append(list, symbol)
	}
	list.Sort()
	return list
}

// Lengths returns the length of each symbol's code.  The bit patterns
// themselves are discarded.
func (codes CodeTable) Lengths() LengthTable {
	lengths := make(LengthTable, len(codes))
	for symbol, code := range codes {
		lengths[symbol] = len(code)
	}
	return lengths
}

// Validate checks that every code is a non-empty string of '0' and '1'
// characters.  It does not check that the table is prefix-free; see
// IsPrefixFree.
func (codes CodeTable) Validate() error {
	for _, symbol := range codes.Symbols() {
		code := codes[symbol]
		if code == "" {
			return fmt.Errorf("%w: empty code for %s", ErrInvalidCode, symbol)
		}
		if err := checkBits(code); err != nil {
			return fmt.Errorf("symbol %s: %w", symbol, err)
		}
	}
	return nil
}

// IsPrefixFree returns true iff no code in the table is a prefix of any other
// code in the table.  Two symbols sharing a code count as a violation.
func (codes CodeTable) IsPrefixFree() bool {
	list := make([]string, 0, len(codes))
	for _, code := range codes {
		list = append(list, code)
	}
	sort.Strings(list)

	// If a is a prefix of c and a < b < c, then a is also a prefix of b,
	// so only neighbors need to be compared.
	for i := 1; i < len(list); i++ {
		if strings.HasPrefix(list[i], list[i-1]) {
			return false
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer, one symbol per line in ascending Symbol order.
func (codes CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, symbol := range codes.Symbols() {
		fmt.Fprintf(&buf, "\t%s: %q\n", symbol, codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

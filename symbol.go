package huffman

import (
	"math"
	"sort"
	"strconv"
)

// Symbol represents a symbol in the input alphabet: one Unicode code point.
// Symbols are ordered by numeric value.  Negative symbols are not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.  Internal tree nodes carry it.
const InvalidSymbol = Symbol(-1)

// IsValid returns true if this Symbol is a real member of the alphabet.
func (s Symbol) IsValid() bool {
	return s >= 0
}

// String returns the symbol as a Go-quoted character literal.
func (s Symbol) String() string {
	if !s.IsValid() {
		return "InvalidSymbol"
	}
	return strconv.QuoteRune(rune(s))
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}

package huffman

import (
	"sort"

	"github.com/op/go-logging"
)

// Canonicalize rewrites a code table into canonical form.  Only the length of
// each code is kept; the bit patterns are reassigned by CanonicalFromLengths.
//
// The result has the same length for every symbol as the input, is
// prefix-free, and depends only on those lengths, so any two tables with
// equal lengths canonicalize to identical codes.
func Canonicalize(codes CodeTable) (CodeTable, error) {
	if len(codes) == 0 {
		return nil, ErrEmptyTable
	}
	if err := codes.Validate(); err != nil {
		return nil, err
	}
	return CanonicalFromLengths(codes.Lengths())
}

// CanonicalFromLengths assigns canonical codes to a set of code lengths, per
// the algorithm in RFC 1951 Section 3.2.2.
//
// Symbols are sorted by (length, Symbol) ascending.  The first symbol gets the
// all-zeroes code of its length; every following symbol gets the previous
// code plus one, shifted left by however much longer its code is than the
// previous one.  Codes may be of any length.
func CanonicalFromLengths(lengths LengthTable) (CodeTable, error) {
	if err := lengths.Validate(); err != nil {
		return nil, err
	}

	order := byLength{symbols: lengths.Symbols(), lengths: lengths}
	sort.Stable(order)

	// Validate has already checked Kraft's inequality, so the counter
	// only wraps after the last symbol has its code.

	codes := make(CodeTable, len(order.symbols))
	next := newRunningCode(lengths[order.symbols[0]])
	for _, symbol := range order.symbols {
		next.widen(lengths[symbol])
		codes[symbol] = next.String()
		next.increment()
	}

	if log.IsEnabledFor(logging.DEBUG) {
		log.Debugf("canonical code: %d symbols, lengths %d .. %d", len(codes), lengths[order.symbols[0]], next.Size())
	}
	return codes, nil
}

// byLength orders symbols by code length.  The symbols start out in
// ascending order and the sort is stable, so equal lengths stay in Symbol
// order.
type byLength struct {
	symbols []Symbol
	lengths LengthTable
}

func (order byLength) Len() int {
	return len(order.symbols)
}

func (order byLength) Swap(i, j int) {
	order.symbols[i], order.symbols[j] = order.symbols[j], order.symbols[i]
}

func (order byLength) Less(i, j int) bool {
	return order.lengths[order.symbols[i]] < order.lengths[order.symbols[j]]
}

var _ sort.Interface = byLength{}

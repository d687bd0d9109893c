package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// LengthTable maps each symbol to the length, in bits, of its code.  This is
// all the information needed to rebuild a canonical code.
type LengthTable map[Symbol]int

// Symbols returns the symbols of the table in ascending order.
func (lengths LengthTable) Symbols() []Symbol {
	list := make(bySymbol, 0, len(lengths))
	for symbol := range lengths {
		list = append(list, symbol)
	}
	list.Sort()
	return list
}

// MinSize is the bit length of the shortest code, or 0 for an empty table.
func (lengths LengthTable) MinSize() int {
	minSize, _ := lengths.minMax()
	return minSize
}

// MaxSize is the bit length of the longest code, or 0 for an empty table.
func (lengths LengthTable) MaxSize() int {
	_, maxSize := lengths.minMax()
	return maxSize
}

func (lengths LengthTable) minMax() (minSize int, maxSize int) {
	first := true
	for _, size := range lengths {
		if first {
			first = false
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}
	return
}

// Validate checks that a prefix-free code with these lengths exists.
//
// Every length must be at least 1, and the lengths must satisfy Kraft's
// inequality.  There is no upper bound on length.  Incomplete codes, i.e.
// codes that leave some bit patterns unused, are permitted.
func (lengths LengthTable) Validate() error {
	if len(lengths) == 0 {
		return ErrEmptyTable
	}

	counts := make(map[int]uint64)
	for _, symbol := range lengths.Symbols() {
		size := lengths[symbol]
		if size <= 0 {
			return fmt.Errorf("%w: length %d for %s", ErrInvalidCode, size, symbol)
		}
		counts[size]++
	}

	sizes := make([]int, 0, len(counts))
	for size := range counts {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	// avail counts the unused bit patterns of the current size.  Once it
	// reaches the number of symbols still waiting for a code, every one of
	// them is guaranteed to fit, so it stops growing there.
	remaining := uint64(len(lengths))
	avail := uint64(1)
	lastSize := 0
	for _, size := range sizes {
		for step := size - lastSize; step > 0 && avail < remaining; step-- {
			avail <<= 1
		}
		if avail > remaining {
			avail = remaining
		}
		lastSize = size

		n := counts[size]
		if avail < n {
			return fmt.Errorf("%w: %d codes of length %d, only %d available", ErrOversubscribed, n, size, avail)
		}
		avail -= n
		remaining -= n
	}
	return nil
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (lengths LengthTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("LengthTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", lengths.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", lengths.MaxSize())
	for _, symbol := range lengths.Symbols() {
		fmt.Fprintf(&buf, "\t%s: %d\n", symbol, lengths[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

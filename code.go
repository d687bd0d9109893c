package huffman

import (
	"fmt"
)

// runningCode is the counter behind canonical code assignment: an unsigned
// binary number stored one '0' or '1' per byte, most significant bit first.
// Its width grows as needed, so codes of any length can be assigned.
type runningCode struct {
	bits []byte
}

// newRunningCode returns the all-zeroes code of the given width.
func newRunningCode(size int) *runningCode {
	rc := &runningCode{bits: make([]byte, 0, size)}
	rc.widen(size)
	return rc
}

// Size is the current width in bits.
func (rc *runningCode) Size() int {
	return len(rc.bits)
}

// widen shifts the value left until it is size bits wide.  It never narrows.
func (rc *runningCode) widen(size int) {
	for len(rc.bits) < size {
		rc.bits = append(rc.bits, '0')
	}
}

// increment adds one, keeping the width.  It reports false if the value
// wrapped around from all ones to all zeroes.
func (rc *runningCode) increment() bool {
	for i := len(rc.bits) - 1; i >= 0; i-- {
		if rc.bits[i] == '0' {
			rc.bits[i] = '1'
			return true
		}
		rc.bits[i] = '0'
	}
	return false
}

// String returns the value zero-padded to its width.
func (rc *runningCode) String() string {
	return string(rc.bits)
}

var _ fmt.Stringer = (*runningCode)(nil)

// checkBits returns ErrInvalidCode if str contains anything other than '0'
// and '1'.
func checkBits(str string) error {
	for i := 0; i < len(str); i++ {
		if ch := str[i]; ch != '0' && ch != '1' {
			return fmt.Errorf("%w: unexpected character %q at offset %d", ErrInvalidCode, ch, i)
		}
	}
	return nil
}

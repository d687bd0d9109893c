package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dgryski/go-bitstream"
	"github.com/icza/bitio"
)

// Pack packs a string of '0' and '1' characters into bytes, first bit in the
// most significant position.  The final byte is padded with zero bits.
func Pack(bits string) ([]byte, error) {
	if err := checkBits(bits); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow((len(bits) + 7) / 8)
	w := bitio.NewWriter(&buf)
	for i := 0; i < len(bits); i++ {
		if err := w.WriteBool(bits[i] == '1'); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unpack is the inverse of Pack: it reads the first nbits bits of packed and
// returns them as a string of '0' and '1' characters.
func Unpack(packed []byte, nbits int) (string, error) {
	if nbits < 0 || nbits > len(packed)*8 {
		return "", fmt.Errorf("%w: want %d bits, have %d", ErrShortBuffer, nbits, len(packed)*8)
	}

	out := make([]byte, nbits)
	r := bitstream.NewReader(bytes.NewReader(packed))
	for i := 0; i < nbits; i++ {
		bit, err := r.ReadBit()
		if err == io.EOF {
			return "", ErrShortBuffer
		}
		if err != nil {
			return "", err
		}
		if bit == bitstream.One {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out), nil
}

package huffman

import (
	"testing"
)

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic, got none")
		}
	}()
	fn()
}

func makeTestFrequencies() Frequencies {
	return Frequencies{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45}
}

var testTexts = []string{
	"a",
	"aaaa",
	"ab",
	"aabbbcc",
	"abracadabra",
	"the quick brown fox jumps over the lazy dog",
	"Mississippi river",
	"ñandú, über, 日本語",
	"aaaaaaaabbbbccd",
}

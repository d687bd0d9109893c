package huffman

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestCanonicalize(t *testing.T) {
	root, err := BuildTree(makeTestFrequencies())
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	canonical, err := Canonicalize(DeriveCodes(root))
	if err != nil {
		t.Fatalf("Canonicalize failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\t'a': \"1110\"\n",
		"\t'b': \"1111\"\n",
		"\t'c': \"100\"\n",
		"\t'd': \"101\"\n",
		"\t'e': \"110\"\n",
		"\t'f': \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = canonical.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestCanonicalize_IgnoresTreeShape(t *testing.T) {
	tables := []CodeTable{
		{'a': "1", 'b': "00", 'c': "01"},
		{'a': "0", 'b': "11", 'c': "10"},
		{'a': "0", 'b': "10", 'c': "11"},
	}
	expect := CodeTable{'a': "0", 'b': "10", 'c': "11"}
	for _, codes := range tables {
		actual, err := Canonicalize(codes)
		if err != nil {
			t.Fatalf("Canonicalize failed: %v", err)
		}
		if !reflect.DeepEqual(expect, actual) {
			t.Errorf("wrong codes for %v:\n\texpect: %v\n\tactual: %v", codes, expect, actual)
		}
	}
}

func TestCanonicalize_SingleSymbol(t *testing.T) {
	type testRow struct {
		input  CodeTable
		expect CodeTable
	}

	testData := [...]testRow{
		{input: CodeTable{'a': "0"}, expect: CodeTable{'a': "0"}},
		{input: CodeTable{'a': "1"}, expect: CodeTable{'a': "0"}},
		{input: CodeTable{'x': "101"}, expect: CodeTable{'x': "000"}},
	}
	for _, row := range testData {
		actual, err := Canonicalize(row.input)
		if err != nil {
			t.Fatalf("Canonicalize failed: %v", err)
		}
		if !reflect.DeepEqual(row.expect, actual) {
			t.Errorf("wrong codes:\n\texpect: %v\n\tactual: %v", row.expect, actual)
		}
	}
}

func TestCanonicalize_Errors(t *testing.T) {
	type testRow struct {
		name   string
		input  CodeTable
		expect error
	}

	testData := [...]testRow{
		{name: "nil", input: nil, expect: ErrEmptyTable},
		{name: "empty", input: CodeTable{}, expect: ErrEmptyTable},
		{name: "empty code", input: CodeTable{'a': ""}, expect: ErrInvalidCode},
		{name: "bad character", input: CodeTable{'a': "0", 'b': "12"}, expect: ErrInvalidCode},
		{name: "oversubscribed", input: CodeTable{'a': "0", 'b': "1", 'c': "00"}, expect: ErrOversubscribed},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual, err := Canonicalize(row.input)
			if !errors.Is(err, row.expect) {
				t.Errorf("expected %v, got %v", row.expect, err)
			}
			if actual != nil {
				t.Errorf("expected no table, got %v", actual)
			}
		})
	}
}

func TestCanonicalFromLengths_Long(t *testing.T) {
	const depth = 100
	codes, err := CanonicalFromLengths(makeChainLengths(depth))
	if err != nil {
		t.Fatalf("CanonicalFromLengths failed: %v", err)
	}
	if !codes.IsPrefixFree() {
		t.Errorf("codes are not prefix-free")
	}

	type testRow struct {
		symbol Symbol
		expect string
	}

	testData := [...]testRow{
		{symbol: 0x101, expect: "0"},
		{symbol: 0x102, expect: "10"},
		{symbol: 0x103, expect: "110"},
		{symbol: 0x100 + depth, expect: strings.Repeat("1", depth-1) + "0"},
		{symbol: 0x100 + depth + 1, expect: strings.Repeat("1", depth)},
	}
	for _, row := range testData {
		if actual := codes[row.symbol]; actual != row.expect {
			t.Errorf("wrong code for %s:\n\texpect: %s\n\tactual: %s", row.symbol, row.expect, actual)
		}
	}
}

func TestCanonicalize_FibonacciWeights(t *testing.T) {
	// Fibonacci weights make every merge combine the previous merge with
	// the next leaf, so the tree is a chain as deep as it can get.
	const numSymbols = 70
	freq := make(Frequencies, numSymbols)
	a, b := uint64(1), uint64(1)
	for i := 0; i < numSymbols; i++ {
		freq[Symbol(0x100+i)] = a
		a, b = b, a+b
	}

	root, err := BuildTree(freq)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if root.Depth() != numSymbols-1 {
		t.Errorf("wrong depth: expected %d, got %d", numSymbols-1, root.Depth())
	}

	standard := DeriveCodes(root)
	canonical, err := Canonicalize(standard)
	if err != nil {
		t.Fatalf("Canonicalize failed: %v", err)
	}
	if !canonical.IsPrefixFree() {
		t.Errorf("canonical codes are not prefix-free")
	}
	if !reflect.DeepEqual(standard.Lengths(), canonical.Lengths()) {
		t.Errorf("code lengths changed")
	}

	type testRow struct {
		symbol Symbol
		expect string
	}

	testData := [...]testRow{
		{symbol: 0x100 + numSymbols - 1, expect: "0"},
		{symbol: 0x100 + numSymbols - 2, expect: "10"},
		{symbol: 0x101, expect: strings.Repeat("1", numSymbols-1)},
		{symbol: 0x100, expect: strings.Repeat("1", numSymbols-2) + "0"},
	}
	for _, row := range testData {
		if actual := canonical[row.symbol]; actual != row.expect {
			t.Errorf("wrong code for %s:\n\texpect: %s\n\tactual: %s", row.symbol, row.expect, actual)
		}
	}
}

func TestCanonicalize_Properties(t *testing.T) {
	for _, text := range testTexts {
		root, err := BuildTree(CountFrequencies(text))
		if err != nil {
			t.Fatalf("%q: BuildTree failed: %v", text, err)
		}
		standard := DeriveCodes(root)

		canonical, err := Canonicalize(standard)
		if err != nil {
			t.Fatalf("%q: Canonicalize failed: %v", text, err)
		}
		again, err := CanonicalFromLengths(standard.Lengths())
		if err != nil {
			t.Fatalf("%q: CanonicalFromLengths failed: %v", text, err)
		}

		if !canonical.IsPrefixFree() {
			t.Errorf("%q: canonical codes are not prefix-free: %v", text, canonical)
		}
		if !reflect.DeepEqual(standard.Lengths(), canonical.Lengths()) {
			t.Errorf("%q: code lengths changed:\n\texpect: %v\n\tactual: %v", text, standard.Lengths(), canonical.Lengths())
		}
		if !reflect.DeepEqual(canonical, again) {
			t.Errorf("%q: canonical code is not deterministic:\n\tfirst:  %v\n\tsecond: %v", text, canonical, again)
		}

		// Within each length class, codes increase with Symbol order.
		classes := make(map[int][]string)
		for _, symbol := range canonical.Symbols() {
			code := canonical[symbol]
			classes[len(code)] = append(classes[len(code)], code)
		}
		for size, list := range classes {
			for i := 1; i < len(list); i++ {
				if list[i-1] >= list[i] {
					t.Errorf("%q: length %d codes not increasing: %v", text, size, list)
				}
			}
		}
	}
}

func TestCanonicalize_DoesNotMutateInput(t *testing.T) {
	input := CodeTable{'a': "1", 'b': "00", 'c': "01"}
	_, err := Canonicalize(input)
	if err != nil {
		t.Fatalf("Canonicalize failed: %v", err)
	}
	expect := CodeTable{'a': "1", 'b': "00", 'c': "01"}
	if !reflect.DeepEqual(expect, input) {
		t.Errorf("input was modified:\n\texpect: %v\n\tactual: %v", expect, input)
	}
}

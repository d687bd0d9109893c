package huffman

// Result holds everything Compress computes for one text.
type Result struct {
	// Frequencies counts each symbol of the text.
	Frequencies Frequencies

	// Standard is the code read directly off the Huffman tree.
	Standard CodeTable

	// Canonical is Standard rewritten into canonical form.
	Canonical CodeTable

	// Encoded is the text encoded with Canonical.
	Encoded string
}

// Compress runs the whole pipeline on text: it counts symbols, builds the
// Huffman tree, derives the standard code, canonicalizes it, and encodes text
// with the canonical code.
//
// An empty text has no symbols to code and returns ErrEmptyInput.
func Compress(text string) (*Result, error) {
	freq := CountFrequencies(text)
	root, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}

	standard := DeriveCodes(root)
	canonical, err := Canonicalize(standard)
	if err != nil {
		return nil, err
	}

	return &Result{
		Frequencies: freq,
		Standard:    standard,
		Canonical:   canonical,
		Encoded:     Encode(canonical, text),
	}, nil
}

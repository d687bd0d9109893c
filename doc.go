// Package huffman computes Huffman codes for a text and rewrites them into
// canonical form.  The canonical code depends only on each symbol's code
// length and on symbol order, never on the shape of the tree that produced
// those lengths, so two parties that agree on the lengths agree on the code.
//
// The pipeline is:
//
//	CountFrequencies → BuildTree → DeriveCodes → Canonicalize → Encode
//
// Compress runs all of it in one call.
//
// References:
//
//	<https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
//	<https://en.wikipedia.org/wiki/Canonical_Huffman_code>
package huffman

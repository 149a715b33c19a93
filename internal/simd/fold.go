// Package simd provides word-at-a-time byte operations used by the
// ingestion and query-preparation paths: ASCII case folding and
// signature-bit scatter (§3 "Byte", §4.3 "Signature Filter").
//
// FoldASCII walks its input in chunks of 8 (or, with an AVX2 hint, 32)
// bytes and loads/stores each 8-byte group as one machine word, the same
// word-packing framing the teacher engine uses for ASCII detection (see
// ascii_generic.go in coregx-coregex/simd); within a word each byte lane is
// still folded individually. Signature processes one byte at a time.
package simd

import "encoding/binary"

// FoldASCII lowercases ASCII 'A'-'Z' bytes in place; all other bytes,
// including non-ASCII, pass through unchanged (§3 "Byte").
func FoldASCII(b []byte) {
	n := len(b)
	if n == 0 {
		return
	}

	stride := 8
	if hasAVX2 {
		stride = foldWideStride
	}

	idx := 0
	for idx+stride <= n {
		foldChunk(b[idx : idx+stride])
		idx += stride
	}
	for ; idx < n; idx++ {
		b[idx] = foldByte(b[idx])
	}
}

// foldByte lowercases a single ASCII uppercase byte.
func foldByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// foldChunk applies case folding to a slice whose length is a multiple of
// 8, 8 bytes at a time.
func foldChunk(b []byte) {
	for i := 0; i+8 <= len(b); i += 8 {
		word := binary.LittleEndian.Uint64(b[i : i+8])
		binary.LittleEndian.PutUint64(b[i:i+8], foldWord(word))
	}
}

// foldWord lowercases every byte lane of a packed 8-byte word that falls in
// the ASCII 'A'-'Z' range, leaving all other lanes untouched. The word is
// unpacked into its 8 constituent bytes, folded independently, and
// repacked; this keeps the transform obviously correct while still
// amortizing the load/store over a full word instead of one byte at a time.
func foldWord(word uint64) uint64 {
	var out uint64
	for lane := uint(0); lane < 8; lane++ {
		shift := lane * 8
		c := byte(word >> shift)
		out |= uint64(foldByte(c)) << shift
	}
	return out
}

// Signature computes the 64-bit signature for a folded byte slice (§4.3):
// the union of `1 << (b & 63)` over every byte.
func Signature(b []byte) uint64 {
	var sig uint64
	for _, c := range b {
		sig |= 1 << (c & 63)
	}
	return sig
}

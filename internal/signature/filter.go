// Package signature implements the 64-bit signature admission filter
// (§4.3): a near-constant-time test that rejects records whose byte
// alphabet cannot possibly contain a query pattern, before the more
// expensive bit-parallel matcher ever runs.
//
// The signature itself (one bit per `byte & 63`) follows the same
// byte→bucket table idea as the teacher's `ByteClasses`
// (coregx-coregex/nfa/alphabet.go), narrowed from "256 equivalence
// classes" to "64 membership bits".
package signature

import "math/bits"

// Admits reports whether a record with signature recordSig can possibly
// contain a pattern with signature patternSig (§4.3 admission rule).
//
// It is a necessary, not sufficient, condition: it can admit false
// positives but never rejects a true zero-error match.
func Admits(recordSig, patternSig uint64) bool {
	return recordSig&patternSig == patternSig
}

// Relax clears up to k bits of patternSig, starting from the
// lowest-numbered set bit, so that Admits remains a necessary (not
// sufficient) condition for matches within k substitutions under the
// single-bin-per-byte approximation (§4.4 step 3, §9 "Signature relaxation
// under edits").
//
// Relax does not mutate its argument; it returns the relaxed signature.
func Relax(patternSig uint64, k int) uint64 {
	relaxed := patternSig
	for cleared := 0; cleared < k; cleared++ {
		lowest := bits.TrailingZeros64(relaxed)
		if lowest == 64 {
			break // no more set bits to clear
		}
		relaxed &^= 1 << uint(lowest)
	}
	return relaxed
}

// Package matcher implements the bit-parallel approximate matcher (§4.4):
// a Wu–Manber extension of shift-or that tracks k+1 state words per
// record scan, one per tolerated edit count.
//
// The doc-comment style (a dense "algorithm overview" block up front)
// follows coregx-coregex/prefilter/teddy.go, the teacher's own
// bit-parallel matcher. The state-word updates here use plain shifts and
// masks; this package does not import math/bits.
package matcher

import (
	"github.com/RafaCalRob/FlashFuzzy/internal/signature"
	"github.com/RafaCalRob/FlashFuzzy/internal/simd"
)

// MaxPatternLen is the largest pattern length a Pattern can hold; one bit
// of a uint64 state word per position (§3 "MAX_PATTERN_LEN").
const MaxPatternLen = 64

// MaxErrors is the largest error budget the matcher supports (§3
// "max_errors ≤ 3").
const MaxErrors = 3

// Pattern holds everything prepared once per query (§3 "Pattern", §4.4
// "Pattern preparation").
type Pattern struct {
	folded    []byte
	m         int // pattern length, after truncation
	signature uint64
	k         int // effective max_errors after the staircase and caller cap
	masks     [256]uint64
	matchMask uint64
}

// Prepare folds, truncates, and builds masks for pattern bytes under a
// caller-requested error budget maxErrors (§4.4 steps 1-4).
//
// A pattern longer than MaxPatternLen is silently truncated (§4 "Pattern
// truncation policy (resolved)" in SPEC_FULL.md); an empty pattern yields a
// Pattern with m==0, for which Scan always reports no matches (§8 "Empty
// query returns zero results").
func Prepare(patternBytes []byte, maxErrors int) *Pattern {
	folded := make([]byte, len(patternBytes))
	copy(folded, patternBytes)
	simd.FoldASCII(folded)

	if len(folded) > MaxPatternLen {
		folded = folded[:MaxPatternLen]
	}
	m := len(folded)

	if maxErrors < 0 {
		maxErrors = 0
	}
	if maxErrors > MaxErrors {
		maxErrors = MaxErrors
	}
	k := effectiveMaxErrors(m, maxErrors)

	sig := simd.Signature(folded)
	relaxedSig := signature.Relax(sig, k)

	p := &Pattern{
		folded:    folded,
		m:         m,
		signature: relaxedSig,
		k:         k,
	}

	for j, b := range folded {
		p.masks[b] |= 1 << uint(j)
	}
	if m > 0 {
		p.matchMask = 1 << uint(m-1)
	}

	return p
}

// effectiveMaxErrors applies the staircase from §4.4 step 2: the error
// budget is capped by pattern length so the matcher never admits matches
// whose edit distance exceeds the pattern's information content.
func effectiveMaxErrors(m, requested int) int {
	var cap int
	switch {
	case m < 4:
		cap = 0
	case m < 8:
		cap = 1
	case m < 12:
		cap = 2
	default:
		cap = MaxErrors
	}
	if requested < cap {
		return requested
	}
	return cap
}

// Len returns the (possibly truncated) pattern length.
func (p *Pattern) Len() int {
	return p.m
}

// MaxErrors returns the effective error budget after the staircase.
func (p *Pattern) MaxErrors() int {
	return p.k
}

// Signature returns the (possibly relaxed) pattern signature used for
// record admission (§4.3).
func (p *Pattern) Signature() uint64 {
	return p.signature
}

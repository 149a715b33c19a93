// Package conv provides safe integer conversion helpers for the search
// engine's fixed-width wire types (offsets, lengths, scores are all u32 at
// the host boundary, see §6 of SPEC_FULL.md).
//
// These functions perform bounds checking before narrowing integer
// conversions to prevent silent overflow. They panic on overflow since this
// indicates a programming error (e.g. an arena offset that no longer fits
// the wire type), not a recoverable runtime condition.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// IntToUint16 safely converts an int to uint16.
// Panics if n < 0 or n > math.MaxUint16.
//
//go:inline
func IntToUint16(n int) uint16 {
	if n < 0 || n > math.MaxUint16 {
		panic("integer overflow: int value out of uint16 range")
	}
	return uint16(n)
}

// Uint64ToUint32 safely converts a uint64 to uint32.
// Panics if n > math.MaxUint32.
//
//go:inline
func Uint64ToUint32(n uint64) uint32 {
	if n > math.MaxUint32 {
		panic("integer overflow: uint64 value out of uint32 range")
	}
	return uint32(n)
}

// Uint32ToInt safely converts a uint32 to int.
//
// On 32-bit platforms int cannot represent the full uint32 range, so this
// panics if n > math.MaxInt32 there; on 64-bit platforms it never panics.
//
//go:inline
func Uint32ToInt(n uint32) int {
	if uint64(n) > uint64(math.MaxInt) {
		panic("integer overflow: uint32 value out of int range")
	}
	return int(n)
}

// IntToUint64 safely converts an int to uint64.
// Panics if n < 0.
//
//go:inline
func IntToUint64(n int) uint64 {
	if n < 0 {
		panic("integer overflow: negative int has no uint64 representation")
	}
	return uint64(n)
}

// ScoreToWire converts a score in [0,1] to the wire integer encoding in
// [0,1000] used by the result buffer (§3 "Result").
func ScoreToWire(score float64) uint32 {
	if score <= 0 {
		return 0
	}
	if score >= 1 {
		return 1000
	}
	return uint32(score*1000 + 0.5)
}

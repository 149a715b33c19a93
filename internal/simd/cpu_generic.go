//go:build !amd64

package simd

// hasAVX2 is always false on non-amd64 platforms; FoldASCII falls back to
// the 8-byte stride unconditionally.
var hasAVX2 = false

// foldWideStride is unused on this platform but kept so fold.go does not
// need a build-tagged variant of its own.
const foldWideStride = 32

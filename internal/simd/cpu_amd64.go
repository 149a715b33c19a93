//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// hasAVX2 reports whether the current CPU supports AVX2, used only to pick
// a wider processing stride for FoldASCII; no AVX2 instructions are
// actually issued (see fold.go), so this is a pure-Go portability-safe hint.
var hasAVX2 = cpu.X86.HasAVX2

// foldWideStride is the chunk size used for FoldASCII when hasAVX2 is true.
const foldWideStride = 32

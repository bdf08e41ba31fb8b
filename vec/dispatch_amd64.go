//go:build amd64

package vec

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentWidth = 16
		currentName = "scalar"
		return
	}

	// Widest first. SSE2 is part of the x86-64 baseline, so it is always
	// available as the floor.
	switch {
	case cpu.X86.HasAVX512:
		currentLevel = DispatchAVX512
		currentWidth = 64 // 512-bit
		currentName = "avx512"
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 32 // 256-bit
		currentName = "avx2"
	default:
		currentLevel = DispatchSSE2
		currentWidth = 16 // 128-bit
		currentName = "sse2"
	}
}

//go:build arm64

package vec

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentWidth = 16
		currentName = "scalar"
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available; it is part of the
	// ARMv8-A base architecture. The cpu package check is kept for
	// consistency.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
		currentName = "neon"
	} else {
		currentLevel = DispatchScalar
		currentWidth = 16
		currentName = "scalar"
	}
}

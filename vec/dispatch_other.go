//go:build !amd64 && !arm64

package vec

func init() {
	// Other architectures fall back to 128-bit scalar chunking.
	currentLevel = DispatchScalar
	currentWidth = 16
	currentName = "scalar"
}

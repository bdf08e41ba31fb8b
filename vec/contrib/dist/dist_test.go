package dist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSquaredEuclidean(t *testing.T) {
	a := []float32{0, 0}
	b := []float32{3, 4}

	require.Equal(t, float32(25), SquaredEuclidean(a, b))
	require.Equal(t, float32(5), Euclidean(a, b))
}

func TestEuclidean64(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 3}

	require.Zero(t, Euclidean64(a, b))
	require.Equal(t, float64(13), Euclidean64([]float64{0, 0}, []float64{5, 12}))
}

func TestEuclideanLongVectors(t *testing.T) {
	const n = 100
	a := make([]float64, n)
	b := make([]float64, n)
	for i := range a {
		a[i] = float64(i)
		b[i] = float64(i) + 2
	}

	// Each component differs by 2, so the squared distance is 4n.
	require.Equal(t, float64(4*n), SquaredEuclidean64(a, b))
}

func TestEuclideanMismatchedLengths(t *testing.T) {
	a := []float32{3, 4, 100}
	b := []float32{0, 0}

	require.Equal(t, float32(5), Euclidean(a, b), "clamps to shorter operand")
}

func TestEuclideanEmpty(t *testing.T) {
	require.Zero(t, Euclidean(nil, nil))
}

func TestPathLength(t *testing.T) {
	// Nine points spaced (6, 8) apart: eight segments of length 10.
	pts := make([]float64, 0, 18)
	for i := 0; i < 9; i++ {
		pts = append(pts, float64(6*i), float64(8*i))
	}

	require.Equal(t, float64(80), PathLength(pts, 2))
}

func TestPathLength3D(t *testing.T) {
	pts := []float64{
		0, 0, 0,
		1, 2, 2, // |(1,2,2)| = 3
		1, 2, 7, // +5 along z
	}

	require.Equal(t, float64(8), PathLength(pts, 3))
}

func TestPathLengthDegenerate(t *testing.T) {
	require.Zero(t, PathLength(nil, 2))
	require.Zero(t, PathLength([]float64{1, 2}, 2), "single point")
	require.Zero(t, PathLength([]float64{1, 2, 3}, 0), "invalid dim")
}

func TestPathLengthIgnoresPartialPoint(t *testing.T) {
	pts := []float64{0, 0, 3, 4, 99} // trailing 99 is not a complete point
	require.Equal(t, float64(5), PathLength(pts, 2))
}

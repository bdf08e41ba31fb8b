package solve

import (
	"fmt"
	"math"
)

// Gesv solves the linear system a*x = b for x, where a is a row-major n×n
// matrix and b has length n. Both a and b are overwritten: a with the
// eliminated triangular factors, b with the solution when info == 0.
//
// The returned info follows the LAPACK convention: 0 means the system was
// solved, k > 0 means elimination found no usable pivot at step k (1-based),
// so the matrix is singular and b is meaningless. A negative info is never
// returned; dimension errors are the caller's responsibility (see Solve for
// a checked wrapper).
//
// Pivots are chosen by maximum absolute column value; a NaN or Inf pivot is
// treated as singular.
func Gesv(n int, a []float64, b []float64) (info int) {
	for k := 0; k < n; k++ {
		// Partial pivoting: largest |a[i][k]| for i >= k.
		piv := k
		maxAbs := math.Abs(a[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > maxAbs {
				maxAbs = v
				piv = i
			}
		}
		if maxAbs == 0 || math.IsNaN(maxAbs) || math.IsInf(maxAbs, 0) {
			return k + 1
		}
		if piv != k {
			for j := k; j < n; j++ {
				a[k*n+j], a[piv*n+j] = a[piv*n+j], a[k*n+j]
			}
			b[k], b[piv] = b[piv], b[k]
		}

		pivot := a[k*n+k]
		for i := k + 1; i < n; i++ {
			f := a[i*n+k] / pivot
			if f == 0 {
				continue
			}
			a[i*n+k] = 0
			for j := k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
			b[i] -= f * b[k]
		}
	}

	// Back substitution into b.
	for i := n - 1; i >= 0; i-- {
		sum := b[i]
		for j := i + 1; j < n; j++ {
			sum -= a[i*n+j] * b[j]
		}
		b[i] = sum / a[i*n+i]
	}
	return 0
}

// Solve solves a*x = b and returns x, leaving a and b untouched. The matrix
// a must be square (len(a) == n*n for n == len(b)).
//
// Returns ErrDimensionMismatch for malformed inputs and ErrSingular when no
// unique solution exists.
func Solve(a []float64, b []float64) ([]float64, error) {
	n := len(b)
	if len(a) != n*n {
		return nil, fmt.Errorf("%w: matrix %d elements, want %d for n=%d", ErrDimensionMismatch, len(a), n*n, n)
	}

	aa := make([]float64, len(a))
	copy(aa, a)
	x := make([]float64, n)
	copy(x, b)

	if info := Gesv(n, aa, x); info != 0 {
		return nil, fmt.Errorf("%w: zero pivot at elimination step %d", ErrSingular, info)
	}
	return x, nil
}

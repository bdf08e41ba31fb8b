package solve

import "errors"

var (
	// ErrDimensionMismatch indicates len(a) != n*n or len(b) != n.
	ErrDimensionMismatch = errors.New("solve: dimension mismatch")
	// ErrSingular indicates the matrix is numerically singular and no
	// unique solution exists.
	ErrSingular = errors.New("solve: matrix is singular")
)

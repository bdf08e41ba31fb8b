// Package blas provides level-1 BLAS-style vector kernels built on the vec
// core: scaled vector accumulation (axpy), scaling, dot products, and the
// Euclidean norm.
//
// All kernels process full-width chunks with a masked tail and clamp to the
// shortest operand, so mismatched or empty slices never panic.
//
// Example:
//
//	x := []float32{1, 2, 3}
//	y := []float32{3, 4, 5}
//	blas.Axpy(10, x, y)    // y = [13, 24, 35]
//	s := blas.Dot(x, y)    // 13 + 48 + 105
package blas

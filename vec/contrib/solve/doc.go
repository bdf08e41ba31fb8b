// Package solve provides a dense linear-system solver in the LAPACK gesv
// style: Gaussian elimination with partial pivoting over a row-major square
// matrix.
//
// Two surfaces are offered. Gesv works in place and reports a raw info
// status scalar (0 means a unique solution was found, k > 0 means
// elimination hit a zero pivot at step k). Solve copies its inputs and maps
// failures to sentinel errors, which is what most callers want.
package solve

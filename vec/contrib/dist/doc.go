// Package dist provides Euclidean distance kernels and polyline length
// computation over flat point buffers.
package dist

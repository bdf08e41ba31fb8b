// Copyright 2026 go-vec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package blas

import (
	"math"

	"github.com/numkit/go-vec/vec"
)

// Dot computes the dot product of two float32 slices: Σ a[i]*b[i].
//
// If the slices have different lengths, the computation uses the minimum
// length. Returns 0 if either slice is empty.
//
// Example:
//
//	a := []float32{1, 2, 3}
//	b := []float32{3, 4, 5}
//	result := blas.Dot(a, b)  // 1*3 + 2*4 + 3*5 = 26
func Dot(a, b []float32) float32 {
	return dot(a, b)
}

// Dot64 computes the dot product of two float64 slices: Σ a[i]*b[i].
//
// If the slices have different lengths, the computation uses the minimum
// length. Returns 0 if either slice is empty.
func Dot64(a, b []float64) float64 {
	return dot(a, b)
}

func dot[T vec.Floats](a, b []T) T {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}

	// Multiply-accumulate full chunks into a vector accumulator, then
	// reduce. Masked loads zero inactive tail lanes, so the tail
	// contributes nothing spurious.
	acc := vec.Zero[T]()
	vec.ProcessWithTail[T](n,
		func(offset int) {
			va := vec.Load(a[offset:])
			vb := vec.Load(b[offset:])
			acc = vec.MulAdd(va, vb, acc)
		},
		func(offset, count int) {
			mask := vec.TailMask[T](count)
			va := vec.MaskLoad(mask, a[offset:])
			vb := vec.MaskLoad(mask, b[offset:])
			acc = vec.MulAdd(va, vb, acc)
		},
	)
	return vec.ReduceSum(acc)
}

// DotBatch computes one dot product per row pair: result[i] is the dot
// product of queries[i] and keys[i]. The result length is
// min(len(queries), len(keys)).
func DotBatch(queries, keys [][]float32) []float32 {
	n := min(len(queries), len(keys))
	results := make([]float32, n)
	for i := 0; i < n; i++ {
		results[i] = Dot(queries[i], keys[i])
	}
	return results
}

// Nrm2 computes the Euclidean norm of a float32 slice.
func Nrm2(x []float32) float32 {
	return float32(math.Sqrt(float64(Dot(x, x))))
}

// Nrm2_64 computes the Euclidean norm of a float64 slice.
func Nrm2_64(x []float64) float64 {
	return math.Sqrt(Dot64(x, x))
}

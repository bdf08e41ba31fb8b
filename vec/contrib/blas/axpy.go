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

import "github.com/numkit/go-vec/vec"

// Axpy computes y = alpha*x + y in place over float32 slices.
// Only the first min(len(x), len(y)) elements are updated.
//
// Example:
//
//	x := []float32{1, 2, 3}
//	y := []float32{3, 4, 5}
//	blas.Axpy(10, x, y)  // y is now [13, 24, 35]
func Axpy(alpha float32, x, y []float32) {
	axpy(alpha, x, y)
}

// Axpy64 computes y = alpha*x + y in place over float64 slices.
// Only the first min(len(x), len(y)) elements are updated.
func Axpy64(alpha float64, x, y []float64) {
	axpy(alpha, x, y)
}

func axpy[T vec.Floats](alpha T, x, y []T) {
	n := min(len(x), len(y))
	if n == 0 {
		return
	}

	vAlpha := vec.Set(alpha)
	vec.ProcessWithTail[T](n,
		func(offset int) {
			vx := vec.Load(x[offset:])
			vy := vec.Load(y[offset:])
			vec.Store(vec.MulAdd(vAlpha, vx, vy), y[offset:])
		},
		func(offset, count int) {
			mask := vec.TailMask[T](count)
			vx := vec.MaskLoad(mask, x[offset:])
			vy := vec.MaskLoad(mask, y[offset:])
			vec.MaskStore(mask, vec.MulAdd(vAlpha, vx, vy), y[offset:])
		},
	)
}

// Scal computes x = alpha*x in place over float32 slices.
func Scal(alpha float32, x []float32) {
	scal(alpha, x)
}

// Scal64 computes x = alpha*x in place over float64 slices.
func Scal64(alpha float64, x []float64) {
	scal(alpha, x)
}

func scal[T vec.Floats](alpha T, x []T) {
	if len(x) == 0 {
		return
	}

	vAlpha := vec.Set(alpha)
	vec.ProcessWithTail[T](len(x),
		func(offset int) {
			vx := vec.Load(x[offset:])
			vec.Store(vec.Mul(vAlpha, vx), x[offset:])
		},
		func(offset, count int) {
			mask := vec.TailMask[T](count)
			vx := vec.MaskLoad(mask, x[offset:])
			vec.MaskStore(mask, vec.Mul(vAlpha, vx), x[offset:])
		},
	)
}

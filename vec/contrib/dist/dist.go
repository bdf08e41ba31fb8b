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

package dist

import (
	"math"

	"github.com/numkit/go-vec/vec"
)

// SquaredEuclidean computes Σ (a[i]-b[i])² over float32 slices.
// Mismatched lengths clamp to the shorter operand.
func SquaredEuclidean(a, b []float32) float32 {
	return squaredEuclidean(a, b)
}

// SquaredEuclidean64 computes Σ (a[i]-b[i])² over float64 slices.
func SquaredEuclidean64(a, b []float64) float64 {
	return squaredEuclidean(a, b)
}

func squaredEuclidean[T vec.Floats](a, b []T) T {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}

	acc := vec.Zero[T]()
	vec.ProcessWithTail[T](n,
		func(offset int) {
			d := vec.Sub(vec.Load(a[offset:]), vec.Load(b[offset:]))
			acc = vec.MulAdd(d, d, acc)
		},
		func(offset, count int) {
			mask := vec.TailMask[T](count)
			d := vec.Sub(vec.MaskLoad(mask, a[offset:]), vec.MaskLoad(mask, b[offset:]))
			acc = vec.MulAdd(d, d, acc)
		},
	)
	return vec.ReduceSum(acc)
}

// Euclidean computes the Euclidean distance between two float32 points.
func Euclidean(a, b []float32) float32 {
	return float32(math.Sqrt(float64(SquaredEuclidean(a, b))))
}

// Euclidean64 computes the Euclidean distance between two float64 points.
func Euclidean64(a, b []float64) float64 {
	return math.Sqrt(SquaredEuclidean64(a, b))
}

// PathLength computes the cumulative pairwise distance along a polyline.
// Points are stored row-major in pts: point i occupies
// pts[i*dim : (i+1)*dim]. Trailing elements that do not form a complete
// point are ignored; fewer than two points give length 0.
//
// Example: nine points spaced (6, 8) apart accumulate 8 segments of
// length 10, so PathLength returns 80.
func PathLength(pts []float64, dim int) float64 {
	if dim <= 0 {
		return 0
	}
	n := len(pts) / dim
	if n < 2 {
		return 0
	}

	var total float64
	for i := 1; i < n; i++ {
		prev := pts[(i-1)*dim : i*dim]
		cur := pts[i*dim : (i+1)*dim]
		total += Euclidean64(prev, cur)
	}
	return total
}

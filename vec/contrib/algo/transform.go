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

package algo

import "github.com/numkit/go-vec/vec"

// VecFunc applies an operation to a whole vector chunk.
type VecFunc[T vec.Floats] func(vec.Vec[T]) vec.Vec[T]

// Transform32 applies op to each full chunk of input and writes the results
// to output, clamped to min(len(input), len(output)). The tail is processed
// through the same op behind a mask, so inactive lanes in output are left
// untouched.
//
// Example:
//
//	algo.Transform32(input, output, vec.Sqrt)
func Transform32(input, output []float32, op VecFunc[float32]) {
	transform(input, output, op)
}

// Transform64 is Transform32 for float64 slices.
func Transform64(input, output []float64, op VecFunc[float64]) {
	transform(input, output, op)
}

func transform[T vec.Floats](input, output []T, op VecFunc[T]) {
	n := min(len(input), len(output))
	if n == 0 {
		return
	}

	vec.ProcessWithTail[T](n,
		func(offset int) {
			v := vec.Load(input[offset:])
			vec.Store(op(v), output[offset:])
		},
		func(offset, count int) {
			mask := vec.TailMask[T](count)
			v := vec.MaskLoad(mask, input[offset:])
			vec.MaskStore(mask, op(v), output[offset:])
		},
	)
}

// AbsTransform writes |x| for each element of input into output.
func AbsTransform(input, output []float32) {
	Transform32(input, output, vec.Abs[float32])
}

// AbsTransform64 writes |x| for each float64 element of input into output.
func AbsTransform64(input, output []float64) {
	Transform64(input, output, vec.Abs[float64])
}

// SqrtTransform writes √x for each element of input into output.
func SqrtTransform(input, output []float32) {
	Transform32(input, output, vec.Sqrt[float32])
}

// SqrtTransform64 writes √x for each float64 element of input into output.
func SqrtTransform64(input, output []float64) {
	Transform64(input, output, vec.Sqrt[float64])
}

// RecipTransform writes 1/x for each element of input into output.
// Zero inputs yield +Inf.
func RecipTransform(input, output []float32) {
	Transform32(input, output, vec.Reciprocal[float32])
}

// RecipTransform64 writes 1/x for each float64 element of input into output.
func RecipTransform64(input, output []float64) {
	Transform64(input, output, vec.Reciprocal[float64])
}

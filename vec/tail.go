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

package vec

// TailMask creates a mask with the first 'count' lanes active.
// This is used to handle the tail (remainder) of an array when its length
// is not a multiple of the vector width.
//
// Example:
//
//	maxLanes := vec.MaxLanes[float32]()
//	remaining := len(data) % maxLanes
//	if remaining > 0 {
//	    mask := vec.TailMask[float32](remaining)
//	    v := vec.MaskLoad(mask, data[len(data)-remaining:])
//	    // ... process tail
//	    vec.MaskStore(mask, result, output[len(output)-remaining:])
//	}
func TailMask[T Lanes](count int) Mask[T] {
	maxLanes := MaxLanes[T]()
	if count < 0 {
		count = 0
	}
	if count > maxLanes {
		count = maxLanes
	}

	bits := make([]bool, maxLanes)
	for i := 0; i < count; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// MaskLoad loads from src only where mask is active; inactive lanes are zero.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	n := min(len(mask.bits), MaxLanes[T]())
	data := make([]T, n)
	for i := 0; i < n; i++ {
		if mask.bits[i] && i < len(src) {
			data[i] = src[i]
		}
	}
	return Vec[T]{data: data}
}

// MaskStore stores v to dst only where mask is active. Lanes of dst outside
// the mask are left unchanged.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	n := min(len(dst), min(len(mask.bits), len(v.data)))
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
	}
}

// ProcessWithTail is a helper for processing arrays chunk-by-chunk that
// handles both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of
//     the vector width
//
// Example:
//
//	vec.ProcessWithTail[float32](len(data),
//	    func(offset int) {
//	        v := vec.Load(data[offset:])
//	        result := vec.Add(v, v)
//	        vec.Store(result, output[offset:])
//	    },
//	    func(offset, count int) {
//	        mask := vec.TailMask[float32](count)
//	        v := vec.MaskLoad(mask, data[offset:])
//	        result := vec.Add(v, v)
//	        vec.MaskStore(mask, result, output[offset:])
//	    },
//	)
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	maxLanes := MaxLanes[T]()

	fullVectors := size / maxLanes
	for i := 0; i < fullVectors; i++ {
		fullFn(i * maxLanes)
	}

	remaining := size % maxLanes
	if remaining > 0 {
		tailFn(fullVectors*maxLanes, remaining)
	}
}

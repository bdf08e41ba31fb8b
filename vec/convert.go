package vec

import "math"

// This file provides type conversion operations between float and integer
// lane types, plus the IEEE rounding helpers that usually precede them.

// ConvertToInt32 converts float32 or float64 lanes to int32, truncating
// toward zero. For values outside the int32 range, the result is undefined.
func ConvertToInt32[T ~float32 | ~float64](v Vec[T]) Vec[int32] {
	result := make([]int32, len(v.data))
	for i := range v.data {
		result[i] = int32(v.data[i])
	}
	return Vec[int32]{data: result}
}

// ConvertToInt64 converts float64 lanes to int64, truncating toward zero.
// For values outside the int64 range, the result is undefined.
func ConvertToInt64[T ~float64](v Vec[T]) Vec[int64] {
	result := make([]int64, len(v.data))
	for i := range v.data {
		result[i] = int64(v.data[i])
	}
	return Vec[int64]{data: result}
}

// ConvertToFloat32 converts int32 or int64 lanes to float32.
// Large int64 values may lose precision.
func ConvertToFloat32[T ~int32 | ~int64](v Vec[T]) Vec[float32] {
	result := make([]float32, len(v.data))
	for i := range v.data {
		result[i] = float32(v.data[i])
	}
	return Vec[float32]{data: result}
}

// ConvertToFloat64 converts int32 or int64 lanes to float64.
// Large int64 values may lose precision.
func ConvertToFloat64[T ~int32 | ~int64](v Vec[T]) Vec[float64] {
	result := make([]float64, len(v.data))
	for i := range v.data {
		result[i] = float64(v.data[i])
	}
	return Vec[float64]{data: result}
}

// Round rounds each lane to the nearest integer, ties away from zero.
func Round[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := range v.data {
		result[i] = T(math.Round(float64(v.data[i])))
	}
	return Vec[T]{data: result}
}

// Trunc truncates each lane toward zero.
func Trunc[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := range v.data {
		result[i] = T(math.Trunc(float64(v.data[i])))
	}
	return Vec[T]{data: result}
}

// Ceil rounds each lane up (toward positive infinity).
func Ceil[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := range v.data {
		result[i] = T(math.Ceil(float64(v.data[i])))
	}
	return Vec[T]{data: result}
}

// Floor rounds each lane down (toward negative infinity).
func Floor[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := range v.data {
		result[i] = T(math.Floor(float64(v.data[i])))
	}
	return Vec[T]{data: result}
}

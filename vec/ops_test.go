package vec

import (
	"math"
	"testing"
)

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load(data)

	if v.NumLanes() == 0 {
		t.Error("Load created empty vector")
	}

	for i := 0; i < v.NumLanes() && i < len(data); i++ {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}

	raw := v.Data()
	if len(raw) != v.NumLanes() {
		t.Errorf("Data: got %d elements, want %d", len(raw), v.NumLanes())
	}
	for i := range raw {
		if raw[i] != v.data[i] {
			t.Errorf("Data: element %d: got %v, want %v", i, raw[i], v.data[i])
		}
	}
}

func TestLoadShortSlice(t *testing.T) {
	data := []float32{1, 2, 3}
	v := Load(data)

	want := min(len(data), MaxLanes[float32]())
	if v.NumLanes() != want {
		t.Errorf("Load: got %d lanes, want %d", v.NumLanes(), want)
	}
}

func TestSet(t *testing.T) {
	v := Set[float32](42.0)

	if v.NumLanes() != MaxLanes[float32]() {
		t.Errorf("Set: got %d lanes, want %d", v.NumLanes(), MaxLanes[float32]())
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42.0 {
			t.Errorf("Set: lane %d: got %v, want 42.0", i, v.data[i])
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32]()

	if v.NumLanes() == 0 {
		t.Error("Zero created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestAdd(t *testing.T) {
	a := Set[float32](10.0)
	b := Set[float32](5.0)
	result := Add(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 15.0 {
			t.Errorf("Add: lane %d: got %v, want 15.0", i, result.data[i])
		}
	}
}

func TestSub(t *testing.T) {
	a := Set[float32](10.0)
	b := Set[float32](3.0)
	result := Sub(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 7.0 {
			t.Errorf("Sub: lane %d: got %v, want 7.0", i, result.data[i])
		}
	}
}

func TestMul(t *testing.T) {
	a := Set[float32](4.0)
	b := Set[float32](5.0)
	result := Mul(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 20.0 {
			t.Errorf("Mul: lane %d: got %v, want 20.0", i, result.data[i])
		}
	}
}

func TestDiv(t *testing.T) {
	a := Set[float32](20.0)
	b := Set[float32](4.0)
	result := Div(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 5.0 {
			t.Errorf("Div: lane %d: got %v, want 5.0", i, result.data[i])
		}
	}
}

func TestAbs(t *testing.T) {
	data := []float64{-3, -2, -5, -10}
	v := Load(data)
	result := Abs(v)

	want := []float64{3, 2, 5, 10}
	for i := range want {
		if i >= result.NumLanes() {
			break
		}
		if result.data[i] != want[i] {
			t.Errorf("Abs: lane %d: got %v, want %v", i, result.data[i], want[i])
		}
	}
}

func TestNeg(t *testing.T) {
	data := []float64{-3, 2, 0, -10}
	v := Load(data)
	result := Neg(v)

	want := []float64{3, -2, 0, 10}
	for i := range want {
		if i >= result.NumLanes() {
			break
		}
		if result.data[i] != want[i] {
			t.Errorf("Neg: lane %d: got %v, want %v", i, result.data[i], want[i])
		}
	}
}

func TestAbsSignedInt(t *testing.T) {
	data := []int32{-7, 7, 0, -1}
	v := Load(data)
	result := Abs(v)

	want := []int32{7, 7, 0, 1}
	for i := range want {
		if i >= result.NumLanes() {
			break
		}
		if result.data[i] != want[i] {
			t.Errorf("Abs: lane %d: got %v, want %v", i, result.data[i], want[i])
		}
	}
}

func TestSqrt(t *testing.T) {
	data := []float64{16, 9, 4, 1}
	v := Load(data)
	result := Sqrt(v)

	want := []float64{4, 3, 2, 1}
	for i := range want {
		if i >= result.NumLanes() {
			break
		}
		if result.data[i] != want[i] {
			t.Errorf("Sqrt: lane %d: got %v, want %v", i, result.data[i], want[i])
		}
	}
}

func TestReciprocal(t *testing.T) {
	data := []float64{1, 2, 4, 8}
	v := Load(data)
	result := Reciprocal(v)

	want := []float64{1, 0.5, 0.25, 0.125}
	for i := range want {
		if i >= result.NumLanes() {
			break
		}
		if result.data[i] != want[i] {
			t.Errorf("Reciprocal: lane %d: got %v, want %v", i, result.data[i], want[i])
		}
	}
}

func TestReciprocalZero(t *testing.T) {
	v := Load([]float64{0})
	result := Reciprocal(v)

	if !math.IsInf(result.data[0], 1) {
		t.Errorf("Reciprocal(0): got %v, want +Inf", result.data[0])
	}
}

func TestFMA(t *testing.T) {
	a := Set[float32](2.0)
	b := Set[float32](10.0)
	c := Set[float32](3.0)
	result := FMA(a, b, c)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 23.0 {
			t.Errorf("FMA: lane %d: got %v, want 23.0", i, result.data[i])
		}
	}
}

func TestMinMax(t *testing.T) {
	a := Load([]float32{15, 5, 25, 10})
	b := Load([]float32{10, 20, 15, 30})

	vMin := Min(a, b)
	vMax := Max(a, b)

	wantMin := []float32{10, 5, 15, 10}
	wantMax := []float32{15, 20, 25, 30}
	for i := range wantMin {
		if i >= vMin.NumLanes() {
			break
		}
		if vMin.data[i] != wantMin[i] {
			t.Errorf("Min: lane %d: got %v, want %v", i, vMin.data[i], wantMin[i])
		}
		if vMax.data[i] != wantMax[i] {
			t.Errorf("Max: lane %d: got %v, want %v", i, vMax.data[i], wantMax[i])
		}
	}
}

func TestReduceSum(t *testing.T) {
	v := Load([]float64{1, 2, 3, 4})
	sum := ReduceSum(v)

	// Only the first min(4, MaxLanes) elements are loaded.
	var want float64
	for i := 0; i < v.NumLanes(); i++ {
		want += v.data[i]
	}
	if sum != want {
		t.Errorf("ReduceSum: got %v, want %v", sum, want)
	}
}

func TestReduceMinMax(t *testing.T) {
	v := Load([]int64{5, -2, 9, 3})

	if got := ReduceMin(v); got != -2 {
		t.Errorf("ReduceMin: got %v, want -2", got)
	}
	if got := ReduceMax(v); got != 9 {
		t.Errorf("ReduceMax: got %v, want 9", got)
	}
}

func TestReduceEmpty(t *testing.T) {
	v := Load([]float32{})

	if got := ReduceSum(v); got != 0 {
		t.Errorf("ReduceSum(empty): got %v, want 0", got)
	}
	if got := ReduceMin(v); got != 0 {
		t.Errorf("ReduceMin(empty): got %v, want 0", got)
	}
}

func TestStoreClamps(t *testing.T) {
	v := Load([]float32{1, 2, 3, 4})
	dst := make([]float32, 2)
	Store(v, dst)

	if dst[0] != 1 || dst[1] != 2 {
		t.Errorf("Store: got %v, want [1 2]", dst)
	}
}

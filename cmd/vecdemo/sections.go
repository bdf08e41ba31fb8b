package main

import (
	"io"

	"golang.org/x/text/message"

	"github.com/numkit/go-vec/vec"
	"github.com/numkit/go-vec/vec/contrib/algo"
	"github.com/numkit/go-vec/vec/contrib/blas"
	"github.com/numkit/go-vec/vec/contrib/dist"
	"github.com/numkit/go-vec/vec/contrib/solve"
)

// A section is one self-contained demonstration block. Sections write to an
// io.Writer so tests can capture and compare their output.
type section struct {
	name  string
	title string
	run   func(p *message.Printer, w io.Writer)
}

var sections = []section{
	{"axpy", "Scaled vector accumulation (axpy)", sectionAxpy},
	{"dot", "Dot product", sectionDot},
	{"solve", "Dense linear solve (gesv)", sectionSolve},
	{"abs", "Elementwise absolute value", sectionAbs},
	{"sqrt", "Elementwise square root", sectionSqrt},
	{"recip", "Elementwise reciprocal", sectionRecip},
	{"convert", "Float to integer conversion", sectionConvert},
	{"dist", "Pairwise path distance", sectionDist},
}

func sectionAxpy(p *message.Printer, w io.Writer) {
	alpha := float32(10)
	x := []float32{1, 2, 3}
	y := []float32{3, 4, 5}

	p.Fprintf(w, "y = alpha*x + y with alpha=%v, x=%v, y=%v\n", alpha, x, y)
	blas.Axpy(alpha, x, y)
	p.Fprintf(w, "y = %v\n", y)
}

func sectionDot(p *message.Printer, w io.Writer) {
	x := []float32{1, 2, 3}
	y := []float32{3, 4, 5}

	p.Fprintf(w, "dot(x, y) with x=%v, y=%v\n", x, y)
	p.Fprintf(w, "dot = %v\n", blas.Dot(x, y))
}

func sectionSolve(p *message.Printer, w io.Writer) {
	const n = 3
	a := []float64{
		4, 2, 1,
		2, 5, 1,
		1, 1, 4,
	}
	b := []float64{11, 15, 15}

	p.Fprintf(w, "solve A*x = b\n")
	for i := 0; i < n; i++ {
		p.Fprintf(w, "A[%d] = %v\n", i, a[i*n:(i+1)*n])
	}
	p.Fprintf(w, "b = %v\n", b)

	// Gesv works in place; after the call b holds the solution and the
	// info scalar reports whether it is meaningful.
	info := solve.Gesv(n, a, b)
	p.Fprintf(w, "x = %v\n", b)
	p.Fprintf(w, "info = %v\n", info)
}

func sectionAbs(p *message.Printer, w io.Writer) {
	v := []float64{-3, -2, -5, -10}
	out := make([]float64, len(v))

	p.Fprintf(w, "abs(v) with v=%v\n", v)
	algo.AbsTransform64(v, out)
	p.Fprintf(w, "abs = %v\n", out)
}

func sectionSqrt(p *message.Printer, w io.Writer) {
	v := []float64{16, 9, 4, 1}
	out := make([]float64, len(v))

	p.Fprintf(w, "sqrt(v) with v=%v\n", v)
	algo.SqrtTransform64(v, out)
	p.Fprintf(w, "sqrt = %v\n", out)
}

func sectionRecip(p *message.Printer, w io.Writer) {
	v := []float64{1, 2, 4, 8}
	out := make([]float64, len(v))

	p.Fprintf(w, "1/v with v=%v\n", v)
	algo.RecipTransform64(v, out)
	p.Fprintf(w, "recip = %v\n", out)
}

func sectionConvert(p *message.Printer, w io.Writer) {
	v := []float64{1.5, 2.5, 3.7, -2.3}

	p.Fprintf(w, "int32(v) with v=%v\n", v)
	p.Fprintf(w, "trunc = %v\n", truncToInt32(v))
	p.Fprintf(w, "round = %v\n", roundToInt32(v))
}

func sectionDist(p *message.Printer, w io.Writer) {
	// Nine points spaced (6, 8) apart: eight segments of length 10.
	pts := make([]float64, 0, 18)
	for i := 0; i < 9; i++ {
		pts = append(pts, float64(6*i), float64(8*i))
	}

	p.Fprintf(w, "cumulative distance along 9 points stepping (6, 8)\n")
	p.Fprintf(w, "length = %v\n", dist.PathLength(pts, 2))
}

// truncToInt32 converts chunk-by-chunk, truncating toward zero.
func truncToInt32(in []float64) []int32 {
	out := make([]int32, len(in))
	vec.ProcessWithTail[float64](len(in),
		func(offset int) {
			v := vec.ConvertToInt32(vec.Load(in[offset:]))
			vec.Store(v, out[offset:])
		},
		func(offset, count int) {
			m := vec.TailMask[float64](count)
			v := vec.ConvertToInt32(vec.MaskLoad(m, in[offset:]))
			vec.MaskStore(vec.TailMask[int32](count), v, out[offset:])
		},
	)
	return out
}

// roundToInt32 rounds to nearest (ties away from zero) before converting.
func roundToInt32(in []float64) []int32 {
	out := make([]int32, len(in))
	vec.ProcessWithTail[float64](len(in),
		func(offset int) {
			v := vec.ConvertToInt32(vec.Round(vec.Load(in[offset:])))
			vec.Store(v, out[offset:])
		},
		func(offset, count int) {
			m := vec.TailMask[float64](count)
			v := vec.ConvertToInt32(vec.Round(vec.MaskLoad(m, in[offset:])))
			vec.MaskStore(vec.TailMask[int32](count), v, out[offset:])
		},
	)
	return out
}

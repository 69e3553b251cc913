// Copyright 2025 go-highway Authors
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

package arith

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/hwyarith/hwyarith/hwy"
	"github.com/hwyarith/hwyarith/hwy/contrib/workerpool"
)

// Unary applies op to every element of src and writes the result to dst.
// Only min(len(dst), len(src)) elements are processed.
func Unary[T hwy.Lanes](dst, src []T, op func(hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(dst), len(src))
	hwy.ProcessWithTail[T](n,
		func(offset int) {
			hwy.Store(op(hwy.Load(src[offset:])), dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			x := hwy.MaskLoad(mask, src[offset:offset+count])
			hwy.MaskStore(mask, op(x), dst[offset:offset+count])
		},
	)
}

// Binary applies op element-wise to a and b and writes the result to dst.
func Binary[T hwy.Lanes](dst, a, b []T, op func(x, y hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(dst), len(a), len(b))
	hwy.ProcessWithTail[T](n,
		func(offset int) {
			hwy.Store(op(hwy.Load(a[offset:]), hwy.Load(b[offset:])), dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			x := hwy.MaskLoad(mask, a[offset:offset+count])
			y := hwy.MaskLoad(mask, b[offset:offset+count])
			hwy.MaskStore(mask, op(x, y), dst[offset:offset+count])
		},
	)
}

// Ternary applies op element-wise to a, b and c and writes the result to dst.
func Ternary[T hwy.Lanes](dst, a, b, c []T, op func(x, y, z hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(dst), len(a), len(b), len(c))
	hwy.ProcessWithTail[T](n,
		func(offset int) {
			hwy.Store(op(hwy.Load(a[offset:]), hwy.Load(b[offset:]), hwy.Load(c[offset:])), dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			x := hwy.MaskLoad(mask, a[offset:offset+count])
			y := hwy.MaskLoad(mask, b[offset:offset+count])
			z := hwy.MaskLoad(mask, c[offset:offset+count])
			hwy.MaskStore(mask, op(x, y, z), dst[offset:offset+count])
		},
	)
}

// ParallelUnary is Unary split across pool. Range boundaries are multiples
// of the vector width, so only the last range has a tail.
func ParallelUnary[T hwy.Lanes](pool *workerpool.Pool, dst, src []T, op func(hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(dst), len(src))
	pool.ParallelFor(n, hwy.MaxLanes[T](), func(start, end int) {
		Unary(dst[start:end], src[start:end], op)
	})
}

// ParallelBinary is Binary split across pool.
func ParallelBinary[T hwy.Lanes](pool *workerpool.Pool, dst, a, b []T, op func(x, y hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(dst), len(a), len(b))
	pool.ParallelFor(n, hwy.MaxLanes[T](), func(start, end int) {
		Binary(dst[start:end], a[start:end], b[start:end], op)
	})
}

func binaryMul[T hwy.Lanes](x, y hwy.Vec[T]) hwy.Vec[T] {
	return Mul(x, y)
}

// MulTo writes a[i] * b[i] to dst. float64 slices of equal length use the
// algo-vecmath block kernel.
func MulTo[T hwy.Lanes](dst, a, b []T) {
	if d, ok := any(dst).([]float64); ok && len(a) == len(d) && len(b) == len(d) {
		vecmath.MulBlock(d, any(a).([]float64), any(b).([]float64))
		return
	}
	Binary(dst, a, b, binaryMul[T])
}

// MulInPlace multiplies dst by src element-wise.
func MulInPlace[T hwy.Lanes](dst, src []T) {
	if d, ok := any(dst).([]float64); ok && len(src) == len(d) {
		vecmath.MulBlockInPlace(d, any(src).([]float64))
		return
	}
	Binary(dst, dst, src, binaryMul[T])
}

// SqrTo writes src[i]² to dst.
func SqrTo[T hwy.Lanes](dst, src []T) {
	MulTo(dst, src, src)
}

// HypotTo writes sqrt(x[i]² + y[i]²) to dst. Slices must share a length.
func HypotTo(dst, x, y []float64) {
	vecmath.Magnitude(dst, x, y)
}

// SqrSumTo writes x[i]² + y[i]² to dst. Slices must share a length.
func SqrSumTo(dst, x, y []float64) {
	vecmath.Power(dst, x, y)
}

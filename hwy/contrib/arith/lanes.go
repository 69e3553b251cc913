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
	stdmath "math"

	"github.com/hwyarith/hwyarith/hwy"
)

// laneKind describes a lane type once per call so the per-lane kernels do
// not re-derive it.
type laneKind struct {
	float  bool
	signed bool
	bits   int
	lo     int64
	hi     int64
	uhi    uint64
}

func kindOf[T hwy.Lanes]() laneKind {
	k := laneKind{
		float:  hwy.IsFloat[T](),
		signed: hwy.IsSigned[T](),
		bits:   hwy.BitsOf[T](),
	}
	if !k.float {
		if k.signed {
			k.lo, k.hi = int64(hwy.Lowest[T]()), int64(hwy.Highest[T]())
		} else {
			k.uhi = uint64(hwy.Highest[T]())
		}
	}
	return k
}

func map1[T hwy.Lanes](v hwy.Vec[T], fn func(x T) T) hwy.Vec[T] {
	data := v.Data()
	result := make([]T, len(data))
	for i, x := range data {
		result[i] = fn(x)
	}
	return hwy.Load(result)
}

func map2[T hwy.Lanes](a, b hwy.Vec[T], fn func(x, y T) T) hwy.Vec[T] {
	aData, bData := a.Data(), b.Data()
	n := min(len(aData), len(bData))
	result := make([]T, n)
	for i := range n {
		result[i] = fn(aData[i], bData[i])
	}
	return hwy.Load(result)
}

func map3[T hwy.Lanes](a, b, c hwy.Vec[T], fn func(x, y, z T) T) hwy.Vec[T] {
	aData, bData, cData := a.Data(), b.Data(), c.Data()
	n := min(len(aData), len(bData), len(cData))
	result := make([]T, n)
	for i := range n {
		result[i] = fn(aData[i], bData[i], cData[i])
	}
	return hwy.Load(result)
}

// fold applies a binary lane operation left to right over x, y, rest...
func fold[T hwy.Lanes](fn func(x, y T) T, x, y hwy.Vec[T], rest []hwy.Vec[T]) hwy.Vec[T] {
	acc := map2(x, y, fn)
	for _, z := range rest {
		acc = map2(acc, z, fn)
	}
	return acc
}

func isNaN[T hwy.Lanes](x T) bool {
	return x != x
}

func isInf[T hwy.Lanes](x T) bool {
	return stdmath.IsInf(float64(x), 0)
}

// signbit reports whether x is negative, including -0 and negative NaNs.
func signbit[T hwy.Lanes](k laneKind, x T) bool {
	if k.float {
		return stdmath.Signbit(float64(x))
	}
	return x < 0
}

func copysignF[T hwy.Lanes](mag, sgn T) T {
	return T(stdmath.Copysign(float64(mag), float64(sgn)))
}

// absU64 returns |v| as an unsigned magnitude; it is exact for MinInt64.
func absU64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

func clampI64(v, lo, hi int64) int64 {
	return min(max(v, lo), hi)
}

// minusOne returns -1 for float and signed lanes. It is not a constant
// expression so it also compiles for unsigned lane types.
func minusOne[T hwy.Lanes]() T {
	one := T(1)
	return -one
}

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

// agmMaxIter bounds the agm iteration; convergence is quadratic so float64
// needs well under ten steps.
const agmMaxIter = 64

// Average returns the mean of x and y without intermediate overflow.
// Integer lanes compute (x & y) + ((x ^ y) >> 1), which rounds toward -Inf.
// Float lanes compute x/2 + y/2.
func Average[T hwy.Lanes](x, y hwy.Vec[T]) hwy.Vec[T] {
	k := kindOf[T]()
	switch {
	case k.float:
		return map2(x, y, func(a, b T) T { return a/2 + b/2 })
	case k.signed:
		return map2(x, y, func(a, b T) T {
			ia, ib := int64(a), int64(b)
			return T((ia & ib) + ((ia ^ ib) >> 1))
		})
	default:
		return map2(x, y, func(a, b T) T {
			ua, ub := uint64(a), uint64(b)
			return T((ua & ub) + ((ua ^ ub) >> 1))
		})
	}
}

// AverageN returns the arithmetic mean of all operands. Each operand is
// scaled by 1/n before summation so large values do not overflow.
func AverageN[T hwy.Floats](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	inv := 1 / T(2+len(rest))
	return fold(func(acc, b T) T { return acc + b*inv }, Mul(x, hwy.Set(inv)), y, rest)
}

// Lerp returns a + t·(b - a), evaluated as fma(t, b, fnma(t, a, a)) so that
// Lerp(a, b, 0) == a and Lerp(a, b, 1) == b exactly.
func Lerp[T hwy.Floats](a, b, t hwy.Vec[T]) hwy.Vec[T] {
	return map3(a, b, t, func(x, y, w T) T {
		fx, fy, fw := float64(x), float64(y), float64(w)
		return T(stdmath.FMA(fw, fy, stdmath.FMA(-fw, fx, fx)))
	})
}

func agm(a, b float64) float64 {
	switch {
	case stdmath.IsNaN(a) || stdmath.IsNaN(b):
		return stdmath.NaN()
	case a == 0 || b == 0:
		return 0
	case stdmath.Signbit(a) != stdmath.Signbit(b):
		return stdmath.NaN()
	}

	negative := a < 0
	a, b = stdmath.Abs(a), stdmath.Abs(b)
	if stdmath.IsInf(a, 0) || stdmath.IsInf(b, 0) {
		a = stdmath.Inf(1)
	} else {
		for range agmMaxIter {
			if a == b {
				break
			}
			an := a/2 + b/2
			bn := stdmath.Sqrt(a) * stdmath.Sqrt(b)
			if an == a && bn == b {
				break
			}
			a, b = an, bn
		}
	}
	if negative {
		return -a
	}
	return a
}

// Agm returns the arithmetic-geometric mean of a and b. A zero operand
// yields 0, operands of opposite sign yield NaN, NaN propagates and an
// infinite operand with a same-signed finite one yields that infinity.
// Two negative operands yield -Agm(|a|, |b|).
func Agm[T hwy.Floats](a, b hwy.Vec[T]) hwy.Vec[T] {
	return map2(a, b, func(x, y T) T { return T(agm(float64(x), float64(y))) })
}

// Manhattan returns |x| + |y| + ... . A NaN lane propagates.
func Manhattan[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	abs := absLane[T](kindOf[T]())
	sum := map2(x, y, func(a, b T) T { return abs(a) + abs(b) })
	for _, z := range rest {
		sum = map2(sum, z, func(a, b T) T { return a + abs(b) })
	}
	return sum
}

// ManhattanPedantic is Manhattan except that a lane holding ±Inf in any
// operand yields +Inf even when another operand is NaN.
func ManhattanPedantic[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	sum := Manhattan(x, y, rest...)
	if !hwy.IsFloat[T]() {
		return sum
	}
	inf := T(stdmath.Inf(1))
	anyInf := func(acc, v hwy.Vec[T]) hwy.Vec[T] {
		return map2(acc, v, func(s, b T) T {
			if isInf(b) {
				return inf
			}
			return s
		})
	}
	sum = anyInf(anyInf(sum, x), y)
	for _, z := range rest {
		sum = anyInf(sum, z)
	}
	return sum
}

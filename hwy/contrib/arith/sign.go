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

func signLane[T hwy.Lanes](k laneKind) func(x T) T {
	return func(x T) T {
		switch {
		case isNaN(x):
			return x
		case x > 0:
			return 1
		case x < 0 && k.signed:
			return minusOne[T]()
		}
		// ±0 keeps its sign.
		return x
	}
}

func signNZLane[T hwy.Lanes](k laneKind) func(x T) T {
	return func(x T) T {
		switch {
		case isNaN(x):
			return x
		case signbit(k, x):
			return minusOne[T]()
		}
		return 1
	}
}

// Sign returns -1, 0 or +1 according to the sign of x. NaN lanes stay NaN
// and ±0 is returned unchanged.
func Sign[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	return map1(x, signLane[T](kindOf[T]()))
}

// SignNZ returns -1 when the sign bit of x is set (including -0) and +1
// otherwise. NaN lanes stay NaN.
func SignNZ[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	return map1(x, signNZLane[T](kindOf[T]()))
}

// SignAlternate returns (-1)^n. Float lanes that are not finite integral
// values yield NaN.
func SignAlternate[T hwy.Signed](n hwy.Vec[T]) hwy.Vec[T] {
	k := kindOf[T]()
	return map1(n, func(a T) T {
		if k.float {
			f := float64(a)
			if stdmath.IsNaN(f) || stdmath.IsInf(f, 0) || f != stdmath.Trunc(f) {
				return T(stdmath.NaN())
			}
			if stdmath.Mod(f, 2) == 0 {
				return 1
			}
			return -1
		}
		if int64(a)&1 == 0 {
			return 1
		}
		return -1
	})
}

// CopySign returns a value with the magnitude of x and the sign of y.
// Signed integer lanes use |x|; |Lowest| wraps to Lowest.
func CopySign[T hwy.Signed](x, y hwy.Vec[T]) hwy.Vec[T] {
	k := kindOf[T]()
	if k.float {
		return map2(x, y, func(a, b T) T { return copysignF(a, b) })
	}
	abs := absLane[T](k)
	return map2(x, y, func(a, b T) T {
		m := abs(a)
		if b < 0 {
			return -m
		}
		return m
	})
}

// Negate returns x·Sign(y): x negated where y < 0, zero where y is zero.
func Negate[T hwy.Lanes](x, y hwy.Vec[T]) hwy.Vec[T] {
	return Mul(x, Sign(y))
}

// NegateNZ returns x·SignNZ(y): x negated where the sign bit of y is set.
func NegateNZ[T hwy.Lanes](x, y hwy.Vec[T]) hwy.Vec[T] {
	return Mul(x, SignNZ(y))
}

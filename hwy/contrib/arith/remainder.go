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

func fmodLane[T hwy.Lanes](k laneKind) func(x, y T) T {
	switch {
	case k.float:
		return func(x, y T) T { return T(stdmath.Mod(float64(x), float64(y))) }
	case k.signed:
		return func(x, y T) T {
			if y == 0 {
				return x
			}
			return T(int64(x) % int64(y))
		}
	default:
		return func(x, y T) T {
			if y == 0 {
				return x
			}
			return T(uint64(x) % uint64(y))
		}
	}
}

// Fmod returns the remainder of x / y truncated toward zero, with the sign
// of x. Float lanes follow C fmod: y = 0 or x = ±Inf yield NaN and y = ±Inf
// yields x. Integer lanes return x when y is zero.
func Fmod[T hwy.Lanes](x, y hwy.Vec[T]) hwy.Vec[T] {
	return map2(x, y, fmodLane[T](kindOf[T]()))
}

// Rem is Fmod: x - y·trunc(x / y).
func Rem[T hwy.Lanes](x, y hwy.Vec[T]) hwy.Vec[T] {
	return Fmod(x, y)
}

// RemRound returns x - y·DivRound(x, y, mode). ToNearest is the IEEE
// remainder. Integer lanes return x when y is zero; unsigned lanes wrap
// when the rounded quotient overshoots x.
func RemRound[T hwy.Lanes](x, y hwy.Vec[T], mode RoundingMode) hwy.Vec[T] {
	k := kindOf[T]()
	switch {
	case k.float:
		return map2(x, y, func(a, b T) T {
			fa, fb := float64(a), float64(b)
			if mode == ToNearest {
				return T(stdmath.Remainder(fa, fb))
			}
			r := stdmath.Mod(fa, fb)
			if r == 0 || stdmath.IsNaN(r) {
				return T(r)
			}
			switch {
			case mode == Downward && stdmath.Signbit(r) != stdmath.Signbit(fb):
				r += fb
			case mode == Upward && stdmath.Signbit(r) == stdmath.Signbit(fb):
				r -= fb
			}
			return T(r)
		})
	case k.signed:
		return map2(x, y, func(a, b T) T {
			if b == 0 {
				return a
			}
			ia, ib := int64(a), int64(b)
			if ia == k.lo && ib == -1 {
				return 0
			}
			return T(ia - roundedQuotI64(ia, ib, mode)*ib)
		})
	default:
		return map2(x, y, func(a, b T) T {
			if b == 0 {
				return a
			}
			ua, ub := uint64(a), uint64(b)
			return T(ua - roundedQuotU64(ua, ub, mode)*ub)
		})
	}
}

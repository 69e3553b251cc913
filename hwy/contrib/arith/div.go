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

import "github.com/hwyarith/hwyarith/hwy"

// divByZero is the integer quotient of x / 0: the lane limit in the
// direction of x, or zero for 0 / 0.
func divByZero[T hwy.Lanes](k laneKind, x T) T {
	switch {
	case x > 0 && k.signed:
		return T(k.hi)
	case x > 0:
		return T(k.uhi)
	case x < 0:
		return T(k.lo)
	}
	return 0
}

// divLane returns the truncating quotient kernel. With saturate set,
// Lowest / -1 yields Highest instead of wrapping to Lowest.
func divLane[T hwy.Lanes](k laneKind, saturate bool) func(x, y T) T {
	switch {
	case k.float:
		return func(x, y T) T { return x / y }
	case k.signed:
		return func(x, y T) T {
			if y == 0 {
				return divByZero(k, x)
			}
			a, b := int64(x), int64(y)
			if a == k.lo && b == -1 && saturate {
				return T(k.hi)
			}
			return T(a / b)
		}
	default:
		return func(x, y T) T {
			if y == 0 {
				return divByZero(k, x)
			}
			return T(uint64(x) / uint64(y))
		}
	}
}

// Div returns x / (y * rest[0] * ...). Integer quotients truncate toward
// zero; integer division by zero yields Highest for a positive dividend,
// Lowest for a negative one and zero for 0 / 0. Lowest / -1 wraps to Lowest.
func Div[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	d := y
	if len(rest) > 0 {
		d = Mul(y, rest[0], rest[1:]...)
	}
	return map2(x, d, divLane[T](kindOf[T](), false))
}

// DivSaturated is Div with a saturated divisor product and Lowest / -1
// mapped to Highest.
func DivSaturated[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	d := y
	if len(rest) > 0 {
		d = MulSaturated(y, rest[0], rest[1:]...)
	}
	return map2(x, d, divLane[T](kindOf[T](), true))
}

// roundedQuotI64 divides a by b (b != 0) rounding in the given mode.
// The caller handles Lowest / -1.
func roundedQuotI64(a, b int64, mode RoundingMode) int64 {
	q, r := a/b, a%b
	if r == 0 {
		return q
	}
	step := int64(1)
	if (r < 0) != (b < 0) {
		step = -1
	}
	switch mode {
	case TowardZero:
		return q
	case Upward:
		if step > 0 {
			return q + 1
		}
		return q
	case Downward:
		if step < 0 {
			return q - 1
		}
		return q
	default:
		ar, ab := absU64(r), absU64(b)
		if ar > ab-ar || (ar == ab-ar && q&1 != 0) {
			return q + step
		}
		return q
	}
}

func roundedQuotU64(a, b uint64, mode RoundingMode) uint64 {
	q, r := a/b, a%b
	switch {
	case r == 0:
		return q
	case mode == Upward:
		return q + 1
	case mode == ToNearest && (r > b-r || (r == b-r && q&1 != 0)):
		return q + 1
	}
	return q
}

func divRoundLane[T hwy.Lanes](k laneKind, mode RoundingMode) func(x, y T) T {
	switch {
	case k.float:
		return func(x, y T) T { return T(roundF64(mode, float64(x/y))) }
	case k.signed:
		return func(x, y T) T {
			if y == 0 {
				return divByZero(k, x)
			}
			a, b := int64(x), int64(y)
			if a == k.lo && b == -1 {
				return T(a / b)
			}
			return T(roundedQuotI64(a, b, mode))
		}
	default:
		return func(x, y T) T {
			if y == 0 {
				return divByZero(k, x)
			}
			return T(roundedQuotU64(uint64(x), uint64(y), mode))
		}
	}
}

// DivRound returns x / y rounded in the given mode. For float lanes the
// IEEE quotient is rounded to an integral value; integer lanes compute the
// exact rounded quotient. Division by zero follows Div.
func DivRound[T hwy.Lanes](x, y hwy.Vec[T], mode RoundingMode) hwy.Vec[T] {
	return map2(x, y, divRoundLane[T](kindOf[T](), mode))
}

// Rec returns 1 / x. Integer lanes yield Highest for 0, x for ±1 and zero
// otherwise.
func Rec[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	k := kindOf[T]()
	if k.float {
		return map1(x, func(a T) T { return 1 / a })
	}
	return map1(x, func(a T) T {
		switch {
		case a == 0:
			return divByZero(k, T(1))
		case a == 1 || (k.signed && int64(a) == -1):
			return a
		}
		return 0
	})
}

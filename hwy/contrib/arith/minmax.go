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
	"fmt"

	"github.com/hwyarith/hwyarith/hwy"
)

// NaNPolicy selects how the min/max families treat NaN and signed zero.
// Integer lanes behave the same under every policy.
type NaNPolicy int

const (
	// Regular computes max as x < y ? y : x and min as y < x ? y : x.
	// The result for a NaN operand depends on argument order.
	Regular NaNPolicy = iota

	// Pedantic returns NaN when either operand is NaN and orders -0 below +0.
	Pedantic

	// Numeric ignores a NaN operand when the other one is a number, then
	// behaves like Pedantic.
	Numeric
)

// String returns the policy name.
func (p NaNPolicy) String() string {
	switch p {
	case Regular:
		return "regular"
	case Pedantic:
		return "pedantic"
	case Numeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// ParseNaNPolicy parses the names returned by NaNPolicy.String.
func ParseNaNPolicy(s string) (NaNPolicy, error) {
	for _, p := range []NaNPolicy{Regular, Pedantic, Numeric} {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("arith: unknown NaN policy %q", s)
}

func maxLane[T hwy.Lanes](p NaNPolicy, k laneKind) func(x, y T) T {
	regular := func(x, y T) T {
		if x < y {
			return y
		}
		return x
	}
	if !k.float || p == Regular {
		return regular
	}
	pedantic := func(x, y T) T {
		switch {
		case isNaN(x) || isNaN(y):
			return x + y
		case x == y && x == 0:
			if signbit(k, x) {
				return y
			}
			return x
		default:
			return regular(x, y)
		}
	}
	if p == Pedantic {
		return pedantic
	}
	return func(x, y T) T {
		switch {
		case isNaN(x):
			return y
		case isNaN(y):
			return x
		default:
			return pedantic(x, y)
		}
	}
}

func minLane[T hwy.Lanes](p NaNPolicy, k laneKind) func(x, y T) T {
	regular := func(x, y T) T {
		if y < x {
			return y
		}
		return x
	}
	if !k.float || p == Regular {
		return regular
	}
	pedantic := func(x, y T) T {
		switch {
		case isNaN(x) || isNaN(y):
			return x + y
		case x == y && x == 0:
			if signbit(k, x) {
				return x
			}
			return y
		default:
			return regular(x, y)
		}
	}
	if p == Pedantic {
		return pedantic
	}
	return func(x, y T) T {
		switch {
		case isNaN(x):
			return y
		case isNaN(y):
			return x
		default:
			return pedantic(x, y)
		}
	}
}

// MaxOf returns the lane-wise maximum of its operands under policy p.
func MaxOf[T hwy.Lanes](p NaNPolicy, x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return fold(maxLane[T](p, kindOf[T]()), x, y, rest)
}

// MinOf returns the lane-wise minimum of its operands under policy p.
func MinOf[T hwy.Lanes](p NaNPolicy, x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return fold(minLane[T](p, kindOf[T]()), x, y, rest)
}

// Max returns the lane-wise maximum using the Regular policy.
func Max[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return MaxOf(Regular, x, y, rest...)
}

// MaxPedantic returns the lane-wise maximum using the Pedantic policy.
func MaxPedantic[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return MaxOf(Pedantic, x, y, rest...)
}

// MaxNumeric returns the lane-wise maximum using the Numeric policy.
func MaxNumeric[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return MaxOf(Numeric, x, y, rest...)
}

// Min returns the lane-wise minimum using the Regular policy.
func Min[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return MinOf(Regular, x, y, rest...)
}

// MinPedantic returns the lane-wise minimum using the Pedantic policy.
func MinPedantic[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return MinOf(Pedantic, x, y, rest...)
}

// MinNumeric returns the lane-wise minimum using the Numeric policy.
func MinNumeric[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return MinOf(Numeric, x, y, rest...)
}

// foldAbs folds the absolute values of its operands with pick.
func foldAbs[T hwy.Lanes](pick func(x, y T) T, x, y hwy.Vec[T], rest []hwy.Vec[T]) hwy.Vec[T] {
	abs := absLane[T](kindOf[T]())
	return fold(func(a, b T) T { return pick(abs(a), abs(b)) }, x, y, rest)
}

// MaxAbsOf returns max(|x|, |y|, ...) under policy p.
func MaxAbsOf[T hwy.Lanes](p NaNPolicy, x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return foldAbs(maxLane[T](p, kindOf[T]()), x, y, rest)
}

// MinAbsOf returns min(|x|, |y|, ...) under policy p.
func MinAbsOf[T hwy.Lanes](p NaNPolicy, x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return foldAbs(minLane[T](p, kindOf[T]()), x, y, rest)
}

// MaxAbs returns max(|x|, |y|, ...).
func MaxAbs[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return MaxAbsOf(Regular, x, y, rest...)
}

// MinAbs returns min(|x|, |y|, ...).
func MinAbs[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return MinAbsOf(Regular, x, y, rest...)
}

// AbsMaxOf returns |max(x, y, ...)| under policy p.
func AbsMaxOf[T hwy.Lanes](p NaNPolicy, x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return Abs(MaxOf(p, x, y, rest...))
}

// AbsMinOf returns |min(x, y, ...)| under policy p.
func AbsMinOf[T hwy.Lanes](p NaNPolicy, x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return Abs(MinOf(p, x, y, rest...))
}

// AbsMax returns |max(x, y, ...)|.
func AbsMax[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return AbsMaxOf(Regular, x, y, rest...)
}

// AbsMin returns |min(x, y, ...)|.
func AbsMin[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return AbsMinOf(Regular, x, y, rest...)
}

// NegAbsMaxOf returns -|max(x, y, ...)| under policy p.
func NegAbsMaxOf[T hwy.Lanes](p NaNPolicy, x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return Minus(AbsMaxOf(p, x, y, rest...))
}

// NegAbsMinOf returns -|min(x, y, ...)| under policy p.
func NegAbsMinOf[T hwy.Lanes](p NaNPolicy, x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return Minus(AbsMinOf(p, x, y, rest...))
}

// NegMaxAbsOf returns -max(|x|, |y|, ...) under policy p.
func NegMaxAbsOf[T hwy.Lanes](p NaNPolicy, x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return Minus(MaxAbsOf(p, x, y, rest...))
}

// NegMinAbsOf returns -min(|x|, |y|, ...) under policy p.
func NegMinAbsOf[T hwy.Lanes](p NaNPolicy, x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return Minus(MinAbsOf(p, x, y, rest...))
}

// NegAbsMax returns -|max(x, y, ...)|.
func NegAbsMax[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return NegAbsMaxOf(Regular, x, y, rest...)
}

// NegAbsMin returns -|min(x, y, ...)|.
func NegAbsMin[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return NegAbsMinOf(Regular, x, y, rest...)
}

// NegMaxAbs returns -max(|x|, |y|, ...).
func NegMaxAbs[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return NegMaxAbsOf(Regular, x, y, rest...)
}

// NegMinAbs returns -min(|x|, |y|, ...).
func NegMinAbs[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return NegMinAbsOf(Regular, x, y, rest...)
}

// magCompare orders x and y by magnitude: -1 if |x| < |y|, +1 if |x| > |y|
// and 0 otherwise (including when either is NaN).
func magCompare[T hwy.Lanes](k laneKind, x, y T) int {
	if k.signed && !k.float {
		ax, ay := absU64(int64(x)), absU64(int64(y))
		switch {
		case ax < ay:
			return -1
		case ax > ay:
			return 1
		}
		return 0
	}
	abs := absLane[T](k)
	ax, ay := abs(x), abs(y)
	switch {
	case ax < ay:
		return -1
	case ax > ay:
		return 1
	}
	return 0
}

// MaxMagOf returns, per lane, the operand with the larger magnitude. Ties
// and NaN operands are resolved by MaxOf under policy p.
func MaxMagOf[T hwy.Lanes](p NaNPolicy, x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	k := kindOf[T]()
	tie := maxLane[T](p, k)
	return fold(func(a, b T) T {
		switch magCompare(k, a, b) {
		case 1:
			return a
		case -1:
			return b
		}
		return tie(a, b)
	}, x, y, rest)
}

// MinMagOf returns, per lane, the operand with the smaller magnitude. Ties
// and NaN operands are resolved by MinOf under policy p.
func MinMagOf[T hwy.Lanes](p NaNPolicy, x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	k := kindOf[T]()
	tie := minLane[T](p, k)
	return fold(func(a, b T) T {
		switch magCompare(k, a, b) {
		case -1:
			return a
		case 1:
			return b
		}
		return tie(a, b)
	}, x, y, rest)
}

// MaxMag returns the operand with the larger magnitude.
func MaxMag[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return MaxMagOf(Regular, x, y, rest...)
}

// MinMag returns the operand with the smaller magnitude.
func MinMag[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return MinMagOf(Regular, x, y, rest...)
}

// Clamp returns x limited to [lo, hi]. Lanes where lo > hi are unspecified
// but deterministic: the result is min(max(x, lo), hi).
func Clamp[T hwy.Lanes](x, lo, hi hwy.Vec[T]) hwy.Vec[T] {
	k := kindOf[T]()
	maxFn, minFn := maxLane[T](Regular, k), minLane[T](Regular, k)
	return map3(x, lo, hi, func(a, l, h T) T { return minFn(maxFn(a, l), h) })
}

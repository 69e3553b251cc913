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
	stdmath "math"

	"github.com/hwyarith/hwyarith/hwy"
)

// RoundingMode selects the direction of an explicit rounding step.
type RoundingMode int

const (
	// ToNearest rounds to the nearest representable value, ties to even.
	ToNearest RoundingMode = iota
	// TowardZero truncates.
	TowardZero
	// Upward rounds toward +Inf.
	Upward
	// Downward rounds toward -Inf.
	Downward
)

// String returns the mode name as used on the command line.
func (m RoundingMode) String() string {
	switch m {
	case ToNearest:
		return "to_nearest"
	case TowardZero:
		return "toward_zero"
	case Upward:
		return "upward"
	case Downward:
		return "downward"
	default:
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
}

// ParseRoundingMode parses the names returned by RoundingMode.String.
func ParseRoundingMode(s string) (RoundingMode, error) {
	for _, m := range []RoundingMode{ToNearest, TowardZero, Upward, Downward} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("arith: unknown rounding mode %q", s)
}

func roundF64(mode RoundingMode, f float64) float64 {
	switch mode {
	case TowardZero:
		return stdmath.Trunc(f)
	case Upward:
		return stdmath.Ceil(f)
	case Downward:
		return stdmath.Floor(f)
	default:
		return stdmath.RoundToEven(f)
	}
}

func roundLane[T hwy.Lanes](k laneKind, mode RoundingMode) func(x T) T {
	if !k.float {
		return func(x T) T { return x }
	}
	return func(x T) T { return T(roundF64(mode, float64(x))) }
}

// Round rounds x to an integral value in the given mode. Integer lanes are
// returned unchanged; NaN, ±Inf and ±0 are preserved.
func Round[T hwy.Lanes](x hwy.Vec[T], mode RoundingMode) hwy.Vec[T] {
	return map1(x, roundLane[T](kindOf[T](), mode))
}

// Ceil rounds toward +Inf.
func Ceil[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	return Round(x, Upward)
}

// Floor rounds toward -Inf.
func Floor[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	return Round(x, Downward)
}

// Trunc rounds toward zero.
func Trunc[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	return Round(x, TowardZero)
}

// Nearest rounds to the nearest integer, ties to even.
func Nearest[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	return Round(x, ToNearest)
}

// RoundScale rounds x to a multiple of 2^-scale: round(x·2^scale)·2^-scale.
// Integer lanes are returned unchanged.
func RoundScale[T hwy.Lanes](x hwy.Vec[T], scale int, mode RoundingMode) hwy.Vec[T] {
	if !hwy.IsFloat[T]() {
		return Plus(x)
	}
	return map1(x, func(a T) T {
		f := float64(a)
		if stdmath.IsNaN(f) || stdmath.IsInf(f, 0) {
			return a
		}
		scaled := stdmath.Ldexp(f, scale)
		if stdmath.IsInf(scaled, 0) {
			// Already a multiple of 2^-scale.
			return a
		}
		return T(stdmath.Copysign(stdmath.Ldexp(roundF64(mode, scaled), -scale), f))
	})
}

// FracScale returns x - RoundScale(x, scale, mode). ±Inf yields a zero with
// the sign of x. Integer lanes yield zero.
func FracScale[T hwy.Lanes](x hwy.Vec[T], scale int, mode RoundingMode) hwy.Vec[T] {
	if !hwy.IsFloat[T]() {
		return map1(x, func(T) T { return 0 })
	}
	r := RoundScale(x, scale, mode)
	return map2(x, r, func(a, b T) T {
		if isInf(a) {
			return copysignF(0, a)
		}
		return a - b
	})
}

func fracLane[T hwy.Lanes](k laneKind) func(x T) T {
	if !k.float {
		return func(T) T { return 0 }
	}
	return func(x T) T {
		f := float64(x)
		if stdmath.IsInf(f, 0) {
			return T(stdmath.Copysign(0, f))
		}
		return T(stdmath.Copysign(f-stdmath.Trunc(f), f))
	}
}

// Frac returns the fractional part x - Trunc(x). The sign of the result
// follows x, ±Inf yields ±0 and integer lanes yield zero.
func Frac[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	return map1(x, fracLane[T](kindOf[T]()))
}

// Modf splits x into its fractional and integral parts.
func Modf[T hwy.Lanes](x hwy.Vec[T]) (frac, whole hwy.Vec[T]) {
	return Frac(x), Trunc(x)
}

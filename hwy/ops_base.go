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

package hwy

import "math"

// This file provides the pure Go implementations of the core operations.
// Binary and ternary operations work on the common prefix of their operands:
// the result has as many lanes as the shortest input.

// Load creates a vector by loading data from a slice.
// At most MaxLanes[T]() elements are read; a shorter slice yields a
// partial vector.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Iota creates a vector with lane i set to i.
func Iota[T Lanes]() Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

func zip[T Lanes](a, b Vec[T], fn func(x, y T) T) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = fn(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func each[T Lanes](v Vec[T], fn func(x T) T) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = fn(x)
	}
	return Vec[T]{data: result}
}

// Add performs element-wise addition. Integer lanes wrap on overflow.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return zip(a, b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction. Integer lanes wrap on overflow.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return zip(a, b, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication. Integer lanes wrap on overflow.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return zip(a, b, func(x, y T) T { return x * y })
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	return zip(a, b, func(x, y T) T { return x / y })
}

// Neg negates all lanes. Unsigned lanes wrap.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	return each(v, func(x T) T { return -x })
}

// Abs computes the absolute value.
// The most negative signed value is returned unchanged, as the hardware does.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	return each(v, func(x T) T {
		if x < 0 {
			return -x
		}
		if x == 0 {
			// Clears the sign of -0.0.
			return 0
		}
		return x
	})
}

// Min returns the element-wise minimum. If b is NaN, a is returned.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return zip(a, b, func(x, y T) T {
		if y < x {
			return y
		}
		return x
	})
}

// Max returns the element-wise maximum. If b is NaN, a is returned.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return zip(a, b, func(x, y T) T {
		if x < y {
			return y
		}
		return x
	})
}

// Sqrt computes the element-wise square root.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	return each(v, func(x T) T { return T(math.Sqrt(float64(x))) })
}

// RSqrt computes 1/sqrt(x) for each lane.
func RSqrt[T Floats](v Vec[T]) Vec[T] {
	return each(v, func(x T) T { return T(1 / math.Sqrt(float64(x))) })
}

// MulAdd computes a*b + c with a single rounding for float64 lanes.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data), len(c.data))
	result := make([]T, n)
	for i := range n {
		result[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
	}
	return Vec[T]{data: result}
}

// ReduceSum returns the sum of all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// ReduceMin returns the smallest lane, or zero for an empty vector.
func ReduceMin[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	result := v.data[0]
	for _, x := range v.data[1:] {
		if x < result {
			result = x
		}
	}
	return result
}

// ReduceMax returns the largest lane, or zero for an empty vector.
func ReduceMax[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	result := v.data[0]
	for _, x := range v.data[1:] {
		if x > result {
			result = x
		}
	}
	return result
}

func compare[T Lanes](a, b Vec[T], fn func(x, y T) bool) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = fn(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// Equal returns a mask of lanes where a == b.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// NotEqual returns a mask of lanes where a != b.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x != y })
}

// LessThan returns a mask of lanes where a < b.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// LessEqual returns a mask of lanes where a <= b.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x <= y })
}

// GreaterThan returns a mask of lanes where a > b.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// GreaterEqual returns a mask of lanes where a >= b.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x >= y })
}

func predicate[T Lanes](v Vec[T], fn func(x T) bool) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = fn(x)
	}
	return Mask[T]{bits: bits}
}

// IsNaN returns a mask of lanes holding NaN.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	return predicate(v, func(x T) bool { return x != x })
}

// IsInf returns a mask of lanes holding an infinity.
// sign > 0 selects +Inf, sign < 0 selects -Inf and sign == 0 selects both.
func IsInf[T Floats](v Vec[T], sign int) Mask[T] {
	return predicate(v, func(x T) bool { return math.IsInf(float64(x), sign) })
}

// IsFinite returns a mask of lanes that are neither infinite nor NaN.
func IsFinite[T Floats](v Vec[T]) Mask[T] {
	return predicate(v, func(x T) bool {
		f := float64(x)
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	})
}

// IfThenElse selects a where the mask is set and b elsewhere.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(mask.bits), len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// IfThenElseZero selects a where the mask is set and zero elsewhere.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	n := min(len(mask.bits), len(a.data))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		}
	}
	return Vec[T]{data: result}
}

func combine[T Lanes](a, b Mask[T], fn func(x, y bool) bool) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = fn(a.bits[i], b.bits[i])
	}
	return Mask[T]{bits: bits}
}

// MaskAnd returns the lane-wise conjunction of two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	return combine(a, b, func(x, y bool) bool { return x && y })
}

// MaskOr returns the lane-wise disjunction of two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	return combine(a, b, func(x, y bool) bool { return x || y })
}

// MaskNot inverts every lane of the mask.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	bits := make([]bool, len(m.bits))
	for i, b := range m.bits {
		bits[i] = !b
	}
	return Mask[T]{bits: bits}
}

// And performs bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	return zip(a, b, func(x, y T) T { return x & y })
}

// Or performs bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	return zip(a, b, func(x, y T) T { return x | y })
}

// Xor performs bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	return zip(a, b, func(x, y T) T { return x ^ y })
}

// AndNot computes ^a & b.
func AndNot[T Integers](a, b Vec[T]) Vec[T] {
	return zip(a, b, func(x, y T) T { return ^x & y })
}

// Not performs bitwise NOT.
func Not[T Integers](v Vec[T]) Vec[T] {
	return each(v, func(x T) T { return ^x })
}

// ShiftLeft shifts every lane left by bits. A negative count shifts
// right instead. Counts at or beyond the lane width produce zero.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	if bits < 0 {
		return shiftRight(v, negBits(bits))
	}
	return shiftLeft(v, uint(bits))
}

// ShiftRight shifts every lane right by bits: arithmetic for signed lanes,
// logical for unsigned lanes. A negative count shifts left instead.
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	if bits < 0 {
		return shiftLeft(v, negBits(bits))
	}
	return shiftRight(v, uint(bits))
}

func shiftLeft[T Integers](v Vec[T], n uint) Vec[T] {
	return each(v, func(x T) T { return x << n })
}

func shiftRight[T Integers](v Vec[T], n uint) Vec[T] {
	return each(v, func(x T) T { return x >> n })
}

// negBits returns |bits| for bits < 0, including math.MinInt.
func negBits(bits int) uint {
	return uint(-(bits + 1)) + 1
}

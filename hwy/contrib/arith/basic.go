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

// Add returns x + y + rest[0] + ... lane by lane. Integer lanes wrap.
func Add[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return fold(func(a, b T) T { return a + b }, x, y, rest)
}

// AddSaturated is Add with integer results clamped to the lane range.
func AddSaturated[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return fold(satAdd[T](kindOf[T]()), x, y, rest)
}

// Sub returns x - y - rest[0] - ... lane by lane. Integer lanes wrap.
func Sub[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return fold(func(a, b T) T { return a - b }, x, y, rest)
}

// SubSaturated is Sub with integer results clamped to the lane range.
func SubSaturated[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return fold(satSub[T](kindOf[T]()), x, y, rest)
}

// Mul returns x * y * rest[0] * ... lane by lane. Integer lanes wrap.
func Mul[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return fold(func(a, b T) T { return a * b }, x, y, rest)
}

// MulSaturated is Mul with integer results clamped to the lane range.
func MulSaturated[T hwy.Lanes](x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T] {
	return fold(satMul[T](kindOf[T]()), x, y, rest)
}

// Inc returns x + 1.
func Inc[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	return map1(x, func(a T) T { return a + 1 })
}

// IncSaturated returns x + 1, staying at hwy.Highest for integer lanes.
func IncSaturated[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	add := satAdd[T](kindOf[T]())
	return map1(x, func(a T) T { return add(a, 1) })
}

// Dec returns x - 1.
func Dec[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	return map1(x, func(a T) T { return a - 1 })
}

// DecSaturated returns x - 1, staying at hwy.Lowest for integer lanes.
func DecSaturated[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	sub := satSub[T](kindOf[T]())
	return map1(x, func(a T) T { return sub(a, 1) })
}

// Minus returns -x. Unsigned lanes wrap.
func Minus[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	return map1(x, func(a T) T { return -a })
}

// MinusSaturated returns -x with -Lowest mapped to Highest for signed lanes
// and every unsigned lane mapped to zero.
func MinusSaturated[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	return map1(x, satNeg[T](kindOf[T]()))
}

// Plus returns x unchanged.
func Plus[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	return map1(x, func(a T) T { return a })
}

// Conj returns the complex conjugate of x, which is x for real lanes.
func Conj[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	return Plus(x)
}

// OneMinus returns 1 - x.
func OneMinus[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	return map1(x, func(a T) T { return 1 - a })
}

// OneMinusSaturated returns 1 - x clamped to the lane range.
func OneMinusSaturated[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	sub := satSub[T](kindOf[T]())
	return map1(x, func(a T) T { return sub(1, a) })
}

// Sqr returns x * x.
func Sqr[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	return map1(x, func(a T) T { return a * a })
}

// SqrSaturated returns x * x clamped to the lane range.
func SqrSaturated[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	mul := satMul[T](kindOf[T]())
	return map1(x, func(a T) T { return mul(a, a) })
}

// SqrAbs returns |x|², which equals Sqr for real lanes.
func SqrAbs[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	return Sqr(x)
}

// Fdim returns x - y where x > y and zero elsewhere.
// A NaN in either operand yields NaN.
func Fdim[T hwy.Lanes](x, y hwy.Vec[T]) hwy.Vec[T] {
	return map2(x, y, func(a, b T) T {
		switch {
		case isNaN(a) || isNaN(b):
			return a + b
		case a > b:
			return a - b
		default:
			return 0
		}
	})
}

// Dist returns |x - y|. Integer lanes are computed as max - min, so
// unsigned lanes never wrap; signed lanes may wrap when the distance
// exceeds hwy.Highest.
func Dist[T hwy.Lanes](x, y hwy.Vec[T]) hwy.Vec[T] {
	k := kindOf[T]()
	return map2(x, y, func(a, b T) T {
		if k.float {
			d := a - b
			if d < 0 {
				return -d
			}
			return d + 0 // normalizes -0
		}
		if a > b {
			return a - b
		}
		return b - a
	})
}

// DistSaturated is Dist with signed overflow clamped to hwy.Highest.
func DistSaturated[T hwy.Lanes](x, y hwy.Vec[T]) hwy.Vec[T] {
	sub := satSub[T](kindOf[T]())
	return map2(x, y, func(a, b T) T {
		if isNaN(a) || isNaN(b) {
			return a + b
		}
		if a > b {
			return sub(a, b)
		}
		return sub(b, a)
	})
}

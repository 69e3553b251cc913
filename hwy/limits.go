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

import (
	"math"
	"unsafe"
)

// BitsOf returns the width of a lane of type T in bits.
func BitsOf[T Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// IsFloat reports whether T is a floating-point lane type.
func IsFloat[T Lanes]() bool {
	var one T = 1
	return one/2 != 0
}

// IsSigned reports whether T can represent negative values.
func IsSigned[T Lanes]() bool {
	var zero T
	return zero-1 < 0
}

// Highest returns the largest finite value representable by T.
func Highest[T Lanes]() T {
	bits := BitsOf[T]()
	switch {
	case IsFloat[T]():
		f := math.MaxFloat64
		if bits == 32 {
			f = math.MaxFloat32
		}
		return T(f)
	case IsSigned[T]():
		h := int64(1)<<(bits-1) - 1
		return T(h)
	default:
		u := uint64(1)<<bits - 1
		return T(u)
	}
}

// Lowest returns the most negative finite value representable by T.
func Lowest[T Lanes]() T {
	bits := BitsOf[T]()
	switch {
	case IsFloat[T]():
		f := -math.MaxFloat64
		if bits == 32 {
			f = -math.MaxFloat32
		}
		return T(f)
	case IsSigned[T]():
		l := -int64(1) << (bits - 1)
		return T(l)
	default:
		return 0
	}
}

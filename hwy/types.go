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

// Package hwy provides portable lane-wise vectors with runtime CPU dispatch.
//
// A Vec holds as many lanes as fit in the widest SIMD register detected at
// startup (16 bytes for SSE2/NEON, 32 for AVX2, 64 for AVX-512). Every
// operation is defined lane by lane, so the same code produces the same
// results on every target; only the lane count changes.
//
// Basic usage:
//
//	import "github.com/hwyarith/hwyarith/hwy"
//
//	a := hwy.Load(data1)
//	b := hwy.Load(data2)
//	sum := hwy.Add(a, b)
//	hwy.Store(sum, output)
//
// Higher level operations live under hwy/contrib.
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Signed is a constraint for lane types that carry a sign.
type Signed interface {
	Floats | SignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the lanes of the vector.
// The returned slice aliases the vector; callers must not modify it.
func (v Vec[T]) Data() []T {
	return v.data
}

// Lane returns lane i, or the zero value when i is out of range.
func (v Vec[T]) Lane(i int) T {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero
	}
	return v.data[i]
}

// Store writes the vector's lanes to dst.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a lane-wise comparison.
// It can be used with IfThenElse, MaskLoad, and MaskStore to perform
// conditional operations.
type Mask[T Lanes] struct {
	bits []bool
}

// MaskFromBools builds a mask from explicit lane predicates.
// Lanes beyond MaxLanes are dropped.
func MaskFromBools[T Lanes](bits []bool) Mask[T] {
	n := min(len(bits), MaxLanes[T]())
	out := make([]bool, n)
	copy(out, bits[:n])
	return Mask[T]{bits: out}
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

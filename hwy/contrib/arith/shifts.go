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

// Per-lane shifts. Counts of at least the lane width shift every bit out:
// left shifts and logical right shifts give 0, arithmetic right shifts of
// a negative value give -1. This matches Go's own shift semantics.

func shiftCounts[T, S hwy.Integers](x hwy.Vec[T], n hwy.Vec[S], fn func(a T, c S) T) hwy.Vec[T] {
	xData, nData := x.Data(), n.Data()
	count := min(len(xData), len(nData))
	result := make([]T, count)
	for i := range count {
		result[i] = fn(xData[i], nData[i])
	}
	return hwy.Load(result)
}

func shl[T, S hwy.Integers](a T, c S) T {
	if c < 0 {
		return 0
	}
	return a << uint64(c)
}

func shr[T, S hwy.Integers](a T, c S) T {
	if c < 0 {
		return a >> uint(hwy.BitsOf[T]())
	}
	return a >> uint64(c)
}

// Shl shifts each lane of x left by the matching lane of n. Negative
// counts are out of range and yield 0.
func Shl[T, S hwy.Integers](x hwy.Vec[T], n hwy.Vec[S]) hwy.Vec[T] {
	return shiftCounts(x, n, shl[T, S])
}

// Shr shifts each lane of x right by the matching lane of n: arithmetic
// for signed lanes, logical for unsigned ones. Negative counts are out of
// range.
func Shr[T, S hwy.Integers](x hwy.Vec[T], n hwy.Vec[S]) hwy.Vec[T] {
	return shiftCounts(x, n, shr[T, S])
}

// Rshl shifts left by n where n >= 0 and right by -n otherwise.
func Rshl[T, S hwy.Integers](x hwy.Vec[T], n hwy.Vec[S]) hwy.Vec[T] {
	return shiftCounts(x, n, func(a T, c S) T {
		if c >= 0 {
			return shl(a, c)
		}
		return a >> negCount(c)
	})
}

// Rshr shifts right by n where n >= 0 and left by -n otherwise.
func Rshr[T, S hwy.Integers](x hwy.Vec[T], n hwy.Vec[S]) hwy.Vec[T] {
	return shiftCounts(x, n, func(a T, c S) T {
		if c >= 0 {
			return shr(a, c)
		}
		return a << negCount(c)
	})
}

// negCount returns |c| for a negative count as an unsigned shift amount.
func negCount[S hwy.Integers](c S) uint64 {
	return absU64(int64(c))
}

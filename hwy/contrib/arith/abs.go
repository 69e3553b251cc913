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

func absLane[T hwy.Lanes](k laneKind) func(x T) T {
	switch {
	case k.float:
		return func(x T) T { return T(stdmath.Abs(float64(x))) }
	case k.signed:
		return func(x T) T {
			if x < 0 {
				return -x
			}
			return x
		}
	default:
		return func(x T) T { return x }
	}
}

// Abs returns |x|. The sign bit of float lanes is cleared, so Abs(-0) is +0
// and Abs(-NaN) is a positive NaN. For signed integer lanes Abs(Lowest)
// wraps back to Lowest; use AbsSaturated to get Highest instead.
func Abs[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	return map1(x, absLane[T](kindOf[T]()))
}

// AbsSaturated returns |x| with Abs(Lowest) mapped to Highest for signed
// integer lanes.
func AbsSaturated[T hwy.Lanes](x hwy.Vec[T]) hwy.Vec[T] {
	k := kindOf[T]()
	abs := absLane[T](k)
	if !k.signed || k.float {
		return map1(x, abs)
	}
	return map1(x, func(a T) T {
		if int64(a) == k.lo {
			return T(k.hi)
		}
		return abs(a)
	})
}

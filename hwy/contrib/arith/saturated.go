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
	"math/bits"

	"github.com/hwyarith/hwyarith/hwy"
)

// Saturating lane kernels. Integer lanes are widened to int64/uint64, the
// result is computed exactly when it fits and clamped to the lane range
// otherwise. Float lanes use plain IEEE arithmetic.

func satAdd[T hwy.Lanes](k laneKind) func(x, y T) T {
	switch {
	case k.float:
		return func(x, y T) T { return x + y }
	case k.signed:
		return func(x, y T) T {
			a, b := int64(x), int64(y)
			s := a + b
			if k.bits == 64 {
				if b > 0 && s < a {
					return T(k.hi)
				}
				if b < 0 && s > a {
					return T(k.lo)
				}
				return T(s)
			}
			return T(clampI64(s, k.lo, k.hi))
		}
	default:
		return func(x, y T) T {
			a, b := uint64(x), uint64(y)
			s := a + b
			if s < a || s > k.uhi {
				return T(k.uhi)
			}
			return T(s)
		}
	}
}

func satSub[T hwy.Lanes](k laneKind) func(x, y T) T {
	switch {
	case k.float:
		return func(x, y T) T { return x - y }
	case k.signed:
		return func(x, y T) T {
			a, b := int64(x), int64(y)
			s := a - b
			if k.bits == 64 {
				if b < 0 && s < a {
					return T(k.hi)
				}
				if b > 0 && s > a {
					return T(k.lo)
				}
				return T(s)
			}
			return T(clampI64(s, k.lo, k.hi))
		}
	default:
		return func(x, y T) T {
			if y > x {
				return 0
			}
			return x - y
		}
	}
}

func satMul[T hwy.Lanes](k laneKind) func(x, y T) T {
	switch {
	case k.float:
		return func(x, y T) T { return x * y }
	case k.signed:
		return func(x, y T) T {
			a, b := int64(x), int64(y)
			if k.bits < 64 {
				// |a|,|b| < 2^31 so the product fits.
				return T(clampI64(a*b, k.lo, k.hi))
			}
			hi, lo := bits.Mul64(absU64(a), absU64(b))
			negative := (a < 0) != (b < 0)
			switch {
			case hi == 0 && negative && lo <= uint64(1)<<63:
				return T(-int64(lo))
			case hi == 0 && !negative && lo < uint64(1)<<63:
				return T(int64(lo))
			case negative:
				return T(k.lo)
			default:
				return T(k.hi)
			}
		}
	default:
		return func(x, y T) T {
			hi, lo := bits.Mul64(uint64(x), uint64(y))
			if hi != 0 || lo > k.uhi {
				return T(k.uhi)
			}
			return T(lo)
		}
	}
}

// satNeg negates x; the most negative signed value maps to the most
// positive one. Unsigned lanes saturate at zero.
func satNeg[T hwy.Lanes](k laneKind) func(x T) T {
	switch {
	case k.float:
		return func(x T) T { return -x }
	case k.signed:
		return func(x T) T {
			if int64(x) == k.lo {
				return T(k.hi)
			}
			return -x
		}
	default:
		return func(x T) T { return 0 }
	}
}

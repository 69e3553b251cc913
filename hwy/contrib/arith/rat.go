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

const (
	// DefaultRatTolerance is the relative tolerance used by Rat.
	DefaultRatTolerance = 1e-6

	ratMaxIter = 64
)

// rat approximates x by n/d using the continued fraction expansion of x,
// stopping once |x - n/d| <= tol.
func rat(x, tol float64) (n, d float64) {
	switch {
	case stdmath.IsNaN(x):
		return 0, 0
	case stdmath.IsInf(x, 0):
		return stdmath.Copysign(1, x), 0
	case x == 0:
		return 0, 1
	}

	n, d = stdmath.RoundToEven(x), 1
	lastN, lastD := 1.0, 0.0
	frac := x - n
	for range ratMaxIter {
		if frac == 0 || stdmath.Abs(x-n/d) <= tol {
			break
		}
		flip := 1 / frac
		step := stdmath.RoundToEven(flip)
		nextN, nextD := n*step+lastN, d*step+lastD
		if stdmath.IsInf(nextN, 0) || stdmath.IsInf(nextD, 0) {
			break
		}
		frac = flip - step
		n, lastN = nextN, n
		d, lastD = nextD, d
	}
	if d < 0 {
		n, d = -n, -d
	}
	return n, d
}

// RatTol returns num and den such that num/den approximates x within tol
// per lane. ±Inf yields (±1, 0), NaN yields (0, 0), zero yields (0, 1) and
// den is never negative.
func RatTol[T hwy.Floats](x, tol hwy.Vec[T]) (num, den hwy.Vec[T]) {
	xData, tData := x.Data(), tol.Data()
	count := min(len(xData), len(tData))
	nums, dens := make([]T, count), make([]T, count)
	for i := range count {
		n, d := rat(float64(xData[i]), float64(tData[i]))
		nums[i], dens[i] = T(n), T(d)
	}
	return hwy.Load(nums), hwy.Load(dens)
}

// Rat is RatTol with a tolerance of DefaultRatTolerance·|x|.
func Rat[T hwy.Floats](x hwy.Vec[T]) (num, den hwy.Vec[T]) {
	tol := map1(x, func(a T) T { return T(DefaultRatTolerance * stdmath.Abs(float64(a))) })
	return RatTol(x, tol)
}

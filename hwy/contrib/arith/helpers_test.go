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

// Single-lane drivers. Vectors are loaded from one-element slices so the
// tests do not depend on the detected vector width.

func un[T hwy.Lanes](op func(hwy.Vec[T]) hwy.Vec[T], x T) T {
	return op(hwy.Load([]T{x})).Data()[0]
}

func bin[T hwy.Lanes](op func(x, y hwy.Vec[T]) hwy.Vec[T], x, y T) T {
	return op(hwy.Load([]T{x}), hwy.Load([]T{y})).Data()[0]
}

func tern[T hwy.Lanes](op func(x, y, z hwy.Vec[T]) hwy.Vec[T], x, y, z T) T {
	return op(hwy.Load([]T{x}), hwy.Load([]T{y}), hwy.Load([]T{z})).Data()[0]
}

// nary adapts a variadic operation to a slice of scalar operands.
func nary[T hwy.Lanes](op func(x, y hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Vec[T], args ...T) T {
	vecs := make([]hwy.Vec[T], len(args))
	for i, a := range args {
		vecs[i] = hwy.Load([]T{a})
	}
	return op(vecs[0], vecs[1], vecs[2:]...).Data()[0]
}

// sameFloat reports whether got equals want, treating NaNs as equal and
// distinguishing signed zeros.
func sameFloat(got, want float64) bool {
	switch {
	case stdmath.IsNaN(want):
		return stdmath.IsNaN(got)
	case want == 0:
		return got == 0 && stdmath.Signbit(got) == stdmath.Signbit(want)
	}
	return got == want
}

func near(got, want, tol float64) bool {
	if stdmath.IsNaN(want) || stdmath.IsInf(want, 0) {
		return sameFloat(got, want)
	}
	return stdmath.Abs(got-want) <= tol
}

var (
	nan    = stdmath.NaN()
	inf    = stdmath.Inf(1)
	negZ   = stdmath.Copysign(0, -1)
	maxF64 = stdmath.MaxFloat64
)

// Vec is the float64 vector used by the table-driven tests.
type Vec = hwy.Vec[float64]

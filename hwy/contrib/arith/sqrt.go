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

// Sqrt returns the square root of x. Negative lanes yield NaN, -0 yields -0.
func Sqrt[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Sqrt(x)
}

// Rsqrt returns 1 / Sqrt(x). ±0 yields ±Inf and +Inf yields +0.
func Rsqrt[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	return hwy.RSqrt(x)
}

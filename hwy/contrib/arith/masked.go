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

// If1 applies op to the lanes of x selected by mask. Other lanes keep x.
//
//	y := arith.If1(hwy.GreaterThan(x, zero), arith.Sqrt[float32], x)
func If1[T hwy.Lanes](mask hwy.Mask[T], op func(hwy.Vec[T]) hwy.Vec[T], x hwy.Vec[T]) hwy.Vec[T] {
	return hwy.IfThenElse(mask, op(x), x)
}

// If2 applies op(x, y) to the lanes selected by mask. Other lanes keep x.
func If2[T hwy.Lanes](mask hwy.Mask[T], op func(x, y hwy.Vec[T]) hwy.Vec[T], x, y hwy.Vec[T]) hwy.Vec[T] {
	return hwy.IfThenElse(mask, op(x, y), x)
}

// If3 applies op(x, y, z) to the lanes selected by mask. Other lanes keep x.
func If3[T hwy.Lanes](mask hwy.Mask[T], op func(x, y, z hwy.Vec[T]) hwy.Vec[T], x, y, z hwy.Vec[T]) hwy.Vec[T] {
	return hwy.IfThenElse(mask, op(x, y, z), x)
}

// IfElse1 applies op to the lanes of x selected by mask and takes the
// lanes of otherwise elsewhere.
func IfElse1[T hwy.Lanes](mask hwy.Mask[T], op func(hwy.Vec[T]) hwy.Vec[T], x, otherwise hwy.Vec[T]) hwy.Vec[T] {
	return hwy.IfThenElse(mask, op(x), otherwise)
}

// IfElse2 is IfElse1 for binary operations.
func IfElse2[T hwy.Lanes](mask hwy.Mask[T], op func(x, y hwy.Vec[T]) hwy.Vec[T], x, y, otherwise hwy.Vec[T]) hwy.Vec[T] {
	return hwy.IfThenElse(mask, op(x, y), otherwise)
}

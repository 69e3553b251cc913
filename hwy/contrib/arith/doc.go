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

// Package arith provides the core lane-wise arithmetic operations on
// hwy vectors: absolute values, min/max families, n-ary sums and products,
// rounding, remainders, sign manipulation, shifts and a few classic
// numerical kernels (agm, lerp, rat).
//
// # Conventions
//
// Every operation is total: integer division by zero, overflow and NaN
// operands all produce defined lane values instead of panicking.
//
//   - Integer arithmetic wraps by default. The *Saturated variants clamp to
//     [hwy.Lowest, hwy.Highest] instead.
//   - Min/max families come in three flavours selected by NaNPolicy:
//     Regular (x < y ? y : x, cheapest), Pedantic (NaN propagates from either
//     side, +0 > -0) and Numeric (a NaN operand is ignored).
//   - RoundingMode selects the direction used by Round, DivRound, RemRound
//     and RoundScale.
//   - If1, If2 and If3 apply an operation only on lanes selected by a mask,
//     leaving the other lanes equal to the first operand.
//
// # Bulk slices
//
// Unary, Binary and Ternary drive any vector operation over slices with a
// full-vector loop and a masked tail. ParallelUnary and ParallelBinary split
// the work across a workerpool.Pool.
//
// # Example
//
//	x := hwy.Load([]float32{-1.5, 2.5, 3, -0.25})
//	y := arith.Lerp(x, hwy.Set[float32](10), hwy.Set[float32](0.5))
//	r := arith.Round(x, arith.ToNearest)
package arith

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

package catalog

import (
	"github.com/hwyarith/hwyarith/hwy"
	"github.com/hwyarith/hwyarith/hwy/contrib/arith"
)

func unary(f func(Vec) Vec) kernel {
	return func(_ Options, in []Vec) []Vec { return []Vec{f(in[0])} }
}

func binary(f func(x, y Vec) Vec) kernel {
	return func(_ Options, in []Vec) []Vec { return []Vec{f(in[0], in[1])} }
}

func ternary(f func(x, y, z Vec) Vec) kernel {
	return func(_ Options, in []Vec) []Vec { return []Vec{f(in[0], in[1], in[2])} }
}

func nary(f func(x, y Vec, rest ...Vec) Vec) kernel {
	return func(_ Options, in []Vec) []Vec { return []Vec{f(in[0], in[1], in[2:]...)} }
}

func policy(f func(p arith.NaNPolicy, x, y Vec, rest ...Vec) Vec) kernel {
	return func(o Options, in []Vec) []Vec { return []Vec{f(o.Policy, in[0], in[1], in[2:]...)} }
}

func rounding(f func(x Vec, mode arith.RoundingMode) Vec) kernel {
	return func(o Options, in []Vec) []Vec { return []Vec{f(in[0], o.Mode)} }
}

// scaled evaluates f lane by lane because its scale is a scalar.
func scaled(f func(x Vec, scale int, mode arith.RoundingMode) Vec) kernel {
	return func(o Options, in []Vec) []Vec {
		x, s := in[0].Data(), in[1].Data()
		out := make([]float64, len(x))
		for i := range x {
			out[i] = f(hwy.Set(x[i]), int(s[i]), o.Mode).Lane(0)
		}
		return []Vec{hwy.Load(out)}
	}
}

// integer evaluates f on int64 lanes. float64 and int64 vectors have the
// same lane count.
func integer(f func(x, n hwy.Vec[int64]) hwy.Vec[int64]) kernel {
	toInt := func(v Vec) hwy.Vec[int64] {
		d := v.Data()
		out := make([]int64, len(d))
		for i, x := range d {
			out[i] = int64(x)
		}
		return hwy.Load(out)
	}
	return func(_ Options, in []Vec) []Vec {
		r := f(toInt(in[0]), toInt(in[1])).Data()
		out := make([]float64, len(r))
		for i, v := range r {
			out[i] = float64(v)
		}
		return []Vec{hwy.Load(out)}
	}
}

func average(_ Options, in []Vec) []Vec {
	if len(in) == 2 {
		return []Vec{arith.Average(in[0], in[1])}
	}
	return []Vec{arith.AverageN(in[0], in[1], in[2:]...)}
}

func div(o Options, in []Vec) []Vec {
	if !o.Rounded {
		return []Vec{arith.Div(in[0], in[1], in[2:]...)}
	}
	y := in[1]
	if len(in) > 2 {
		y = arith.Mul(in[1], in[2], in[3:]...)
	}
	return []Vec{arith.DivRound(in[0], y, o.Mode)}
}

func rem(o Options, in []Vec) []Vec {
	if o.Rounded {
		return []Vec{arith.RemRound(in[0], in[1], o.Mode)}
	}
	return []Vec{arith.Rem(in[0], in[1])}
}

func modf(_ Options, in []Vec) []Vec {
	frac, whole := arith.Modf(in[0])
	return []Vec{frac, whole}
}

func rat(o Options, in []Vec) []Vec {
	var num, den Vec
	if o.Tolerance > 0 {
		num, den = arith.RatTol(in[0], hwy.Set(o.Tolerance))
	} else {
		num, den = arith.Rat(in[0])
	}
	return []Vec{num, den}
}

func fn(symbol, goName, brief string, arity int, k kernel) *Binding {
	return &Binding{Symbol: symbol, GoName: goName, Brief: brief, Arity: arity, Outputs: 1, kernel: k}
}

func variadic(symbol, goName, brief string, k kernel) *Binding {
	b := fn(symbol, goName, brief, 2, k)
	b.Variadic = true
	return b
}

func withInts(b *Binding, args ...int) *Binding {
	b.IntArgs = args
	return b
}

func withOutputs(b *Binding, n int) *Binding {
	b.Outputs = n
	return b
}

var bindings = []*Binding{
	fn("eve::abs", "arith.Abs", "absolute value of the argument", 1, unary(arith.Abs[float64])),
	variadic("eve::absmax", "arith.AbsMaxOf", "absolute value of the maximal element", policy(arith.AbsMaxOf[float64])),
	variadic("eve::absmin", "arith.AbsMinOf", "absolute value of the minimal element", policy(arith.AbsMinOf[float64])),
	variadic("eve::add", "arith.Add", "sum of the arguments", nary(arith.Add[float64])),
	fn("eve::agm", "arith.Agm", "arithmetic-geometric mean of two values", 2, binary(arith.Agm[float64])),
	variadic("eve::average", "arith.AverageN", "arithmetic mean of the arguments, computed without overflow", average),
	fn("eve::ceil", "arith.Ceil", "smallest integral value not less than the argument", 1, unary(arith.Ceil[float64])),
	fn("eve::clamp", "arith.Clamp", "argument clamped to the interval [lo, hi]", 3, ternary(arith.Clamp[float64])),
	fn("eve::conj", "arith.Conj", "conjugate of the argument; identity on real values", 1, unary(arith.Conj[float64])),
	fn("eve::copysign", "arith.CopySign", "magnitude of the first argument with the sign of the second", 2, binary(arith.CopySign[float64])),
	fn("eve::dec", "arith.Dec", "argument minus one", 1, unary(arith.Dec[float64])),
	fn("eve::dist", "arith.Dist", "distance |x - y| between two values", 2, binary(arith.Dist[float64])),
	variadic("eve::div", "arith.Div", "first argument divided by the product of the others", div),
	fn("eve::fdim", "arith.Fdim", "positive difference max(x - y, 0)", 2, binary(arith.Fdim[float64])),
	fn("eve::floor", "arith.Floor", "largest integral value not greater than the argument", 1, unary(arith.Floor[float64])),
	fn("eve::fmod", "arith.Fmod", "remainder of x / y truncated toward zero, with the sign of x", 2, binary(arith.Fmod[float64])),
	fn("eve::frac", "arith.Frac", "fractional part of the argument, with its sign", 1, unary(arith.Frac[float64])),
	withInts(fn("eve::fracscale", "arith.FracScale", "x minus x rounded to scale binary fraction digits", 2, scaled(arith.FracScale[float64])), 1),
	fn("eve::inc", "arith.Inc", "argument plus one", 1, unary(arith.Inc[float64])),
	fn("eve::lerp", "arith.Lerp", "linear interpolation a + t(b - a) with a fused multiply-add", 3, ternary(arith.Lerp[float64])),
	variadic("eve::manhattan", "arith.Manhattan", "sum of the absolute values of the arguments", nary(arith.Manhattan[float64])),
	variadic("eve::max", "arith.MaxOf", "maximal element", policy(arith.MaxOf[float64])),
	variadic("eve::maxabs", "arith.MaxAbsOf", "maximum of the absolute values", policy(arith.MaxAbsOf[float64])),
	variadic("eve::maxmag", "arith.MaxMagOf", "argument of greatest magnitude, ties resolved by max", policy(arith.MaxMagOf[float64])),
	variadic("eve::min", "arith.MinOf", "minimal element", policy(arith.MinOf[float64])),
	variadic("eve::minabs", "arith.MinAbsOf", "minimum of the absolute values", policy(arith.MinAbsOf[float64])),
	variadic("eve::minmag", "arith.MinMagOf", "argument of least magnitude, ties resolved by min", policy(arith.MinMagOf[float64])),
	fn("eve::minus", "arith.Minus", "opposite of the argument", 1, unary(arith.Minus[float64])),
	withOutputs(fn("eve::modf", "arith.Modf", "fractional and integral parts of the argument", 1, modf), 2),
	variadic("eve::mul", "arith.Mul", "product of the arguments", nary(arith.Mul[float64])),
	fn("eve::nearest", "arith.Nearest", "nearest integral value, ties to even", 1, unary(arith.Nearest[float64])),
	variadic("eve::negabsmax", "arith.NegAbsMaxOf", "opposite of the absolute value of the maximal element", policy(arith.NegAbsMaxOf[float64])),
	variadic("eve::negabsmin", "arith.NegAbsMinOf", "opposite of the absolute value of the minimal element", policy(arith.NegAbsMinOf[float64])),
	fn("eve::negate", "arith.Negate", "x multiplied by the sign of y", 2, binary(arith.Negate[float64])),
	fn("eve::negatenz", "arith.NegateNZ", "x multiplied by the never-zero sign of y", 2, binary(arith.NegateNZ[float64])),
	variadic("eve::negmaxabs", "arith.NegMaxAbsOf", "opposite of the maximum of the absolute values", policy(arith.NegMaxAbsOf[float64])),
	variadic("eve::negminabs", "arith.NegMinAbsOf", "opposite of the minimum of the absolute values", policy(arith.NegMinAbsOf[float64])),
	fn("eve::oneminus", "arith.OneMinus", "one minus the argument", 1, unary(arith.OneMinus[float64])),
	fn("eve::plus", "arith.Plus", "the argument unchanged", 1, unary(arith.Plus[float64])),
	withOutputs(fn("eve::rat", "arith.Rat", "rational approximation num/den by continued fractions", 1, rat), 2),
	fn("eve::rec", "arith.Rec", "reciprocal 1/x", 1, unary(arith.Rec[float64])),
	fn("eve::rem", "arith.Rem", "remainder of x / y; rounded quotient when requested", 2, rem),
	fn("eve::round", "arith.Round", "argument rounded to an integral value in the selected mode", 1, rounding(arith.Round[float64])),
	withInts(fn("eve::roundscale", "arith.RoundScale", "argument rounded to scale binary fraction digits", 2, scaled(arith.RoundScale[float64])), 1),
	withInts(fn("eve::rshl", "arith.Rshl", "left shift by a signed count; negative counts shift right", 2, integer(arith.Rshl[int64, int64])), 0, 1),
	withInts(fn("eve::rshr", "arith.Rshr", "right shift by a signed count; negative counts shift left", 2, integer(arith.Rshr[int64, int64])), 0, 1),
	fn("eve::rsqrt", "arith.Rsqrt", "inverse of the square root", 1, unary(arith.Rsqrt[float64])),
	withInts(fn("eve::shl", "arith.Shl", "arithmetic left shift", 2, integer(arith.Shl[int64, int64])), 0, 1),
	withInts(fn("eve::shr", "arith.Shr", "arithmetic right shift", 2, integer(arith.Shr[int64, int64])), 0, 1),
	fn("eve::sign", "arith.Sign", "sign of the argument: -1, 0 or 1", 1, unary(arith.Sign[float64])),
	fn("eve::sign_alternate", "arith.SignAlternate", "(-1) raised to the integral argument", 1, unary(arith.SignAlternate[float64])),
	fn("eve::signnz", "arith.SignNZ", "never-zero sign of the argument: -1 or 1", 1, unary(arith.SignNZ[float64])),
	fn("eve::sqr", "arith.Sqr", "square of the argument", 1, unary(arith.Sqr[float64])),
	fn("eve::sqr_abs", "arith.SqrAbs", "square of the absolute value of the argument", 1, unary(arith.SqrAbs[float64])),
	fn("eve::sqrt", "arith.Sqrt", "square root of the argument", 1, unary(arith.Sqrt[float64])),
	variadic("eve::sub", "arith.Sub", "first argument minus the others", nary(arith.Sub[float64])),
	fn("eve::trunc", "arith.Trunc", "integral part of the argument, rounded toward zero", 1, unary(arith.Trunc[float64])),
}

var bindingIndex = func() map[string]*Binding {
	m := make(map[string]*Binding, len(bindings))
	for _, b := range bindings {
		m[b.Symbol] = b
	}
	return m
}()

// Bindings returns every binding in symbol order.
func Bindings() []*Binding {
	return bindings
}

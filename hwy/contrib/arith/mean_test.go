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
	"testing"

	"github.com/hwyarith/hwyarith/hwy"
)

func TestAverage(t *testing.T) {
	if got := bin(Average[int8], 127, 127); got != 127 {
		t.Errorf("Average(127, 127) = %d, want 127", got)
	}
	if got := bin(Average[int8], -128, -127); got != -128 {
		t.Errorf("Average(-128, -127) = %d, want -128", got)
	}
	if got := bin(Average[int32], 3, -4); got != -1 {
		t.Errorf("Average(3, -4) = %d, want -1", got)
	}
	if got := bin(Average[uint8], 255, 253); got != 254 {
		t.Errorf("Average(255, 253) = %d, want 254", got)
	}
	if got := bin(Average[uint64], stdmath.MaxUint64, stdmath.MaxUint64-2); got != stdmath.MaxUint64-1 {
		t.Errorf("Average(MaxUint64, MaxUint64-2) = %d", got)
	}
	if got := bin(Average[float64], 1, 2); got != 1.5 {
		t.Errorf("Average(1, 2) = %v, want 1.5", got)
	}
	if got := bin(Average[float64], maxF64, maxF64); got != maxF64 {
		t.Errorf("Average(Max, Max) = %v, want Max", got)
	}
}

func TestAverageN(t *testing.T) {
	if got := nary(AverageN[float64], 1, 2, 3, 6); got != 3 {
		t.Errorf("AverageN(1, 2, 3, 6) = %v, want 3", got)
	}
	if got := nary(AverageN[float32], 2, 4); got != 3 {
		t.Errorf("AverageN(2, 4) = %v, want 3", got)
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{1, 3, 0.5, 2},
		{1.1, 7.3, 0, 1.1},
		{1.1, 7.3, 1, 7.3},
		{-2, 2, 0.25, -1},
	}

	for _, tt := range tests {
		if got := tern(Lerp[float64], tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestAgm(t *testing.T) {
	const agm12 = 1.4567910310469068

	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"agm(1, 2)", 1, 2, agm12},
		{"agm(-1, -2)", -1, -2, -agm12},
		{"agm(x, x)", 5, 5, 5},
		{"zero", 0, 5, 0},
		{"opposite signs", -1, 2, nan},
		{"NaN", nan, 1, nan},
		{"Inf", inf, 1, inf},
		{"-Inf", -inf, -1, -inf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bin(Agm[float64], tt.a, tt.b); !near(got, tt.want, 1e-12) {
				t.Errorf("Agm(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}

	got := bin(Agm[float32], 1, 2)
	if stdmath.Abs(float64(got)-agm12) > 1e-6 {
		t.Errorf("Agm[float32](1, 2) = %v, want %v", got, agm12)
	}
}

func TestManhattan(t *testing.T) {
	if got := nary(Manhattan[float64], -1, 2, -3); got != 6 {
		t.Errorf("Manhattan(-1, 2, -3) = %v, want 6", got)
	}
	if got := nary(Manhattan[int32], -1, 2, -3); got != 6 {
		t.Errorf("Manhattan[int32](-1, 2, -3) = %d, want 6", got)
	}
	if got := nary(Manhattan[float64], nan, inf); !stdmath.IsNaN(got) {
		t.Errorf("Manhattan(NaN, Inf) = %v, want NaN", got)
	}
	if got := nary(ManhattanPedantic[float64], nan, -inf); got != inf {
		t.Errorf("ManhattanPedantic(NaN, -Inf) = %v, want +Inf", got)
	}
	if got := nary(ManhattanPedantic[float64], 1, 2, nan); !stdmath.IsNaN(got) {
		t.Errorf("ManhattanPedantic(1, 2, NaN) = %v, want NaN", got)
	}
}

func TestRat(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		num, den float64
	}{
		{"three quarters", 0.75, 3, 4},
		{"negative", -0.75, -3, 4},
		{"half", 0.5, 1, 2},
		{"integer", 2, 2, 1},
		{"pi", stdmath.Pi, 355, 113},
		{"zero", 0, 0, 1},
		{"+Inf", inf, 1, 0},
		{"-Inf", -inf, -1, 0},
		{"NaN", nan, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			num, den := Rat(hwy.Load([]float64{tt.x}))
			if n, d := num.Data()[0], den.Data()[0]; n != tt.num || d != tt.den {
				t.Errorf("Rat(%v) = %v/%v, want %v/%v", tt.x, n, d, tt.num, tt.den)
			}
		})
	}
}

func TestRatTol(t *testing.T) {
	num, den := RatTol(hwy.Load([]float64{stdmath.Pi}), hwy.Load([]float64{0.01}))
	if n, d := num.Data()[0], den.Data()[0]; n != 22 || d != 7 {
		t.Errorf("RatTol(pi, 0.01) = %v/%v, want 22/7", n, d)
	}
}

func TestSqrtRsqrt(t *testing.T) {
	if got := un(Sqrt[float64], 9); got != 3 {
		t.Errorf("Sqrt(9) = %v, want 3", got)
	}
	if got := un(Sqrt[float64], -1); !stdmath.IsNaN(got) {
		t.Errorf("Sqrt(-1) = %v, want NaN", got)
	}
	if got := un(Rsqrt[float32], 4); got != 0.5 {
		t.Errorf("Rsqrt(4) = %v, want 0.5", got)
	}
	if got := un(Rsqrt[float64], 0); got != inf {
		t.Errorf("Rsqrt(0) = %v, want +Inf", got)
	}
}

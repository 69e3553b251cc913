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
	"testing"

	"github.com/hwyarith/hwyarith/hwy"
)

func TestSign(t *testing.T) {
	tests := []struct {
		x, sign, signNZ float64
	}{
		{-3, -1, -1},
		{5, 1, 1},
		{0, 0, 1},
		{negZ, negZ, -1},
		{nan, nan, nan},
		{-inf, -1, -1},
	}

	for _, tt := range tests {
		if got := un(Sign[float64], tt.x); !sameFloat(got, tt.sign) {
			t.Errorf("Sign(%v) = %v, want %v", tt.x, got, tt.sign)
		}
		if got := un(SignNZ[float64], tt.x); !sameFloat(got, tt.signNZ) {
			t.Errorf("SignNZ(%v) = %v, want %v", tt.x, got, tt.signNZ)
		}
	}

	if got := un(Sign[int8], -5); got != -1 {
		t.Errorf("Sign(int8 -5) = %d, want -1", got)
	}
	if got := un(Sign[uint8], 0); got != 0 {
		t.Errorf("Sign(uint8 0) = %d, want 0", got)
	}
	if got := un(SignNZ[int16], 0); got != 1 {
		t.Errorf("SignNZ(int16 0) = %d, want 1", got)
	}
}

func TestSignAlternate(t *testing.T) {
	floats := []struct {
		n, want float64
	}{
		{3, -1},
		{4, 1},
		{-3, -1},
		{0, 1},
		{2.5, nan},
		{inf, nan},
		{nan, nan},
	}
	for _, tt := range floats {
		if got := un(SignAlternate[float64], tt.n); !sameFloat(got, tt.want) {
			t.Errorf("SignAlternate(%v) = %v, want %v", tt.n, got, tt.want)
		}
	}

	if got := un(SignAlternate[int32], -3); got != -1 {
		t.Errorf("SignAlternate(int32 -3) = %d, want -1", got)
	}
	if got := un(SignAlternate[int64], 10); got != 1 {
		t.Errorf("SignAlternate(int64 10) = %d, want 1", got)
	}
}

func TestCopySign(t *testing.T) {
	if got := bin(CopySign[float64], 3, negZ); got != -3 {
		t.Errorf("CopySign(3, -0) = %v, want -3", got)
	}
	if got := bin(CopySign[float32], -2, 1); got != 2 {
		t.Errorf("CopySign(-2, 1) = %v, want 2", got)
	}
	if got := bin(CopySign[int8], -5, 2); got != 5 {
		t.Errorf("CopySign(-5, 2) = %d, want 5", got)
	}
	if got := bin(CopySign[int8], 5, -1); got != -5 {
		t.Errorf("CopySign(5, -1) = %d, want -5", got)
	}
}

func TestNegate(t *testing.T) {
	tests := []struct {
		name string
		op   func(x, y Vec) Vec
		x, y float64
		want float64
	}{
		{"negate negative", Negate[float64], 3, -2, -3},
		{"negate positive", Negate[float64], 3, 2, 3},
		{"negate zero", Negate[float64], 3, 0, 0},
		{"negatenz negative zero", NegateNZ[float64], 3, negZ, -3},
		{"negatenz positive zero", NegateNZ[float64], 3, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bin(tt.op, tt.x, tt.y); !sameFloat(got, tt.want) {
				t.Errorf("op(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestShifts(t *testing.T) {
	shift := func(op func(hwy.Vec[int8], hwy.Vec[int8]) hwy.Vec[int8], x, n int8) int8 {
		return op(hwy.Load([]int8{x}), hwy.Load([]int8{n})).Data()[0]
	}

	tests := []struct {
		name string
		op   func(hwy.Vec[int8], hwy.Vec[int8]) hwy.Vec[int8]
		x, n int8
		want int8
	}{
		{"shl", Shl[int8, int8], 1, 3, 8},
		{"shl out of range", Shl[int8, int8], 1, 8, 0},
		{"shl negative count", Shl[int8, int8], 1, -1, 0},
		{"shr arithmetic", Shr[int8, int8], -16, 2, -4},
		{"shr out of range negative", Shr[int8, int8], -16, 8, -1},
		{"shr out of range positive", Shr[int8, int8], 16, 9, 0},
		{"shr negative count", Shr[int8, int8], -16, -2, -1},
		{"rshl left", Rshl[int8, int8], 8, 2, 32},
		{"rshl right", Rshl[int8, int8], 8, -2, 2},
		{"rshr right", Rshr[int8, int8], -8, 1, -4},
		{"rshr left", Rshr[int8, int8], 8, -2, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shift(tt.op, tt.x, tt.n); got != tt.want {
				t.Errorf("op(%d, %d) = %d, want %d", tt.x, tt.n, got, tt.want)
			}
		})
	}
}

func TestShifts_MixedTypes(t *testing.T) {
	x := hwy.Load([]uint32{0x80000000, 1})
	n := hwy.Load([]int64{31, 40})
	got := Shr(x, n).Data()
	if got[0] != 1 || got[1] != 0 {
		t.Errorf("Shr = %v, want [1 0]", got)
	}
	got = Shl(hwy.Load([]uint32{1, 1}), hwy.Load([]int64{31, 32})).Data()
	if got[0] != 0x80000000 || got[1] != 0 {
		t.Errorf("Shl = %v, want [2147483648 0]", got)
	}
}

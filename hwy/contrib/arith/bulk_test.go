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
	"fmt"
	"testing"

	"github.com/hwyarith/hwyarith/hwy"
	"github.com/hwyarith/hwyarith/hwy/contrib/workerpool"
)

func TestMasked(t *testing.T) {
	mask := hwy.MaskFromBools[float64]([]bool{true, false})
	x := hwy.Load([]float64{4, 9})
	y := hwy.Load([]float64{10, 20})
	alt := hwy.Load([]float64{-1, -1})

	tests := []struct {
		name string
		got  Vec
		want []float64
	}{
		{"If1", If1(mask, Sqrt[float64], x), []float64{2, 9}},
		{"If2", If2(mask, Fdim[float64], y, x), []float64{6, 20}},
		{"If3", If3(mask, Clamp[float64], y, x, hwy.Set[float64](9)), []float64{9, 20}},
		{"IfElse1", IfElse1(mask, Sqrt[float64], x, alt), []float64{2, -1}},
		{"IfElse2", IfElse2(mask, Fdim[float64], y, x, alt), []float64{6, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.got.Data()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lanes, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("lane %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestUnary_Tail(t *testing.T) {
	for _, n := range []int{0, 1, 7, 16, 37, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			src := make([]float32, n)
			for i := range src {
				src[i] = float32(i) - 20.5
			}
			dst := make([]float32, n)
			Unary(dst, src, Abs[float32])

			for i := range src {
				want := un(Abs[float32], src[i])
				if dst[i] != want {
					t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
				}
			}
		})
	}
}

func TestBinaryTernary(t *testing.T) {
	n := 29
	a, b, c := make([]int16, n), make([]int16, n), make([]int16, n)
	for i := range n {
		a[i] = int16(i * 1000)
		b[i] = int16(30000 - i*7)
		c[i] = int16(i)
	}

	sum := make([]int16, n)
	Binary(sum, a, b, func(x, y hwy.Vec[int16]) hwy.Vec[int16] { return AddSaturated(x, y) })
	clamped := make([]int16, n)
	Ternary(clamped, a, c, b, Clamp[int16])

	for i := range n {
		if want := nary(AddSaturated[int16], a[i], b[i]); sum[i] != want {
			t.Errorf("sum[%d] = %d, want %d", i, sum[i], want)
		}
		if want := tern(Clamp[int16], a[i], c[i], b[i]); clamped[i] != want {
			t.Errorf("clamped[%d] = %d, want %d", i, clamped[i], want)
		}
	}
}

func TestParallel(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	n := 1003
	src := make([]int32, n)
	for i := range src {
		src[i] = int32(i) - 500
	}

	dst := make([]int32, n)
	ParallelUnary(pool, dst, src, Minus[int32])
	for i := range n {
		if dst[i] != -src[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], -src[i])
		}
	}

	ParallelBinary(pool, dst, src, src, func(x, y hwy.Vec[int32]) hwy.Vec[int32] { return Mul(x, y) })
	for i := range n {
		if dst[i] != src[i]*src[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], src[i]*src[i])
		}
	}
}

func TestVecmathKernels(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 2, 2, 2, 0.5}
	dst := make([]float64, len(a))

	MulTo(dst, a, b)
	want := []float64{2, 4, 6, 8, 2.5}
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("MulTo[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	MulInPlace(dst, b)
	if dst[4] != 1.25 {
		t.Errorf("MulInPlace[4] = %v, want 1.25", dst[4])
	}

	f32 := make([]float32, 3)
	SqrTo(f32, []float32{-1, 2, 3})
	if f32[0] != 1 || f32[1] != 4 || f32[2] != 9 {
		t.Errorf("SqrTo = %v, want [1 4 9]", f32)
	}

	out := make([]float64, 1)
	HypotTo(out, []float64{3}, []float64{4})
	if out[0] != 5 {
		t.Errorf("HypotTo(3, 4) = %v, want 5", out[0])
	}
	SqrSumTo(out, []float64{3}, []float64{4})
	if out[0] != 25 {
		t.Errorf("SqrSumTo(3, 4) = %v, want 25", out[0])
	}
}

func BenchmarkUnaryAbs(b *testing.B) {
	src := make([]float32, 4096)
	dst := make([]float32, len(src))
	for i := range src {
		src[i] = float32(i) - 2048
	}
	b.SetBytes(int64(len(src) * 4))
	b.ResetTimer()
	for range b.N {
		Unary(dst, src, Abs[float32])
	}
}

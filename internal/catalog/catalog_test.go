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
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hwyarith/hwyarith/hwy/contrib/arith"
	"github.com/hwyarith/hwyarith/hwy/contrib/workerpool"
	"github.com/hwyarith/hwyarith/internal/navtree"
)

func TestEveryEntryIsBound(t *testing.T) {
	table, err := Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if table.Len() != 57 {
		t.Fatalf("table has %d entries, want 57", table.Len())
	}

	var bound []string
	for _, b := range Bindings() {
		bound = append(bound, b.Symbol)
	}
	if diff := cmp.Diff(table.Symbols(), bound); diff != "" {
		t.Errorf("bindings differ from table symbols (-table +bindings):\n%s", diff)
	}

	fns, err := All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	for _, f := range fns {
		if f.Binding == nil || f.Binding.Symbol != f.Symbol() {
			t.Errorf("%s bound to %+v", f.Symbol(), f.Binding)
		}
	}
	if findings := navtree.Validate(table); len(findings) != 0 {
		t.Errorf("embedded table findings: %v", findings)
	}
}

func TestEveryBindingEvaluates(t *testing.T) {
	for _, b := range Bindings() {
		t.Run(b.Symbol, func(t *testing.T) {
			args := make([][]float64, b.Arity)
			for i := range args {
				args[i] = []float64{3, 2, -1, 8, 5}
			}
			outs, err := b.Eval(args...)
			if err != nil {
				t.Fatalf("Eval: %v", err)
			}
			if len(outs) != b.Outputs {
				t.Fatalf("got %d outputs, want %d", len(outs), b.Outputs)
			}
			for _, out := range outs {
				if len(out) != 5 {
					t.Errorf("output has %d values, want 5", len(out))
				}
			}
		})
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		args [][]float64
		want [][]float64
	}{
		{"add", [][]float64{{1, 2}, {3, 4}}, [][]float64{{4, 6}}},
		{"eve::add", [][]float64{{1, 2, 3}, {10}}, [][]float64{{11, 12, 13}}},
		{"sub", [][]float64{{10}, {1}, {2}}, [][]float64{{7}}},
		{"clamp", [][]float64{{10, -3, 2}, {0}, {5}}, [][]float64{{5, 0, 2}}},
		{"div", [][]float64{{7}, {2}}, [][]float64{{3.5}}},
		{"rem", [][]float64{{7, -7}, {2}}, [][]float64{{1, -1}}},
		{"average", [][]float64{{1}, {3}}, [][]float64{{2}}},
		{"average", [][]float64{{1}, {2}, {6}}, [][]float64{{3}}},
		{"modf", [][]float64{{2.5, -1.25}}, [][]float64{{0.5, -0.25}, {2, -1}}},
		{"rat", [][]float64{{math.Pi, 0.75}}, [][]float64{{355, 3}, {113, 4}}},
		{"shl", [][]float64{{1, 3}, {3, 1}}, [][]float64{{8, 6}}},
		{"shr", [][]float64{{-16}, {2}}, [][]float64{{-4}}},
		{"rshl", [][]float64{{16}, {-2}}, [][]float64{{4}}},
		{"roundscale", [][]float64{{1.3}, {1}}, [][]float64{{1.5}}},
		{"sign_alternate", [][]float64{{0, 1, 2}}, [][]float64{{1, -1, 1}}},
		{"manhattan", [][]float64{{-1}, {2}, {-3}}, [][]float64{{6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.name, tt.args...)
			if err != nil {
				t.Fatalf("Eval: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Eval(%s) mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestEvaluator_Options(t *testing.T) {
	ctx := context.Background()
	lookup := func(name string) *Binding {
		f, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", name, err)
		}
		return f.Binding
	}

	tests := []struct {
		name string
		opts Options
		args [][]float64
		want []float64
	}{
		{"div", Options{Rounded: true}, [][]float64{{7, 5}, {2}}, []float64{4, 2}},
		{"div", Options{Rounded: true, Mode: arith.Downward}, [][]float64{{7, -7}, {2}}, []float64{3, -4}},
		{"rem", Options{Rounded: true}, [][]float64{{7}, {2}}, []float64{-1}},
		{"round", Options{Mode: arith.Upward}, [][]float64{{1.1, -1.9}}, []float64{2, -1}},
		{"max", Options{}, [][]float64{{1}, {3}, {2}}, []float64{3}},
		{"max", Options{Policy: arith.Numeric}, [][]float64{{math.NaN()}, {1}}, []float64{1}},
		{"min", Options{Policy: arith.Numeric}, [][]float64{{1}, {math.NaN()}}, []float64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluator{Options: tt.opts}.Eval(ctx, lookup(tt.name), tt.args...)
			if err != nil {
				t.Fatalf("Eval: %v", err)
			}
			if diff := cmp.Diff(tt.want, got[0]); diff != "" {
				t.Errorf("Eval(%s, %+v) mismatch (-want +got):\n%s", tt.name, tt.opts, diff)
			}
		})
	}

	got, err := Evaluator{Options: Options{Tolerance: 0.01}}.Eval(ctx, lookup("rat"), []float64{math.Pi})
	if err != nil {
		t.Fatalf("Eval(rat): %v", err)
	}
	if got[0][0] != 22 || got[1][0] != 7 {
		t.Errorf("rat(pi, 0.01) = %v/%v, want 22/7", got[0][0], got[1][0])
	}
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		name string
		fn   string
		args [][]float64
		want error
	}{
		{"unknown", "eve::nope", nil, navtree.ErrNotFound},
		{"too many", "abs", [][]float64{{1}, {2}}, ErrArity},
		{"too few", "add", [][]float64{{1}}, ErrArity},
		{"length", "add", [][]float64{{1, 2}, {1, 2, 3}}, ErrLength},
		{"fractional shift", "shl", [][]float64{{1.5}, {1}}, ErrDomain},
		{"NaN count", "shr", [][]float64{{1}, {math.NaN()}}, ErrDomain},
		{"fractional scale", "roundscale", [][]float64{{1}, {0.5}}, ErrDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Eval(tt.fn, tt.args...); !errors.Is(err, tt.want) {
				t.Errorf("Eval error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEvaluator_Parallel(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	n := 1001
	x, y := make([]float64, n), make([]float64, n)
	for i := range n {
		x[i] = float64(i) * 0.5
		y[i] = float64(n - i)
	}

	f, err := Lookup("fdim")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	serial, err := f.Binding.Eval(x, y)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	parallel, err := Evaluator{Pool: pool, ParallelThreshold: 1}.Eval(context.Background(), f.Binding, x, y)
	if err != nil {
		t.Fatalf("parallel Eval: %v", err)
	}
	if diff := cmp.Diff(serial, parallel); diff != "" {
		t.Errorf("parallel result differs (-serial +parallel):\n%s", diff)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Evaluator{Pool: pool}).Eval(ctx, f.Binding, x, y); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled Eval error = %v, want context.Canceled", err)
	}
}

func TestLookup(t *testing.T) {
	short, err := Lookup("lerp")
	if err != nil {
		t.Fatalf("Lookup(lerp): %v", err)
	}
	full, err := Lookup("eve::lerp")
	if err != nil {
		t.Fatalf("Lookup(eve::lerp): %v", err)
	}
	if short.Binding != full.Binding || short.Binding.GoName != "arith.Lerp" {
		t.Errorf("Lookup(lerp) = %+v, Lookup(eve::lerp) = %+v", short, full)
	}
	if got := full.Binding.Signature(); got != "lerp(x, y, z)" {
		t.Errorf("Signature = %q", got)
	}

	add, _ := Lookup("add")
	if got := add.Binding.Signature(); got != "add(x, y, ...)" {
		t.Errorf("Signature = %q", got)
	}
}

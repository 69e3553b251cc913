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
	"fmt"
	"math"

	"github.com/hwyarith/hwyarith/hwy"
	"github.com/hwyarith/hwyarith/hwy/contrib/arith"
	"github.com/hwyarith/hwyarith/hwy/contrib/workerpool"
	"github.com/hwyarith/hwyarith/internal/navtree"
)

// Vec is the lane type every binding evaluates on.
type Vec = hwy.Vec[float64]

// Options tune the functions that have rounding, NaN or tolerance variants.
// The zero value selects the default behavior of every function.
type Options struct {
	// Mode is the rounding direction of round, roundscale and fracscale,
	// and of div and rem when Rounded is set.
	Mode arith.RoundingMode

	// Rounded makes div and rem round their quotient with Mode.
	Rounded bool

	// Policy selects NaN handling for the min/max families.
	Policy arith.NaNPolicy

	// Tolerance is the absolute tolerance of rat. Zero means relative 1e-6.
	Tolerance float64
}

type kernel func(o Options, in []Vec) []Vec

// Binding describes how a documented symbol is evaluated.
type Binding struct {
	Symbol string
	// GoName is the implementing function, e.g. "arith.Abs".
	GoName string
	Brief  string
	// Arity is the minimum number of arguments.
	Arity    int
	Variadic bool
	// Outputs is the number of result columns (2 for modf and rat).
	Outputs int
	// IntArgs lists the argument positions that must hold integers.
	IntArgs []int

	kernel kernel
}

// Signature renders the call shape, e.g. "add(x, y, ...)".
func (b *Binding) Signature() string {
	name := navtree.ShortName(b.Symbol)
	params := []string{"x", "y", "z"}
	sig := name + "("
	for i := range b.Arity {
		if i > 0 {
			sig += ", "
		}
		if i < len(params) {
			sig += params[i]
		} else {
			sig += fmt.Sprintf("x%d", i)
		}
	}
	if b.Variadic {
		sig += ", ..."
	}
	return sig + ")"
}

// Eval is Evaluator{}.Eval without cancellation.
func (b *Binding) Eval(args ...[]float64) ([][]float64, error) {
	return Evaluator{}.Eval(context.Background(), b, args...)
}

// Evaluator runs bindings over float64 columns. Arguments of length 1 are
// broadcast against the others.
type Evaluator struct {
	Options Options

	// Pool, when set, splits inputs of at least ParallelThreshold elements
	// across its workers.
	Pool *workerpool.Pool

	// ParallelThreshold defaults to 4096 elements.
	ParallelThreshold int
}

const defaultParallelThreshold = 4096

// Eval evaluates b element-wise and returns b.Outputs result columns.
func (e Evaluator) Eval(ctx context.Context, b *Binding, args ...[]float64) ([][]float64, error) {
	n, err := b.check(args)
	if err != nil {
		return nil, err
	}
	args = broadcast(args, n)

	outs := make([][]float64, b.Outputs)
	for i := range outs {
		outs[i] = make([]float64, n)
	}

	lanes := hwy.MaxLanes[float64]()
	body := func(start, end int) {
		in := make([]Vec, len(args))
		for off := start; off < end; off += lanes {
			count := min(lanes, end-off)
			mask := hwy.TailMask[float64](count)
			for i, a := range args {
				in[i] = hwy.MaskLoad(mask, a[off:off+count])
			}
			res := b.kernel(e.Options, in)
			for j, out := range outs {
				hwy.MaskStore(mask, res[j], out[off:off+count])
			}
		}
	}

	threshold := e.ParallelThreshold
	if threshold <= 0 {
		threshold = defaultParallelThreshold
	}
	if e.Pool == nil || n < threshold {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		body(0, n)
		return outs, nil
	}
	if err := e.Pool.ParallelForContext(ctx, n, lanes, body); err != nil {
		return nil, err
	}
	return outs, nil
}

// check validates args against b and returns the evaluation length.
func (b *Binding) check(args [][]float64) (int, error) {
	if len(args) < b.Arity || (!b.Variadic && len(args) > b.Arity) {
		want := fmt.Sprint(b.Arity)
		if b.Variadic {
			want = fmt.Sprintf("at least %d", b.Arity)
		}
		return 0, fmt.Errorf("%w: %s takes %s, got %d", ErrArity, b.Symbol, want, len(args))
	}

	n := 1
	for _, a := range args {
		if len(a) != 1 {
			n = len(a)
			break
		}
	}
	for i, a := range args {
		if len(a) != n && len(a) != 1 {
			return 0, fmt.Errorf("%w: %s argument %d has %d values, want %d", ErrLength, b.Symbol, i, len(a), n)
		}
	}

	for _, i := range b.IntArgs {
		for _, v := range args[i] {
			if v != math.Trunc(v) || math.Abs(v) >= 1<<63 {
				return 0, fmt.Errorf("%w: %s argument %d must be an integer, got %v", ErrDomain, b.Symbol, i, v)
			}
		}
	}
	return n, nil
}

func broadcast(args [][]float64, n int) [][]float64 {
	out := make([][]float64, len(args))
	for i, a := range args {
		if len(a) == n {
			out[i] = a
			continue
		}
		wide := make([]float64, n)
		for j := range wide {
			wide[j] = a[0]
		}
		out[i] = wide
	}
	return out
}

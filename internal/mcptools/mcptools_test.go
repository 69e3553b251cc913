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

package mcptools

import (
	"context"
	"math"
	"sort"
	"strconv"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwyarith/hwyarith/internal/catalog"
	"github.com/hwyarith/hwyarith/internal/docsearch"
	"github.com/hwyarith/hwyarith/internal/navtree"
)

const baseURL = "https://jfalcou.github.io/eve/"

func newTools(t *testing.T) *Tools {
	t.Helper()
	s, err := docsearch.Open(docsearch.Options{BaseURL: baseURL})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return New(s, catalog.Evaluator{}, baseURL)
}

func TestLookupSymbol(t *testing.T) {
	tools := newTools(t)

	_, out, err := tools.LookupSymbol(context.Background(), nil, LookupSymbolInput{Symbol: "fmod"})
	require.NoError(t, err)
	assert.Equal(t, "eve::fmod", out.Symbol)
	assert.Equal(t, "arith.Fmod", out.GoName)
	assert.Equal(t, "fmod(x, y)", out.Signature)
	assert.Equal(t, baseURL+"group__core__arithmetic.html#ga5dbda88b3cab20b719e316ecfc301b0e", out.URL)
	assert.Equal(t, 2, out.Arity)
	assert.Equal(t, 1, out.Outputs)

	_, _, err = tools.LookupSymbol(context.Background(), nil, LookupSymbolInput{Symbol: "eve::fma"})
	assert.ErrorIs(t, err, navtree.ErrNotFound)
}

func TestSearchDocs(t *testing.T) {
	tools := newTools(t)

	_, out, err := tools.SearchDocs(context.Background(), nil, SearchDocsInput{Query: "reciprocal", MaxResults: 3})
	require.NoError(t, err)
	require.NotEmpty(t, out.Results)
	assert.Equal(t, "eve::rec", out.Results[0].Document.Symbol)
	assert.GreaterOrEqual(t, out.TotalHits, 1)

	_, _, err = New(nil, catalog.Evaluator{}, "").SearchDocs(context.Background(), nil, SearchDocsInput{Query: "abs"})
	assert.Error(t, err)
}

func TestEvaluate(t *testing.T) {
	tools := newTools(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input EvaluateInput
		want  [][]string
	}{
		{
			name:  "broadcast",
			input: EvaluateInput{Function: "clamp", Args: [][]string{{"-3", "2", "9"}, {"0"}, {"5"}}},
			want:  [][]string{{"0", "2", "5"}},
		},
		{
			name:  "non-finite",
			input: EvaluateInput{Function: "eve::rec", Args: [][]string{{"0", "-0", "Inf", "NaN"}}},
			want:  [][]string{{"+Inf", "-Inf", "0", "NaN"}},
		},
		{
			name:  "rounding",
			input: EvaluateInput{Function: "div", Args: [][]string{{"7"}, {"2"}}, Rounded: true, Rounding: "toward_zero"},
			want:  [][]string{{"3"}},
		},
		{
			name:  "nan policy",
			input: EvaluateInput{Function: "max", Args: [][]string{{"NaN"}, {"1"}}, NaNPolicy: "pedantic"},
			want:  [][]string{{"NaN"}},
		},
		{
			name:  "two outputs",
			input: EvaluateInput{Function: "rat", Args: [][]string{{"3.14159265358979"}}, Tolerance: 0.01},
			want:  [][]string{{"22"}, {"7"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := tools.Evaluate(ctx, nil, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Results)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tools := newTools(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input EvaluateInput
		want  error
	}{
		{"unknown function", EvaluateInput{Function: "fma"}, navtree.ErrNotFound},
		{"arity", EvaluateInput{Function: "abs", Args: [][]string{{"1"}, {"2"}}}, catalog.ErrArity},
		{"domain", EvaluateInput{Function: "shl", Args: [][]string{{"1"}, {"0.5"}}}, catalog.ErrDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tools.Evaluate(ctx, nil, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, _, err := tools.Evaluate(ctx, nil, EvaluateInput{Function: "abs", Args: [][]string{{"one"}}})
	assert.Error(t, err)
	_, _, err = tools.Evaluate(ctx, nil, EvaluateInput{Function: "round", Args: [][]string{{"1"}}, Rounding: "sideways"})
	assert.Error(t, err)
	_, _, err = tools.Evaluate(ctx, nil, EvaluateInput{Function: "min", Args: [][]string{{"1"}, {"2"}}, NaNPolicy: "lenient"})
	assert.Error(t, err)
}

func TestParseArgs(t *testing.T) {
	args, err := ParseArgs([][]string{{"1.5", "-inf"}, {"1e3"}})
	require.NoError(t, err)
	assert.Equal(t, 1.5, args[0][0])
	assert.True(t, math.IsInf(args[0][1], -1))
	assert.Equal(t, 1000.0, args[1][0])

	_, err = ParseArgs([][]string{{"x"}})
	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	server := mcp.NewServer(&mcp.Implementation{Name: "arithdoc-test", Version: "v0.0.0"}, nil)
	newTools(t).Register(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	res, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	require.NoError(t, err)
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"evaluate", "lookup_symbol", "search_arithmetic_docs"}, names)
}

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

// Package mcptools exposes the arithmetic catalog as Model Context Protocol
// tools: symbol lookup, documentation search and evaluation.
package mcptools

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hwyarith/hwyarith/hwy/contrib/arith"
	"github.com/hwyarith/hwyarith/internal/catalog"
	"github.com/hwyarith/hwyarith/internal/docsearch"
)

// Tools holds the state shared by the tool handlers.
type Tools struct {
	searcher  *docsearch.Searcher
	evaluator catalog.Evaluator
	baseURL   string
}

// New returns the tool set. searcher may be nil, in which case
// search_arithmetic_docs reports that search is unavailable.
func New(searcher *docsearch.Searcher, evaluator catalog.Evaluator, baseURL string) *Tools {
	return &Tools{searcher: searcher, evaluator: evaluator, baseURL: baseURL}
}

// Register adds every tool to server.
func (t *Tools) Register(server *mcp.Server) {
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "lookup_symbol",
			Description: "Look up a core arithmetic symbol (\"eve::clamp\" or \"clamp\") and return its documentation link, Go implementation and call signature.",
		},
		t.LookupSymbol,
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "search_arithmetic_docs",
			Description: "Full-text search over the core arithmetic functions by name, description or Go name.",
		},
		t.SearchDocs,
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "evaluate",
			Description: "Evaluate a core arithmetic function element-wise on float64 inputs. Single-value arguments broadcast.",
		},
		t.Evaluate,
	)

	log.Printf("mcptools: registered 3 tools")
}

// LookupSymbolInput defines input for lookup_symbol.
type LookupSymbolInput struct {
	Symbol string `json:"symbol" jsonschema:"Fully qualified (eve::abs) or short (abs) symbol name"`
}

// LookupSymbolOutput defines output for lookup_symbol.
type LookupSymbolOutput struct {
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Anchor    string `json:"anchor"`
	URL       string `json:"url,omitempty"`
	GoName    string `json:"go_name"`
	Signature string `json:"signature"`
	Brief     string `json:"brief"`
	Arity     int    `json:"arity"`
	Variadic  bool   `json:"variadic"`
	Outputs   int    `json:"outputs"`
}

// LookupSymbol implements lookup_symbol.
func (t *Tools) LookupSymbol(ctx context.Context, req *mcp.CallToolRequest, input LookupSymbolInput) (*mcp.CallToolResult, LookupSymbolOutput, error) {
	f, err := catalog.Lookup(input.Symbol)
	if err != nil {
		return nil, LookupSymbolOutput{}, err
	}

	out := LookupSymbolOutput{
		Symbol:    f.Entry.Symbol,
		Name:      f.Entry.ShortName(),
		Anchor:    f.Entry.Anchor,
		GoName:    f.Binding.GoName,
		Signature: f.Binding.Signature(),
		Brief:     f.Binding.Brief,
		Arity:     f.Binding.Arity,
		Variadic:  f.Binding.Variadic,
		Outputs:   f.Binding.Outputs,
	}
	if t.baseURL != "" {
		u, err := f.Entry.Resolve(t.baseURL)
		if err != nil {
			return nil, LookupSymbolOutput{}, err
		}
		out.URL = u.String()
	}
	return nil, out, nil
}

// SearchDocsInput defines input for search_arithmetic_docs.
type SearchDocsInput struct {
	Query      string `json:"query" jsonschema:"Search query"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum number of results (optional, defaults to the server setting)"`
}

// SearchDocsOutput defines output for search_arithmetic_docs.
type SearchDocsOutput struct {
	Query     string          `json:"query"`
	TotalHits int             `json:"total_hits"`
	Results   []docsearch.Hit `json:"results"`
}

// SearchDocs implements search_arithmetic_docs.
func (t *Tools) SearchDocs(ctx context.Context, req *mcp.CallToolRequest, input SearchDocsInput) (*mcp.CallToolResult, SearchDocsOutput, error) {
	if t.searcher == nil {
		return nil, SearchDocsOutput{}, fmt.Errorf("documentation search is not available")
	}
	res, err := t.searcher.Search(ctx, input.Query, input.MaxResults)
	if err != nil {
		return nil, SearchDocsOutput{}, err
	}
	return nil, SearchDocsOutput{
		Query:     res.Query,
		TotalHits: int(res.Total),
		Results:   res.Hits,
	}, nil
}

// EvaluateInput defines input for evaluate. Values are decimal strings so
// that NaN and ±Inf can be passed.
type EvaluateInput struct {
	Function  string     `json:"function" jsonschema:"Symbol to evaluate, e.g. clamp or eve::clamp"`
	Args      [][]string `json:"args" jsonschema:"One list of values per argument; values are decimal strings and may be NaN, Inf or -Inf"`
	Rounding  string     `json:"rounding,omitempty" jsonschema:"Rounding mode: to_nearest, toward_zero, upward or downward (optional)"`
	Rounded   bool       `json:"rounded,omitempty" jsonschema:"Round the quotient of div and rem with the rounding mode (optional)"`
	NaNPolicy string     `json:"nan_policy,omitempty" jsonschema:"NaN handling for min/max families: regular, pedantic or numeric (optional)"`
	Tolerance float64    `json:"tolerance,omitempty" jsonschema:"Absolute tolerance for rat (optional)"`
}

// EvaluateOutput defines output for evaluate.
type EvaluateOutput struct {
	Function string     `json:"function"`
	Results  [][]string `json:"results"`
}

// Evaluate implements evaluate.
func (t *Tools) Evaluate(ctx context.Context, req *mcp.CallToolRequest, input EvaluateInput) (*mcp.CallToolResult, EvaluateOutput, error) {
	f, err := catalog.Lookup(input.Function)
	if err != nil {
		return nil, EvaluateOutput{}, err
	}

	ev := t.evaluator
	if input.Rounding != "" {
		if ev.Options.Mode, err = arith.ParseRoundingMode(input.Rounding); err != nil {
			return nil, EvaluateOutput{}, err
		}
	}
	if input.NaNPolicy != "" {
		if ev.Options.Policy, err = arith.ParseNaNPolicy(input.NaNPolicy); err != nil {
			return nil, EvaluateOutput{}, err
		}
	}
	ev.Options.Rounded = ev.Options.Rounded || input.Rounded
	if input.Tolerance > 0 {
		ev.Options.Tolerance = input.Tolerance
	}

	args, err := ParseArgs(input.Args)
	if err != nil {
		return nil, EvaluateOutput{}, err
	}
	outs, err := ev.Eval(ctx, f.Binding, args...)
	if err != nil {
		return nil, EvaluateOutput{}, err
	}
	return nil, EvaluateOutput{Function: f.Entry.Symbol, Results: FormatResults(outs)}, nil
}

// ParseArgs converts decimal strings to float64 columns.
func ParseArgs(in [][]string) ([][]float64, error) {
	args := make([][]float64, len(in))
	for i, col := range in {
		args[i] = make([]float64, len(col))
		for j, s := range col {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("argument %d value %d: %w", i, j, err)
			}
			args[i][j] = v
		}
	}
	return args, nil
}

// FormatResults renders result columns in the shortest form that parses
// back to the same float64.
func FormatResults(outs [][]float64) [][]string {
	res := make([][]string, len(outs))
	for i, col := range outs {
		res[i] = make([]string, len(col))
		for j, v := range col {
			res[i][j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
	return res
}

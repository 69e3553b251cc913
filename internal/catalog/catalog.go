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

// Package catalog joins the group__core__arithmetic navigation table with
// the arith functions each of its symbols documents, so that a symbol can
// be looked up, searched and evaluated on float64 inputs.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/samber/lo"

	"github.com/hwyarith/hwyarith/internal/navtree"
)

//go:embed data/group__core__arithmetic.js
var arithmeticJS []byte

var (
	// ErrArity is returned when a function receives the wrong number of
	// arguments.
	ErrArity = errors.New("catalog: wrong number of arguments")

	// ErrLength is returned when argument slices differ in length and none
	// of them is a broadcastable single value.
	ErrLength = errors.New("catalog: argument length mismatch")

	// ErrDomain is returned when an integer argument is not integral.
	ErrDomain = errors.New("catalog: argument outside function domain")

	// ErrUnbound is returned when a table symbol has no binding.
	ErrUnbound = errors.New("catalog: symbol has no binding")
)

// Function is a documented symbol together with its implementation.
type Function struct {
	Entry   navtree.Entry
	Binding *Binding
}

// Symbol returns the fully qualified symbol.
func (f Function) Symbol() string {
	return f.Entry.Symbol
}

var (
	loadOnce  sync.Once
	table     *navtree.Table
	functions []Function
	loadErr   error
)

func load() {
	table, loadErr = navtree.ParseBytes(arithmeticJS)
	if loadErr != nil {
		loadErr = fmt.Errorf("catalog: embedded table: %w", loadErr)
		return
	}
	functions = make([]Function, 0, table.Len())
	for _, e := range table.Entries {
		b, ok := bindingIndex[e.Symbol]
		if !ok {
			loadErr = fmt.Errorf("%w: %s", ErrUnbound, e.Symbol)
			return
		}
		functions = append(functions, Function{Entry: e, Binding: b})
	}
}

// Table returns the embedded navigation table. The table is shared and
// must not be modified.
func Table() (*navtree.Table, error) {
	loadOnce.Do(load)
	return table, loadErr
}

// JS returns the embedded navtree script exactly as shipped.
func JS() []byte {
	return arithmeticJS
}

// All returns every documented function in table order.
func All() ([]Function, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	return functions, nil
}

// Lookup returns the function for a fully qualified symbol ("eve::abs")
// or a short name ("abs").
func Lookup(name string) (Function, error) {
	t, err := Table()
	if err != nil {
		return Function{}, err
	}
	e, err := t.Lookup(name)
	if err != nil {
		return Function{}, err
	}
	f, _ := lo.Find(functions, func(f Function) bool { return f.Entry.Symbol == e.Symbol })
	return f, nil
}

// Eval evaluates the named function element-wise over args with default
// options and no worker pool.
func Eval(name string, args ...[]float64) ([][]float64, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return f.Binding.Eval(args...)
}

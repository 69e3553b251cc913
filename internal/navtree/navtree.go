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

// Package navtree models the symbol navigation tables that a documentation
// generator emits for each API group: a named, ordered list of
// (symbol, anchor, children) entries. It parses and re-emits the navtree
// script format byte for byte, checks the structural invariants of a table,
// and converts tables to JSON, YAML, msgpack and Go source.
package navtree

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"
)

var (
	// ErrMalformed is returned when navtree input cannot be parsed.
	ErrMalformed = errors.New("navtree: malformed input")

	// ErrNotFound is returned when a symbol is not present in a table.
	ErrNotFound = errors.New("navtree: symbol not found")
)

// NamespaceSep separates the namespace from the function name in a symbol.
const NamespaceSep = "::"

// Entry is one row of a navigation table.
type Entry struct {
	// Symbol is the fully qualified name, e.g. "eve::abs".
	Symbol string `json:"symbol" yaml:"symbol" msgpack:"symbol"`

	// Anchor is the relative URL of the reference page, "page.html#fragment".
	Anchor string `json:"anchor" yaml:"anchor" msgpack:"anchor"`

	// Children holds nested entries. It is nil for leaves.
	Children []Entry `json:"children" yaml:"children,omitempty" msgpack:"children"`

	// Ref names a separately loaded child script. Doxygen uses it in place
	// of inline children for large groups.
	Ref string `json:"ref,omitempty" yaml:"ref,omitempty" msgpack:"ref,omitempty"`
}

// Namespace returns the namespace part of the entry's symbol.
func (e Entry) Namespace() string {
	return Namespace(e.Symbol)
}

// ShortName returns the symbol without its namespace.
func (e Entry) ShortName() string {
	return ShortName(e.Symbol)
}

// Resolve returns the absolute URL of the entry's anchor relative to base.
func (e Entry) Resolve(base string) (*url.URL, error) {
	b, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("navtree: parse base URL %q: %w", base, err)
	}
	ref, err := url.Parse(e.Anchor)
	if err != nil {
		return nil, fmt.Errorf("navtree: parse anchor of %s: %w", e.Symbol, err)
	}
	return b.ResolveReference(ref), nil
}

// Table is a named navigation table.
type Table struct {
	// Name is the script variable holding the table, e.g.
	// "group__core__arithmetic". It is empty for bare JSON arrays.
	Name    string  `json:"name" yaml:"name" msgpack:"name"`
	Entries []Entry `json:"entries" yaml:"entries" msgpack:"entries"`
}

// Len returns the number of top-level entries.
func (t *Table) Len() int {
	return len(t.Entries)
}

// Symbols returns the top-level symbols in table order.
func (t *Table) Symbols() []string {
	return lo.Map(t.Entries, func(e Entry, _ int) string { return e.Symbol })
}

// Lookup finds an entry by fully qualified symbol or, when name carries no
// namespace, by short name. Nested entries are searched depth first.
func (t *Table) Lookup(name string) (Entry, error) {
	if e, ok := lookup(t.Entries, name); ok {
		return e, nil
	}
	return Entry{}, fmt.Errorf("%w: %q in %s", ErrNotFound, name, t.Name)
}

func lookup(entries []Entry, name string) (Entry, bool) {
	qualified := strings.Contains(name, NamespaceSep)
	for _, e := range entries {
		if e.Symbol == name || (!qualified && e.ShortName() == name) {
			return e, true
		}
		if found, ok := lookup(e.Children, name); ok {
			return found, true
		}
	}
	return Entry{}, false
}

// Namespace returns everything before the last "::" in symbol, or "" if
// symbol is not qualified.
func Namespace(symbol string) string {
	i := strings.LastIndex(symbol, NamespaceSep)
	if i < 0 {
		return ""
	}
	return symbol[:i]
}

// ShortName returns everything after the last "::" in symbol.
func ShortName(symbol string) string {
	i := strings.LastIndex(symbol, NamespaceSep)
	if i < 0 {
		return symbol
	}
	return symbol[i+len(NamespaceSep):]
}

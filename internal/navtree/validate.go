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

package navtree

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// Severity ranks a Finding.
type Severity int

const (
	// SeverityWarning marks a table that is usable but not canonical.
	SeverityWarning Severity = iota
	// SeverityError marks a table that a documentation viewer would
	// mis-render.
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// FindingKind identifies which invariant a Finding violates.
type FindingKind string

const (
	KindEmptySymbol   FindingKind = "empty-symbol"
	KindDuplicate     FindingKind = "duplicate-symbol"
	KindInvalidAnchor FindingKind = "invalid-anchor"
	KindUnsorted      FindingKind = "unsorted"
)

// Finding is one invariant violation reported by Validate.
type Finding struct {
	// Path is the chain of parent symbols leading to the entry's list.
	// It is empty for top-level entries.
	Path     []string
	Index    int
	Symbol   string
	Kind     FindingKind
	Severity Severity
	Message  string
}

func (f Finding) String() string {
	loc := fmt.Sprintf("[%d]", f.Index)
	if len(f.Path) > 0 {
		loc = strings.Join(f.Path, "/") + loc
	}
	return fmt.Sprintf("%s %s %s: %s", f.Severity, loc, f.Kind, f.Message)
}

// Validate checks every entry list of t, including nested children, for
// empty or duplicate symbols, anchors that are not relative
// "page.html#fragment" references, and symbols out of ascending order.
// An empty result means the table is well formed.
func Validate(t *Table) []Finding {
	return validateList(nil, t.Entries)
}

// HasErrors reports whether any finding has SeverityError.
func HasErrors(findings []Finding) bool {
	return lo.SomeBy(findings, func(f Finding) bool { return f.Severity == SeverityError })
}

func validateList(path []string, entries []Entry) []Finding {
	var out []Finding
	add := func(i int, kind FindingKind, sev Severity, format string, args ...any) {
		out = append(out, Finding{
			Path:     path,
			Index:    i,
			Symbol:   entries[i].Symbol,
			Kind:     kind,
			Severity: sev,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	counts := lo.CountValues(lo.Map(entries, func(e Entry, _ int) string { return e.Symbol }))
	seen := make(map[string]int, len(entries))

	for i, e := range entries {
		if strings.TrimSpace(e.Symbol) == "" {
			add(i, KindEmptySymbol, SeverityError, "symbol is empty")
		} else if counts[e.Symbol] > 1 {
			if first, ok := seen[e.Symbol]; ok {
				add(i, KindDuplicate, SeverityError, "%s already listed at index %d", e.Symbol, first)
			} else {
				seen[e.Symbol] = i
			}
		}

		if msg := checkAnchor(e.Anchor); msg != "" {
			add(i, KindInvalidAnchor, SeverityError, "anchor %q %s", e.Anchor, msg)
		}

		if i > 0 && entries[i-1].Symbol > e.Symbol {
			add(i, KindUnsorted, SeverityWarning, "%s sorts before %s", e.Symbol, entries[i-1].Symbol)
		}

		if len(e.Children) > 0 {
			out = append(out, validateList(append(path[:len(path):len(path)], e.Symbol), e.Children)...)
		}
	}
	return out
}

// checkAnchor returns "" for a valid anchor and a description of the
// problem otherwise.
func checkAnchor(anchor string) string {
	if anchor == "" {
		return "is empty"
	}
	u, err := url.Parse(anchor)
	if err != nil {
		return "does not parse: " + err.Error()
	}
	switch {
	case u.IsAbs() || u.Host != "" || strings.HasPrefix(u.Path, "/"):
		return "is not relative"
	case !strings.HasSuffix(u.Path, ".html"):
		return "does not name an .html page"
	case u.Fragment == "":
		return "has no fragment"
	}
	return ""
}

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
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

const indentUnit = "  "

// ErrNoName is returned when a table without a valid script variable name
// is written as a navtree script.
var ErrNoName = errors.New("navtree: table has no script variable name")

var identifier = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)

// WriteJS writes t in the navtree script format:
//
//	var NAME =
//	[
//	    [ "sym", "page.html#frag", null ],
//	    [ "sym", "page.html#frag", null ]
//	];
//
// Nested children are written inline and indented by two more spaces per
// level. The output has no trailing newline, so a table parsed from a
// generated script is written back byte for byte. Tables parsed from a
// bare JSON array have no Name and fail with ErrNoName; set Name first.
func (t *Table) WriteJS(w io.Writer) error {
	if !identifier.MatchString(t.Name) {
		return fmt.Errorf("%w: %q", ErrNoName, t.Name)
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("var ")
	bw.WriteString(t.Name)
	bw.WriteString(" =\n[\n")
	writeRows(bw, t.Entries, 2)
	bw.WriteString("\n];")
	return bw.Flush()
}

// JS returns the navtree script for t.
func (t *Table) JS() (string, error) {
	var sb strings.Builder
	if err := t.WriteJS(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeRows(bw *bufio.Writer, entries []Entry, depth int) {
	pad := strings.Repeat(indentUnit, depth)
	for i, e := range entries {
		if i > 0 {
			bw.WriteString(",\n")
		}
		bw.WriteString(pad)
		bw.WriteString("[ ")
		bw.WriteString(quote(e.Symbol))
		bw.WriteString(", ")
		bw.WriteString(quote(e.Anchor))
		bw.WriteString(", ")
		switch {
		case len(e.Children) > 0:
			bw.WriteString("[\n")
			writeRows(bw, e.Children, depth+1)
			bw.WriteString("\n")
			bw.WriteString(pad)
			bw.WriteString("] ]")
		case e.Ref != "":
			bw.WriteString(quote(e.Ref))
			bw.WriteString(" ]")
		default:
			bw.WriteString("null ]")
		}
	}
}

// quote renders s as a JSON string without HTML escaping.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

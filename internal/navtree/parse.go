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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
)

var varDecl = regexp.MustCompile(`^var\s+([A-Za-z_$][\w$]*)\s*=`)

// Parse reads a navtree script ("var NAME = [ ... ];") or a bare JSON
// array of entries. Each entry is a 3-element array
// [symbol, anchor, children], where children is null, a nested array of
// entries or the name of a separate script.
func Parse(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("navtree: read: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes is Parse for in-memory input.
func ParseBytes(data []byte) (*Table, error) {
	body := bytes.TrimSpace(data)
	t := &Table{}

	if m := varDecl.FindSubmatch(body); m != nil {
		t.Name = string(m[1])
		body = bytes.TrimSpace(body[len(m[0]):])
		body = bytes.TrimSpace(bytes.TrimSuffix(body, []byte(";")))
	}
	if len(body) == 0 || body[0] != '[' {
		return nil, fmt.Errorf("%w: expected an array", ErrMalformed)
	}

	entries, err := parseEntries(body)
	if err != nil {
		return nil, err
	}
	t.Entries = entries
	return t, nil
}

func parseEntries(raw json.RawMessage) ([]Entry, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		e, err := parseEntry(row)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func parseEntry(raw json.RawMessage) (Entry, error) {
	var cols []json.RawMessage
	if err := json.Unmarshal(raw, &cols); err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(cols) < 2 || len(cols) > 3 {
		return Entry{}, fmt.Errorf("%w: want 2 or 3 columns, got %d", ErrMalformed, len(cols))
	}

	var e Entry
	if err := json.Unmarshal(cols[0], &e.Symbol); err != nil {
		return Entry{}, fmt.Errorf("%w: symbol: %v", ErrMalformed, err)
	}
	// A null anchor decodes to "" and is reported by Validate.
	var anchor *string
	if err := json.Unmarshal(cols[1], &anchor); err != nil {
		return Entry{}, fmt.Errorf("%w: anchor of %s: %v", ErrMalformed, e.Symbol, err)
	}
	if anchor != nil {
		e.Anchor = *anchor
	}
	if len(cols) == 2 {
		return e, nil
	}

	children := bytes.TrimSpace(cols[2])
	switch {
	case bytes.Equal(children, []byte("null")):
	case len(children) > 0 && children[0] == '"':
		if err := json.Unmarshal(children, &e.Ref); err != nil {
			return Entry{}, fmt.Errorf("%w: children of %s: %v", ErrMalformed, e.Symbol, err)
		}
	default:
		nested, err := parseEntries(children)
		if err != nil {
			return Entry{}, fmt.Errorf("children of %s: %w", e.Symbol, err)
		}
		e.Children = nested
	}
	return e, nil
}

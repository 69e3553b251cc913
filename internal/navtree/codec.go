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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format is a serialization of a Table.
type Format string

const (
	FormatJS      Format = "js"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// Formats lists every supported Format.
var Formats = []Format{FormatJS, FormatJSON, FormatYAML, FormatMsgpack}

// ParseFormat maps a case-insensitive name ("yml" included) to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJS, FormatJSON, FormatYAML, FormatMsgpack:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "javascript":
		return FormatJS, nil
	}
	return "", fmt.Errorf("navtree: unknown format %q", s)
}

// Encode writes t to w in format f.
func Encode(w io.Writer, t *Table, f Format) error {
	switch f {
	case FormatJS:
		return t.WriteJS(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(t)
	}
	return fmt.Errorf("navtree: unknown format %q", f)
}

// Decode reads a table in format f from r.
func Decode(r io.Reader, f Format) (*Table, error) {
	if f == FormatJS {
		return Parse(r)
	}

	t := &Table{}
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(t)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(t)
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(t)
	default:
		return nil, fmt.Errorf("navtree: unknown format %q", f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, f, err)
	}
	return t, nil
}

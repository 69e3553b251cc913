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
	"fmt"
	"io"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/tools/imports"
)

var goTemplate = template.Must(template.New("navtree").Funcs(template.FuncMap{
	"quote": quote,
}).Parse(`// Code generated by arithdoc gen-go. DO NOT EDIT.

package {{.Package}}

// {{.Var}} lists the {{.Table.Name}} symbols in table order.
var {{.Var}} = []struct {
	Symbol string
	Anchor string
}{
{{- range .Table.Entries}}
	{ {{quote .Symbol}}, {{quote .Anchor}} },
{{- end}}
}

// {{.Var}}Anchor returns the anchor of symbol in {{.Var}}.
func {{.Var}}Anchor(symbol string) (string, bool) {
	i := sort.Search(len({{.Var}}), func(i int) bool { return {{.Var}}[i].Symbol >= symbol })
	if i < len({{.Var}}) && {{.Var}}[i].Symbol == symbol {
		return {{.Var}}[i].Anchor, true
	}
	return "", false
}
`))

// GenerateGo writes a Go source file declaring the top-level entries of t
// as a slice literal in package pkg, plus a binary-search accessor. The
// accessor requires the table to be sorted.
func GenerateGo(w io.Writer, t *Table, pkg string) error {
	if findings := Validate(t); len(findings) > 0 {
		return fmt.Errorf("navtree: refusing to generate from an invalid table: %s", findings[0])
	}

	var buf bytes.Buffer
	err := goTemplate.Execute(&buf, struct {
		Package string
		Var     string
		Table   *Table
	}{pkg, GoName(t.Name), t})
	if err != nil {
		return fmt.Errorf("navtree: execute template: %w", err)
	}

	// imports.Process adds the missing "sort" import and gofmts the file.
	src, err := imports.Process(strings.ToLower(GoName(t.Name))+"_gen.go", buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("navtree: format generated code: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// GoName converts a script variable such as "group__core__arithmetic" to an
// exported Go identifier such as "GroupCoreArithmetic".
func GoName(name string) string {
	var sb strings.Builder
	for _, part := range strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '$' || r == '-' || r == '.'
	}) {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		sb.WriteString(string(runes))
	}
	if sb.Len() == 0 {
		return "Table"
	}
	if s := sb.String(); unicode.IsDigit([]rune(s)[0]) {
		return "T" + s
	}
	return sb.String()
}

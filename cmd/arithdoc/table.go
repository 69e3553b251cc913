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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hwyarith/hwyarith/internal/catalog"
	"github.com/hwyarith/hwyarith/internal/navtree"
)

// ── Table ───────────────────────────────────────────────────────────

func (a *app) listCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the catalog table",
		Long:  "Print the catalog as text, or as the navtree script (js), json, yaml or msgpack.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if format == "text" {
				return writeCatalogText(out)
			}
			f, err := navtree.ParseFormat(format)
			if err != nil {
				return err
			}
			t, err := catalog.Table()
			if err != nil {
				return err
			}
			if err := navtree.Encode(out, t, f); err != nil {
				return err
			}
			if f == navtree.FormatJS {
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, js, json, yaml or msgpack")
	return cmd
}

func writeCatalogText(w io.Writer) error {
	fns, err := catalog.All()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range fns {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Symbol(), f.Binding.Signature(), f.Binding.Brief)
	}
	return tw.Flush()
}

func (a *app) lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <symbol>",
		Short: "Show the reference link and Go implementation of a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			u, err := f.Entry.Resolve(a.cfg.Docs.BaseURL)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Symbol:    %s\n", f.Symbol())
			fmt.Fprintf(out, "Signature: %s\n", f.Binding.Signature())
			fmt.Fprintf(out, "Go:        %s\n", f.Binding.GoName)
			fmt.Fprintf(out, "Brief:     %s\n", f.Binding.Brief)
			fmt.Fprintf(out, "URL:       %s\n", u)
			return nil
		},
	}
}

// errInvalid makes validate exit non-zero after its findings are printed.
var errInvalid = errors.New("table has errors")

func (a *app) validateCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check navtree files for structural errors",
		Long: `Check navtree files for empty or duplicate symbols, malformed anchors
and unsorted entries. JSON files are also checked against the table schema.
The format is taken from the file extension unless --format is set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := false
			for _, path := range args {
				ok, err := validateFile(out, path, format)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				failed = failed || !ok
			}
			if failed {
				return errInvalid
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Input format: js, json, yaml or msgpack")
	return cmd
}

// validateFile prints the findings for one file and reports whether it is
// free of errors. Warnings do not fail validation.
func validateFile(w io.Writer, path, format string) (bool, error) {
	f, err := inputFormat(path, format)
	if err != nil {
		return false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	ok := true
	if f == navtree.FormatJSON {
		violations, err := navtree.ValidateJSON(data)
		if err != nil {
			return false, err
		}
		for _, v := range violations {
			fmt.Fprintf(w, "%s: schema %s\n", path, v)
			ok = false
		}
	}

	t, err := navtree.Decode(bytes.NewReader(data), f)
	if err != nil {
		return false, err
	}
	findings := navtree.Validate(t)
	for _, finding := range findings {
		fmt.Fprintf(w, "%s: %s\n", path, finding)
	}
	if navtree.HasErrors(findings) {
		ok = false
	}
	if ok {
		fmt.Fprintf(w, "%s: %d entries ok\n", path, t.Len())
	}
	return ok, nil
}

func inputFormat(path, format string) (navtree.Format, error) {
	if format != "" {
		return navtree.ParseFormat(format)
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" || ext == "mp" {
		return navtree.FormatMsgpack, nil
	}
	return navtree.ParseFormat(ext)
}

func (a *app) genGoCmd() *cobra.Command {
	var pkg, input, output string
	cmd := &cobra.Command{
		Use:   "gen-go",
		Short: "Generate a Go lookup table from a navtree",
		Long: `Generate a Go source file holding the symbol and anchor of every entry,
with a binary-search accessor. The built-in catalog is used unless --input
names a navtree script.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(input)
			if err != nil {
				return err
			}
			if output == "" {
				return navtree.GenerateGo(cmd.OutOrStdout(), t, pkg)
			}
			var buf bytes.Buffer
			if err := navtree.GenerateGo(&buf, t, pkg); err != nil {
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%d entries)\n", output, t.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&pkg, "package", "eveidx", "Package name of the generated file")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Navtree file (default: built-in catalog)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

func loadTable(path string) (*navtree.Table, error) {
	if path == "" {
		return catalog.Table()
	}
	f, err := inputFormat(path, "")
	if err != nil {
		return nil, err
	}
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return navtree.Decode(r, f)
}

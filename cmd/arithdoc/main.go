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

// Command arithdoc serves the core arithmetic function catalog: its
// navigation table, reference links, documentation search and a SIMD
// evaluator for every listed function.
//
// Usage:
//
//	arithdoc list --format yaml
//	arithdoc lookup clamp
//	arithdoc validate docs/group__core__arithmetic.js
//	arithdoc search "linear interpolation"
//	arithdoc eval clamp 1,5,9 2 6
//	arithdoc eval div 7,-7 2 --rounding downward --rounded
//	arithdoc gen-go --package eveidx > arith_gen.go
//	arithdoc cpu
//	arithdoc mcp
//
// Settings are read from arithdoc.yaml (or --config) and ARITHDOC_*
// environment variables. Diagnostics go to stderr.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/hwyarith/hwyarith/internal/config"
)

var version = "dev"

// app carries the state shared by the subcommands.
type app struct {
	configPath string
	cfg        *config.Config
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "arithdoc",
		Short: "Core arithmetic catalog: reference links, search and evaluation",
		Long: `arithdoc works with the navigation table of the core arithmetic
function group. It prints and converts the table, resolves symbols to
their reference pages, searches the catalog and evaluates any listed
function on float64 inputs with the SIMD kernels.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "f", "", "Path to YAML config (default "+config.DefaultPath+" if present)")

	rootCmd.AddCommand(
		a.listCmd(),
		a.lookupCmd(),
		a.validateCmd(),
		a.genGoCmd(),
		a.searchCmd(),
		a.evalCmd(),
		a.cpuCmd(),
		a.mcpCmd(),
	)
	return rootCmd
}

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
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hwyarith/hwyarith/hwy/contrib/arith"
	"github.com/hwyarith/hwyarith/hwy/contrib/workerpool"
	"github.com/hwyarith/hwyarith/internal/catalog"
	"github.com/hwyarith/hwyarith/internal/config"
	"github.com/hwyarith/hwyarith/internal/mcptools"
)

// ── Eval ────────────────────────────────────────────────────────────

type evalFlags struct {
	rounding  string
	rounded   bool
	nanPolicy string
	tolerance float64
	workers   int
}

func (a *app) evalCmd() *cobra.Command {
	var ef evalFlags
	cmd := &cobra.Command{
		Use:   "eval <function> <arg>...",
		Short: "Evaluate a function element-wise",
		Long: `Evaluate a catalog function on float64 inputs. Each argument is a
comma-separated list of values; single values broadcast against the longer
lists. NaN, Inf and -Inf are accepted. Put -- before an argument that
starts with a minus sign. Each result column is printed on its own line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			ev, err := evaluator(cmd.Flags(), ef, a.cfg)
			if err != nil {
				return err
			}
			if ev.Pool != nil {
				defer ev.Pool.Close()
			}

			cols := make([][]string, 0, len(args)-1)
			for _, arg := range args[1:] {
				cols = append(cols, strings.Split(arg, ","))
			}
			in, err := mcptools.ParseArgs(cols)
			if err != nil {
				return err
			}

			outs, err := ev.Eval(cmd.Context(), f.Binding, in...)
			if err != nil {
				return err
			}
			for _, col := range mcptools.FormatResults(outs) {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(col, " "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&ef.rounding, "rounding", "", "Rounding mode: to_nearest, toward_zero, upward or downward (default from config)")
	cmd.Flags().BoolVar(&ef.rounded, "rounded", false, "Round the quotient of div and rem with the rounding mode")
	cmd.Flags().StringVar(&ef.nanPolicy, "nan-policy", "", "NaN policy of the min/max families: regular, pedantic or numeric (default from config)")
	cmd.Flags().Float64Var(&ef.tolerance, "tolerance", 0, "Absolute tolerance of rat (default relative 1e-6)")
	cmd.Flags().IntVar(&ef.workers, "workers", 0, "Worker goroutines for long inputs (default from config)")
	return cmd
}

// evaluator builds the Evaluator from the config, overridden by the flags
// that were set on the command line.
func evaluator(flags *pflag.FlagSet, ef evalFlags, cfg *config.Config) (catalog.Evaluator, error) {
	ev := catalog.Evaluator{
		Options: catalog.Options{
			Mode:      cfg.RoundingMode(),
			Policy:    cfg.Policy(),
			Rounded:   ef.rounded,
			Tolerance: ef.tolerance,
		},
		ParallelThreshold: cfg.Eval.ParallelThreshold,
	}

	var err error
	if flags.Changed("rounding") {
		if ev.Options.Mode, err = arith.ParseRoundingMode(ef.rounding); err != nil {
			return catalog.Evaluator{}, err
		}
	}
	if flags.Changed("nan-policy") {
		if ev.Options.Policy, err = arith.ParseNaNPolicy(ef.nanPolicy); err != nil {
			return catalog.Evaluator{}, err
		}
	}
	if ef.tolerance < 0 {
		return catalog.Evaluator{}, fmt.Errorf("--tolerance must be >= 0")
	}

	workers := cfg.Eval.Workers
	if flags.Changed("workers") {
		workers = ef.workers
	}
	if workers != 1 {
		ev.Pool = workerpool.New(workers)
	}
	return ev, nil
}

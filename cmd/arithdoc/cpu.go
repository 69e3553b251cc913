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
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"

	"github.com/hwyarith/hwyarith/hwy"
)

// ── CPU ─────────────────────────────────────────────────────────────

// simdFeatures are the instruction sets that matter to the kernels.
var simdFeatures = []cpuid.FeatureID{
	cpuid.SSE4,
	cpuid.AVX,
	cpuid.AVX2,
	cpuid.FMA3,
	cpuid.AVX512F,
	cpuid.AVX512BW,
	cpuid.AVX512VL,
	cpuid.ASIMD,
	cpuid.SVE,
}

func (a *app) cpuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpu",
		Short: "Show the CPU and the SIMD level used for evaluation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "CPU:       %s (%s)\n", cpuid.CPU.BrandName, cpuid.CPU.VendorString)
			fmt.Fprintf(out, "Cores:     %d physical, %d logical\n", cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
			fmt.Fprintf(out, "Arch:      %s/%s\n", runtime.GOOS, runtime.GOARCH)

			var have []string
			for _, id := range simdFeatures {
				if cpuid.CPU.Supports(id) {
					have = append(have, id.String())
				}
			}
			if len(have) == 0 {
				have = append(have, "none")
			}
			fmt.Fprintf(out, "Features:  %s\n", strings.Join(have, " "))

			level := hwy.CurrentName()
			if hwy.NoSimdEnv() {
				level += " (HWY_NO_SIMD set)"
			}
			fmt.Fprintf(out, "SIMD:      %s, %d-byte vectors, %d float64 lanes\n", level, hwy.CurrentWidth(), hwy.MaxLanes[float64]())
			fmt.Fprintf(out, "FMA:       %t\n", hwy.HasFMA())
			return nil
		},
	}
}

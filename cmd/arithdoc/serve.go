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
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/hwyarith/hwyarith/hwy/contrib/workerpool"
	"github.com/hwyarith/hwyarith/internal/catalog"
	"github.com/hwyarith/hwyarith/internal/docsearch"
	"github.com/hwyarith/hwyarith/internal/mcptools"
)

// ── Search ──────────────────────────────────────────────────────────

func (a *app) openSearcher() (*docsearch.Searcher, error) {
	return docsearch.Open(docsearch.Options{
		IndexPath:  a.cfg.Search.IndexPath,
		MaxResults: a.cfg.Search.MaxResults,
		BaseURL:    a.cfg.Docs.BaseURL,
	})
}

func (a *app) searchCmd() *cobra.Command {
	var limit int
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search over the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSearcher()
			if err != nil {
				return err
			}
			defer s.Close()

			res, err := s.Search(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			if len(res.Hits) == 0 {
				fmt.Fprintf(out, "No matches for %q\n", res.Query)
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, h := range res.Hits {
				fmt.Fprintf(tw, "%.3f\t%s\t%s\t%s\n", h.Score, h.Document.Signature, h.Document.Brief, h.Document.URL)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "%d of %d matches\n", len(res.Hits), res.Total)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "max", "n", 0, "Maximum number of hits (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	return cmd
}

// ── MCP ─────────────────────────────────────────────────────────────

func (a *app) mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve lookup, search and evaluate as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			searcher, err := a.openSearcher()
			if err != nil {
				log.Printf("Warning: documentation search unavailable: %v", err)
			} else {
				defer searcher.Close()
			}

			pool := workerpool.New(a.cfg.Eval.Workers)
			defer pool.Close()
			ev := catalog.Evaluator{
				Options: catalog.Options{
					Mode:   a.cfg.RoundingMode(),
					Policy: a.cfg.Policy(),
				},
				Pool:              pool,
				ParallelThreshold: a.cfg.Eval.ParallelThreshold,
			}

			server := mcp.NewServer(&mcp.Implementation{
				Name:    "arithdoc",
				Version: version,
			}, nil)
			mcptools.New(searcher, ev, a.cfg.Docs.BaseURL).Register(server)

			log.Printf("arithdoc MCP server %s ready (%d workers)", version, pool.NumWorkers())
			if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
				return fmt.Errorf("mcp server: %w", err)
			}
			return nil
		},
	}
}

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

// Package config loads arithdoc settings from a YAML file and ARITHDOC_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hwyarith/hwyarith/hwy/contrib/arith"
)

// DefaultPath is read by Load when no path is given and the file exists.
const DefaultPath = "arithdoc.yaml"

// Config is the complete arithdoc configuration.
type Config struct {
	Docs   DocsConfig   `yaml:"docs"`
	Search SearchConfig `yaml:"search"`
	Eval   EvalConfig   `yaml:"eval"`
}

// DocsConfig controls how anchors are turned into links.
type DocsConfig struct {
	// BaseURL is the root of the published reference pages.
	BaseURL string `yaml:"baseURL"`
}

// SearchConfig controls the documentation search index.
type SearchConfig struct {
	// IndexPath is the on-disk bleve index. Empty keeps the index in memory.
	IndexPath string `yaml:"indexPath"`

	// MaxResults caps the hits returned by one query.
	MaxResults int `yaml:"maxResults"`
}

// EvalConfig controls function evaluation.
type EvalConfig struct {
	// Workers is the worker pool size. Zero uses GOMAXPROCS.
	Workers int `yaml:"workers"`

	// ParallelThreshold is the input length from which evaluation is split
	// across workers.
	ParallelThreshold int `yaml:"parallelThreshold"`

	// Rounding is the default rounding mode name (to_nearest, toward_zero,
	// upward, downward).
	Rounding string `yaml:"rounding"`

	// NaNPolicy is the default min/max NaN policy name (regular, pedantic,
	// numeric).
	NaNPolicy string `yaml:"nanPolicy"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Docs: DocsConfig{
			BaseURL: "https://jfalcou.github.io/eve/",
		},
		Search: SearchConfig{
			MaxResults: 10,
		},
		Eval: EvalConfig{
			ParallelThreshold: 4096,
			Rounding:          arith.ToNearest.String(),
			NaNPolicy:         arith.Regular.String(),
		},
	}
}

// ConfigFromFile reads a YAML file on top of DefaultConfig.
func ConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// ConfigFromEnv applies environment variable overrides to cfg. If cfg is
// nil a default Config is created first.
//
//	ARITHDOC_DOCS_BASE_URL       → Docs.BaseURL
//	ARITHDOC_INDEX_PATH          → Search.IndexPath
//	ARITHDOC_MAX_RESULTS         → Search.MaxResults
//	ARITHDOC_WORKERS             → Eval.Workers
//	ARITHDOC_PARALLEL_THRESHOLD  → Eval.ParallelThreshold
//	ARITHDOC_ROUNDING            → Eval.Rounding
//	ARITHDOC_NAN_POLICY          → Eval.NaNPolicy
func ConfigFromEnv(cfg *Config) *Config {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	setEnvStr("ARITHDOC_DOCS_BASE_URL", &cfg.Docs.BaseURL)
	setEnvStr("ARITHDOC_INDEX_PATH", &cfg.Search.IndexPath)
	setEnvInt("ARITHDOC_MAX_RESULTS", &cfg.Search.MaxResults)
	setEnvInt("ARITHDOC_WORKERS", &cfg.Eval.Workers)
	setEnvInt("ARITHDOC_PARALLEL_THRESHOLD", &cfg.Eval.ParallelThreshold)
	setEnvStr("ARITHDOC_ROUNDING", &cfg.Eval.Rounding)
	setEnvStr("ARITHDOC_NAN_POLICY", &cfg.Eval.NaNPolicy)

	return cfg
}

// Load builds the effective configuration: defaults, then the file at
// path (or DefaultPath when path is empty and that file exists), then the
// environment. The result is validated.
func Load(path string) (*Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultPath); err == nil {
			path = DefaultPath
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("checking config file %s: %w", DefaultPath, err)
		}
	}

	cfg := DefaultConfig()
	if path != "" {
		var err error
		cfg, err = ConfigFromFile(path)
		if err != nil {
			return nil, err
		}
	}

	cfg = ConfigFromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid field. It normalizes the rounding
// and NaN policy names to lower case.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Docs.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("docs.baseURL must be an absolute URL, got %q", c.Docs.BaseURL)
	}

	if c.Search.MaxResults < 1 || c.Search.MaxResults > 100 {
		return fmt.Errorf("search.maxResults must be in [1, 100], got %d", c.Search.MaxResults)
	}

	if c.Eval.Workers < 0 {
		return fmt.Errorf("eval.workers must be >= 0, got %d", c.Eval.Workers)
	}
	if c.Eval.ParallelThreshold < 1 {
		return fmt.Errorf("eval.parallelThreshold must be >= 1, got %d", c.Eval.ParallelThreshold)
	}

	c.Eval.Rounding = strings.ToLower(strings.TrimSpace(c.Eval.Rounding))
	if _, err := arith.ParseRoundingMode(c.Eval.Rounding); err != nil {
		return fmt.Errorf("eval.rounding must be one of to_nearest|toward_zero|upward|downward")
	}
	c.Eval.NaNPolicy = strings.ToLower(strings.TrimSpace(c.Eval.NaNPolicy))
	if _, err := arith.ParseNaNPolicy(c.Eval.NaNPolicy); err != nil {
		return fmt.Errorf("eval.nanPolicy must be one of regular|pedantic|numeric")
	}

	return nil
}

// RoundingMode returns the parsed Eval.Rounding. Call Validate first.
func (c *Config) RoundingMode() arith.RoundingMode {
	m, _ := arith.ParseRoundingMode(c.Eval.Rounding)
	return m
}

// Policy returns the parsed Eval.NaNPolicy. Call Validate first.
func (c *Config) Policy() arith.NaNPolicy {
	p, _ := arith.ParseNaNPolicy(c.Eval.NaNPolicy)
	return p
}

func setEnvStr(key string, target *string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func setEnvInt(key string, target *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*target = n
		}
	}
}

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

// Package docsearch indexes the arithmetic catalog with bleve and answers
// free-text queries over symbol names, briefs and Go names.
package docsearch

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/blevesearch/bleve/v2"

	"github.com/hwyarith/hwyarith/internal/catalog"
)

const (
	defaultMaxResults = 10
	maxMaxResults     = 100
	batchSize         = 100
)

// fingerprintKey is the bleve internal key holding the digest of the
// documents an on-disk index was built from.
var fingerprintKey = []byte("catalog_fingerprint")

// ErrEmptyQuery is returned for a blank query.
var ErrEmptyQuery = errors.New("docsearch: empty query")

// Options configures Open.
type Options struct {
	// IndexPath is the on-disk index directory. Empty builds an in-memory
	// index.
	IndexPath string

	// MaxResults is used when a search does not set its own limit.
	MaxResults int

	// BaseURL turns anchors into absolute links in the indexed documents.
	BaseURL string
}

// Document is one indexed catalog function.
type Document struct {
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Brief     string `json:"brief"`
	GoName    string `json:"go_name"`
	Signature string `json:"signature"`
	Anchor    string `json:"anchor"`
	URL       string `json:"url"`
}

// Hit is a scored search result.
type Hit struct {
	Document Document `json:"document"`
	Score    float64  `json:"score"`
}

// Results is the answer to one query.
type Results struct {
	Query string `json:"query"`
	Total uint64 `json:"total"`
	Hits  []Hit  `json:"hits"`
}

// Searcher answers queries against an Index. It is safe for concurrent
// use.
type Searcher struct {
	index      Index
	maxResults int
}

// New returns a Searcher over an already populated index.
func New(index Index, maxResults int) *Searcher {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	return &Searcher{index: index, maxResults: min(maxResults, maxMaxResults)}
}

// Open builds or opens the catalog index described by opts. An on-disk
// index built from different documents (catalog or base URL) is rebuilt.
func Open(opts Options) (*Searcher, error) {
	start := time.Now()
	docs, err := Documents(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	var idx bleve.Index
	if opts.IndexPath == "" {
		idx, err = bleve.NewMemOnly(bleve.NewIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("docsearch: create in-memory index: %w", err)
		}
		if err := indexDocuments(idx, docs); err != nil {
			idx.Close()
			return nil, err
		}
	} else {
		idx, err = openOnDisk(opts.IndexPath, docs)
		if err != nil {
			return nil, err
		}
	}

	count, _ := idx.DocCount()
	log.Printf("docsearch: %d documents ready in %v", count, time.Since(start).Round(time.Millisecond))
	return New(NewBleveIndexWrapper(idx), opts.MaxResults), nil
}

func openOnDisk(path string, docs []Document) (bleve.Index, error) {
	fp, err := fingerprint(docs)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err == nil {
		idx, err := bleve.Open(path)
		if err == nil {
			stored, err := idx.GetInternal(fingerprintKey)
			if err == nil && bytes.Equal(stored, fp) {
				return idx, nil
			}
			log.Printf("docsearch: index at %s is stale, rebuilding", path)
			idx.Close()
		} else {
			log.Printf("docsearch: index at %s unreadable (%v), rebuilding", path, err)
		}
		if err := os.RemoveAll(path); err != nil {
			return nil, fmt.Errorf("docsearch: remove stale index: %w", err)
		}
	}

	idx, err := bleve.New(path, bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("docsearch: create index at %s: %w", path, err)
	}
	if err := indexDocuments(idx, docs); err != nil {
		idx.Close()
		os.RemoveAll(path)
		return nil, err
	}
	if err := idx.SetInternal(fingerprintKey, fp); err != nil {
		idx.Close()
		os.RemoveAll(path)
		return nil, fmt.Errorf("docsearch: store index fingerprint: %w", err)
	}
	return idx, nil
}

// fingerprint digests the rendered documents, so that a change of base URL,
// brief or signature invalidates an on-disk index.
func fingerprint(docs []Document) ([]byte, error) {
	data, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("docsearch: fingerprint documents: %w", err)
	}
	sum := sha256.Sum256(data)
	return []byte(hex.EncodeToString(sum[:])), nil
}

// Documents renders every catalog function as a Document.
func Documents(baseURL string) ([]Document, error) {
	fns, err := catalog.All()
	if err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(fns))
	for _, f := range fns {
		doc := Document{
			Symbol:    f.Entry.Symbol,
			Name:      f.Entry.ShortName(),
			Brief:     f.Binding.Brief,
			GoName:    f.Binding.GoName,
			Signature: f.Binding.Signature(),
			Anchor:    f.Entry.Anchor,
		}
		if baseURL != "" {
			u, err := f.Entry.Resolve(baseURL)
			if err != nil {
				return nil, err
			}
			doc.URL = u.String()
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func indexDocuments(idx bleve.Index, docs []Document) error {
	batch := idx.NewBatch()
	for i, doc := range docs {
		if err := batch.Index(doc.Symbol, doc); err != nil {
			return fmt.Errorf("docsearch: add %s to batch: %w", doc.Symbol, err)
		}
		if (i+1)%batchSize == 0 {
			if err := idx.Batch(batch); err != nil {
				return fmt.Errorf("docsearch: index batch: %w", err)
			}
			batch = idx.NewBatch()
		}
	}
	if batch.Size() > 0 {
		if err := idx.Batch(batch); err != nil {
			return fmt.Errorf("docsearch: index final batch: %w", err)
		}
	}
	return nil
}

// Search runs a free-text query. Words match symbol names, briefs and Go
// names; the query also matches as a prefix of short names. limit <= 0
// uses the searcher's default.
func (s *Searcher) Search(ctx context.Context, query string, limit int) (*Results, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = s.maxResults
	}
	limit = min(limit, maxMaxResults)

	prefix := bleve.NewPrefixQuery(strings.ToLower(query))
	prefix.SetField("name")
	req := bleve.NewSearchRequest(bleve.NewDisjunctionQuery(bleve.NewMatchQuery(query), prefix))
	req.Size = limit
	req.Fields = []string{"*"}

	res, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("docsearch: search %q: %w", query, err)
	}

	out := &Results{Query: query, Total: res.Total, Hits: make([]Hit, 0, len(res.Hits))}
	for _, hit := range res.Hits {
		doc := Document{Symbol: hit.ID}
		if v, ok := hit.Fields["name"].(string); ok {
			doc.Name = v
		}
		if v, ok := hit.Fields["brief"].(string); ok {
			doc.Brief = v
		}
		if v, ok := hit.Fields["go_name"].(string); ok {
			doc.GoName = v
		}
		if v, ok := hit.Fields["signature"].(string); ok {
			doc.Signature = v
		}
		if v, ok := hit.Fields["anchor"].(string); ok {
			doc.Anchor = v
		}
		if v, ok := hit.Fields["url"].(string); ok {
			doc.URL = v
		}
		out.Hits = append(out.Hits, Hit{Document: doc, Score: hit.Score})
	}
	return out, nil
}

// DocCount returns the number of indexed documents.
func (s *Searcher) DocCount() (uint64, error) {
	return s.index.DocCount()
}

// Close releases the index.
func (s *Searcher) Close() error {
	return s.index.Close()
}

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

package docsearch

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://jfalcou.github.io/eve/"

func openMem(t *testing.T) *Searcher {
	t.Helper()
	s, err := Open(Options{BaseURL: baseURL})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func symbols(r *Results) []string {
	return lo.Map(r.Hits, func(h Hit, _ int) string { return h.Document.Symbol })
}

func TestDocuments(t *testing.T) {
	docs, err := Documents(baseURL)
	require.NoError(t, err)
	require.Len(t, docs, 57)

	abs := docs[0]
	assert.Equal(t, "eve::abs", abs.Symbol)
	assert.Equal(t, "abs", abs.Name)
	assert.Equal(t, "arith.Abs", abs.GoName)
	assert.Equal(t, "abs(x)", abs.Signature)
	assert.Equal(t, baseURL+abs.Anchor, abs.URL)
}

func TestSearch_InMemory(t *testing.T) {
	s := openMem(t)

	count, err := s.DocCount()
	require.NoError(t, err)
	assert.EqualValues(t, 57, count)

	tests := []struct {
		query string
		want  string
	}{
		{"clamp", "eve::clamp"},
		{"interpolation", "eve::lerp"},
		{"arithmetic-geometric", "eve::agm"},
		{"arith.Rsqrt", "eve::rsqrt"},
		{"sign_alternate", "eve::sign_alternate"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			res, err := s.Search(context.Background(), tt.query, 5)
			require.NoError(t, err)
			assert.Contains(t, symbols(res), tt.want)
			assert.LessOrEqual(t, len(res.Hits), 5)
		})
	}
}

func TestSearch_Prefix(t *testing.T) {
	s := openMem(t)

	res, err := s.Search(context.Background(), "negm", 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"eve::negmaxabs", "eve::negminabs"}, symbols(res))

	hit := res.Hits[0].Document
	assert.NotEmpty(t, hit.Brief)
	assert.NotEmpty(t, hit.Anchor)
	assert.Contains(t, hit.URL, baseURL)
}

func TestSearch_EmptyQuery(t *testing.T) {
	s := New(newMockIndex(), 0)
	_, err := s.Search(context.Background(), "   ", 0)
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSearch_Limits(t *testing.T) {
	idx := newMockIndex()
	s := New(idx, 3)

	res, err := s.Search(context.Background(), "abs", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, idx.lastRequest.Size)
	assert.EqualValues(t, 57, res.Total)
	assert.Empty(t, res.Hits)

	_, err = s.Search(context.Background(), "abs", 5000)
	require.NoError(t, err)
	assert.Equal(t, maxMaxResults, idx.lastRequest.Size)
}

func TestSearch_IndexError(t *testing.T) {
	idx := newMockIndex()
	idx.searchError = errors.New("disk on fire")
	s := New(idx, 0)

	_, err := s.Search(context.Background(), "abs", 0)
	assert.ErrorIs(t, err, idx.searchError)

	require.NoError(t, s.Close())
	assert.True(t, idx.closed.Load())
	assert.Error(t, s.Close())
}

func TestOpen_OnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arith.bleve")

	s, err := Open(Options{IndexPath: path, MaxResults: 4})
	require.NoError(t, err)
	res, err := s.Search(context.Background(), "square root", 0)
	require.NoError(t, err)
	assert.Contains(t, symbols(res), "eve::sqrt")
	require.NoError(t, s.Close())

	// Reopening reuses the existing index.
	s, err = Open(Options{IndexPath: path})
	require.NoError(t, err)
	count, err := s.DocCount()
	require.NoError(t, err)
	assert.EqualValues(t, 57, count)
	require.NoError(t, s.Close())
}

func TestOpen_OnDiskBaseURLChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arith.bleve")

	clampURL := func(base string) string {
		t.Helper()
		s, err := Open(Options{IndexPath: path, BaseURL: base})
		require.NoError(t, err)
		defer s.Close()
		res, err := s.Search(context.Background(), "clamp", 1)
		require.NoError(t, err)
		require.NotEmpty(t, res.Hits)
		require.Equal(t, "eve::clamp", res.Hits[0].Document.Symbol)
		return res.Hits[0].Document.URL
	}

	assert.True(t, strings.HasPrefix(clampURL("https://old.example/"), "https://old.example/"))
	assert.True(t, strings.HasPrefix(clampURL("https://new.example/"), "https://new.example/"))
	assert.True(t, strings.HasPrefix(clampURL("https://new.example/"), "https://new.example/"))
}

func TestFingerprint(t *testing.T) {
	oldDocs, err := Documents("https://old.example/")
	require.NoError(t, err)
	newDocs, err := Documents("https://new.example/")
	require.NoError(t, err)

	a, err := fingerprint(oldDocs)
	require.NoError(t, err)
	b, err := fingerprint(oldDocs)
	require.NoError(t, err)
	c, err := fingerprint(newDocs)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

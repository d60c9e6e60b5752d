// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package algorithms

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"
)

// ErrEmptyIndex is returned when an index is built over zero documents.
var ErrEmptyIndex = errors.New("similarity index has no documents")

// IndexConfig controls how a SimilarityIndex is built.
type IndexConfig struct {
	// StopWords selects the stop-word list. Empty means English.
	StopWords StopWords

	// Workers bounds the goroutines computing matrix rows.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Workers int
}

// Neighbor is one ranked entry returned by TopK.
type Neighbor struct {
	Index int
	Score float64
}

// SimilarityIndex is a dense N×N cosine similarity matrix over the
// term-frequency vectors of N documents.
//
// Score(i, j) == Score(j, i) for every pair. A document without tokens has a
// zero vector and scores 0 against everything, itself included. The index is
// never modified after BuildSimilarityIndex returns, so concurrent readers
// need no locking.
type SimilarityIndex struct {
	n             int
	scores        []float64
	vocab         *Vocabulary
	builtAt       time.Time
	buildDuration time.Duration
}

// BuildSimilarityIndex vectorizes docs and computes every pairwise cosine
// similarity. Only the upper triangle is computed; it is mirrored into the
// lower triangle. Rows are spread over a bounded worker pool.
func BuildSimilarityIndex(ctx context.Context, docs []string, cfg IndexConfig) (*SimilarityIndex, error) {
	if len(docs) == 0 {
		return nil, ErrEmptyIndex
	}
	if ContextCancelled(ctx) {
		return nil, ctx.Err()
	}

	start := time.Now()

	vocab, vectors := Vectorize(docs, NewTokenizer(cfg.StopWords))

	n := len(vectors)
	norms := make([]float64, n)
	for i := range vectors {
		norms[i] = vectors[i].Norm()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	scores := make([]float64, n*n)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithMaxGoroutines(workers)
	for i := 0; i < n; i++ {
		p.Go(func(ctx context.Context) error {
			if ContextCancelled(ctx) {
				return ctx.Err()
			}
			fillRow(scores, vectors, norms, i)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("build similarity matrix: %w", err)
	}

	return &SimilarityIndex{
		n:             n,
		scores:        scores,
		vocab:         vocab,
		builtAt:       time.Now(),
		buildDuration: time.Since(start),
	}, nil
}

// fillRow writes scores[i][j] and scores[j][i] for every j >= i.
// Distinct rows touch disjoint cells, so rows may run concurrently.
func fillRow(scores []float64, vectors []SparseVector, norms []float64, i int) {
	n := len(vectors)
	for j := i; j < n; j++ {
		s := cosine(vectors[i], vectors[j], norms[i], norms[j])
		scores[i*n+j] = s
		scores[j*n+i] = s
	}
}

func cosine(a, b SparseVector, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	return a.Dot(b) / (normA * normB)
}

// Len returns the number of documents.
func (s *SimilarityIndex) Len() int {
	return s.n
}

// Score returns the similarity of documents i and j.
func (s *SimilarityIndex) Score(i, j int) float64 {
	return s.scores[i*s.n+j]
}

// Row returns a copy of row i.
func (s *SimilarityIndex) Row(i int) []float64 {
	row := make([]float64, s.n)
	copy(row, s.scores[i*s.n:(i+1)*s.n])
	return row
}

// VocabularySize returns the number of distinct terms.
func (s *SimilarityIndex) VocabularySize() int {
	return s.vocab.Len()
}

// Vocabulary returns the index vocabulary.
func (s *SimilarityIndex) Vocabulary() *Vocabulary {
	return s.vocab
}

// BuiltAt returns when the build finished.
func (s *SimilarityIndex) BuiltAt() time.Time {
	return s.builtAt
}

// BuildDuration returns how long the build took.
func (s *SimilarityIndex) BuildDuration() time.Duration {
	return s.buildDuration
}

// TopK returns up to k documents most similar to row, highest score first.
// Equal scores are ordered by ascending document index. The queried row is
// excluded by position, so an identical duplicate document can still appear.
// A row outside the index or k <= 0 yields nil.
func (s *SimilarityIndex) TopK(row, k int) []Neighbor {
	if row < 0 || row >= s.n || k <= 0 {
		return nil
	}

	candidates := make([]Neighbor, 0, s.n-1)
	base := row * s.n
	for j := 0; j < s.n; j++ {
		if j == row {
			continue
		}
		candidates = append(candidates, Neighbor{Index: j, Score: s.scores[base+j]})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].Score != candidates[b].Score {
			return candidates[a].Score > candidates[b].Score
		}
		return candidates[a].Index < candidates[b].Index
	})

	if k < len(candidates) {
		candidates = candidates[:k]
	}
	return candidates
}

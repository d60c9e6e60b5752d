// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package algorithms

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildIndex(t *testing.T, docs []string, workers int) *SimilarityIndex {
	t.Helper()
	idx, err := BuildSimilarityIndex(context.Background(), docs, IndexConfig{Workers: workers})
	require.NoError(t, err)
	return idx
}

func TestBuildSimilarityIndex_Scores(t *testing.T) {
	t.Parallel()

	// A: comedy, B: comedy drama, C: drama, D: comedy
	idx := buildIndex(t, []string{"Comedy", "Comedy Drama", "Drama", "Comedy"}, 2)

	require.Equal(t, 4, idx.Len())
	assert.Equal(t, 2, idx.VocabularySize())

	assert.InDelta(t, 1.0, idx.Score(0, 0), 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, idx.Score(0, 1), 1e-12)
	assert.InDelta(t, 0.0, idx.Score(0, 2), 1e-12)
	assert.InDelta(t, 1.0, idx.Score(0, 3), 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, idx.Score(2, 1), 1e-12)
}

func TestBuildSimilarityIndex_Invariants(t *testing.T) {
	t.Parallel()

	docs := []string{
		"Action Sci-Fi", "Action Drama", "Comedy Romance", "Drama Romance",
		"Horror", "Action Sci-Fi Thriller", "", "the of and", "Comedy",
	}
	idx := buildIndex(t, docs, 3)

	for i := 0; i < idx.Len(); i++ {
		for j := 0; j < idx.Len(); j++ {
			s := idx.Score(i, j)
			assert.Equal(t, s, idx.Score(j, i), "symmetry at %d,%d", i, j)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0+1e-12)
			if idx.Score(i, i) > 0 {
				assert.LessOrEqual(t, s, idx.Score(i, i)+1e-12, "row %d max on diagonal", i)
			}
		}
	}

	// Empty text and all stop words give zero vectors.
	for _, zero := range []int{6, 7} {
		for j := 0; j < idx.Len(); j++ {
			assert.Zero(t, idx.Score(zero, j))
		}
	}
}

func TestBuildSimilarityIndex_DeterministicAcrossWorkers(t *testing.T) {
	t.Parallel()

	docs := make([]string, 0, 40)
	genres := []string{"Action", "Drama", "Comedy", "Horror", "Romance", "Thriller", "Sci-Fi"}
	for i := 0; i < 40; i++ {
		docs = append(docs, fmt.Sprintf("%s %s %s", genres[i%7], genres[(i*3)%7], genres[(i*5+1)%7]))
	}

	serial := buildIndex(t, docs, 1)
	parallel := buildIndex(t, docs, 8)

	for i := 0; i < serial.Len(); i++ {
		assert.Equal(t, serial.Row(i), parallel.Row(i), "row %d", i)
	}
}

func TestBuildSimilarityIndex_Empty(t *testing.T) {
	t.Parallel()

	_, err := BuildSimilarityIndex(context.Background(), nil, IndexConfig{})
	assert.ErrorIs(t, err, ErrEmptyIndex)
}

func TestBuildSimilarityIndex_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildSimilarityIndex(ctx, []string{"a b", "c d"}, IndexConfig{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimilarityIndex_TopK(t *testing.T) {
	t.Parallel()

	idx := buildIndex(t, []string{"Comedy", "Comedy Drama", "Drama", "Comedy"}, 0)

	got := idx.TopK(0, 5)
	require.Len(t, got, 3, "at most N-1 neighbors")
	assert.Equal(t, []int{3, 1, 2}, indices(got))
	assert.InDelta(t, 1.0, got[0].Score, 1e-12)

	// B scores A, C and D equally; ascending index breaks the tie.
	assert.Equal(t, []int{0, 2, 3}, indices(idx.TopK(1, 5)))

	assert.Equal(t, []int{3}, indices(idx.TopK(0, 1)))
	assert.Nil(t, idx.TopK(0, 0))
	assert.Nil(t, idx.TopK(-1, 5))
	assert.Nil(t, idx.TopK(4, 5))
}

func TestSimilarityIndex_TopK_DuplicateDocument(t *testing.T) {
	t.Parallel()

	idx := buildIndex(t, []string{"Horror", "Horror", "Comedy"}, 0)

	got := idx.TopK(0, 5)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Index, "identical document is not the query row")
	assert.InDelta(t, 1.0, got[0].Score, 1e-12)
}

func TestSimilarityIndex_TopK_ZeroRow(t *testing.T) {
	t.Parallel()

	idx := buildIndex(t, []string{"", "Drama", "Comedy"}, 0)
	assert.Equal(t, []int{1, 2}, indices(idx.TopK(0, 5)), "all zero scores fall back to index order")
}

func TestSimilarityIndex_RowIsCopy(t *testing.T) {
	t.Parallel()

	idx := buildIndex(t, []string{"Drama", "Drama"}, 0)
	row := idx.Row(0)
	row[1] = -1
	assert.InDelta(t, 1.0, idx.Score(0, 1), 1e-12)
	assert.False(t, idx.BuiltAt().IsZero())
	assert.GreaterOrEqual(t, idx.BuildDuration().Nanoseconds(), int64(0))
	assert.Equal(t, []string{"drama"}, idx.Vocabulary().Terms())
}

func indices(ns []Neighbor) []int {
	out := make([]int, len(ns))
	for i, n := range ns {
		out[i] = n.Index
	}
	return out
}

func BenchmarkBuildSimilarityIndex(b *testing.B) {
	docs := make([]string, 500)
	for i := range docs {
		docs[i] = fmt.Sprintf("genre%d genre%d actor%d", i%17, i%5, i%41)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := BuildSimilarityIndex(context.Background(), docs, IndexConfig{}); err != nil {
			b.Fatal(err)
		}
	}
}

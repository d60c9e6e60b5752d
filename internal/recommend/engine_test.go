// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package recommend

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/cinesence/internal/catalog"
)

func newIndex(t *testing.T, movies []catalog.Movie) *CatalogIndex {
	t.Helper()
	cat := catalog.New(catalog.Normalize(movies))
	ci, err := NewCatalogIndex(context.Background(), cat, DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	return ci
}

func titles(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func sampleMovies() []catalog.Movie {
	return []catalog.Movie{
		{Title: "Inception", Genres: "Action|Sci-Fi|Thriller", Actors: "Leonardo DiCaprio|Tom Hardy", OTT: "Netflix"},
		{Title: "The Dark Knight", Genres: "Action|Crime|Drama", Actors: "Christian Bale|Heath Ledger|Tom Hardy", OTT: "HBO Max"},
		{Title: "The Revenant", Genres: "Adventure|Drama", Actors: "Leonardo DiCaprio|Tom Hardy", OTT: "Prime"},
		{Title: "Interstellar", Genres: "Adventure|Drama|Sci-Fi", Actors: "Matthew McConaughey|Anne Hathaway", OTT: "Prime"},
		{Title: "The Notebook", Genres: "Drama|Romance", Actors: "Ryan Gosling|Rachel McAdams", OTT: "Netflix"},
		{Title: "La La Land", Genres: "Comedy|Drama|Romance", Actors: "Ryan Gosling|Emma Stone", OTT: "Netflix"},
		{Title: "Superbad", Genres: "Comedy", Actors: "Jonah Hill|Michael Cera", OTT: "Hulu"},
		{Title: "The Wolf of Wall Street", Genres: "Biography|Comedy|Crime", Actors: "Leonardo DiCaprio|Jonah Hill", OTT: "Paramount+"},
	}
}

func TestRecommend_GenreScenario(t *testing.T) {
	t.Parallel()

	ci := newIndex(t, []catalog.Movie{
		{Title: "A", Genres: "Comedy", Actors: "X"},
		{Title: "B", Genres: "Comedy", Actors: "Y"},
		{Title: "C", Genres: "Drama", Actors: "Z"},
	})

	assert.Equal(t, []string{"B", "C"}, titles(ci.Recommend("A", ModeGenre)))
}

func TestRecommend_UnknownTitle(t *testing.T) {
	t.Parallel()

	ci := newIndex(t, sampleMovies())

	for _, mode := range AllModes {
		t.Run(string(mode), func(t *testing.T) {
			t.Parallel()

			got := ci.Recommend("Nonexistent Movie", mode)
			assert.NotNil(t, got)
			assert.Empty(t, got)

			_, err := ci.Similar("Nonexistent Movie", mode)
			assert.ErrorIs(t, err, ErrUnknownTitle)
		})
	}

	assert.Empty(t, ci.Recommend("inception", ModeGenre), "lookup is case-sensitive")
}

func TestRecommend_ResultSize(t *testing.T) {
	t.Parallel()

	two := newIndex(t, []catalog.Movie{
		{Title: "A", Genres: "Comedy"},
		{Title: "B", Genres: "Drama"},
	})
	assert.Len(t, two.Recommend("A", ModeGenre), 1)

	one := newIndex(t, []catalog.Movie{{Title: "Solo", Genres: "Drama"}})
	assert.Empty(t, one.Recommend("Solo", ModeGenre))

	full := newIndex(t, sampleMovies())
	for _, mode := range AllModes {
		for _, title := range full.Titles() {
			recs := full.Recommend(title, mode)
			assert.Len(t, recs, DefaultTopK, "%s/%s", mode, title)
			assert.NotContains(t, titles(recs), title, "query row excluded")
			for i, r := range recs {
				assert.Equal(t, i+1, r.Rank)
			}
		}
	}
}

func TestRecommend_ActorMode(t *testing.T) {
	t.Parallel()

	ci := newIndex(t, sampleMovies())

	got := titles(ci.Recommend("Inception", ModeActor))
	require.Len(t, got, 5)
	assert.Equal(t, "The Revenant", got[0], "identical cast ranks first")
	assert.Contains(t, got[:3], "The Dark Knight")
	assert.Contains(t, got[:3], "The Wolf of Wall Street")
}

func TestRecommend_TitleMode(t *testing.T) {
	t.Parallel()

	ci := newIndex(t, []catalog.Movie{
		{Title: "Star Wars"},
		{Title: "Star Trek"},
		{Title: "The Godfather"},
		{Title: "Wars of the Roses"},
	})

	assert.Equal(t, []string{"Star Trek", "Wars of the Roses", "The Godfather"}, titles(ci.Recommend("Star Wars", ModeTitle)))
}

func TestRecommend_DisplayColumns(t *testing.T) {
	t.Parallel()

	ci := newIndex(t, sampleMovies())

	recs := ci.Recommend("Inception", ModeActor)
	require.NotEmpty(t, recs)
	assert.Equal(t, Recommendation{
		Rank:   1,
		Title:  "The Revenant",
		Genres: "Adventure|Drama",
		Actors: "Leonardo DiCaprio|Tom Hardy",
		OTT:    "Prime",
	}, recs[0], "raw pipe-delimited columns are returned")
}

func TestRecommend_EmptyText(t *testing.T) {
	t.Parallel()

	ci := newIndex(t, []catalog.Movie{
		{Title: "A", Genres: "Comedy"},
		{Title: "Blank", Genres: ""},
		{Title: "B", Genres: "Comedy|Drama"},
		{Title: "C", Genres: "Drama"},
	})

	assert.Equal(t, []string{"B", "Blank", "C"}, titles(ci.Recommend("A", ModeGenre)),
		"zero scores tie, ascending row order")
	assert.Equal(t, []string{"A", "B", "C"}, titles(ci.Recommend("Blank", ModeGenre)))
}

func TestRecommend_DuplicateTitleFirstWins(t *testing.T) {
	t.Parallel()

	ci := newIndex(t, []catalog.Movie{
		{Title: "Twin", Genres: "Horror"},
		{Title: "Scary", Genres: "Horror"},
		{Title: "Twin", Genres: "Comedy"},
		{Title: "Funny", Genres: "Comedy"},
	})

	got := titles(ci.Recommend("Twin", ModeGenre))
	assert.Equal(t, []string{"Scary", "Twin", "Funny"}, got)
	assert.Equal(t, 1, ci.Stats().DuplicateTitles)
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	t.Parallel()

	ci := newIndex(t, nil)

	for _, mode := range AllModes {
		assert.Empty(t, ci.Recommend("Anything", mode))
		_, err := ci.Similar("Anything", mode)
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	}
	assert.Empty(t, ci.Titles())
	assert.Zero(t, ci.Stats().CatalogSize)
}

func TestRecommend_UnknownMode(t *testing.T) {
	t.Parallel()

	ci := newIndex(t, sampleMovies())

	assert.Empty(t, ci.Recommend("Inception", Mode("plot")))
	_, err := ci.Similar("Inception", Mode("plot"))
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestRecommend_Deterministic(t *testing.T) {
	t.Parallel()

	a := newIndex(t, sampleMovies())
	b := newIndex(t, sampleMovies())

	for _, mode := range AllModes {
		for _, title := range a.Titles() {
			assert.Equal(t, a.Recommend(title, mode), b.Recommend(title, mode))
		}
	}
}

func TestRecommend_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	ci := newIndex(t, sampleMovies())
	want := ci.Recommend("Interstellar", ModeGenre)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.Equal(t, want, ci.Recommend("Interstellar", ModeGenre))
			}
		}()
	}
	wg.Wait()
}

func TestNewCatalogIndex_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewCatalogIndex(context.Background(), nil, nil, zerolog.Nop())
	assert.Error(t, err)

	cat := catalog.New(catalog.Normalize(sampleMovies()))
	_, err = NewCatalogIndex(context.Background(), cat, &Config{TopK: 0}, zerolog.Nop())
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewCatalogIndex(ctx, cat, nil, zerolog.Nop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewCatalogIndex_CustomTopK(t *testing.T) {
	t.Parallel()

	cat := catalog.New(catalog.Normalize(sampleMovies()))
	ci, err := NewCatalogIndex(context.Background(), cat, &Config{TopK: 2, BuildWorkers: 1}, zerolog.Nop())
	require.NoError(t, err)

	assert.Len(t, ci.Recommend("Inception", ModeGenre), 2)
	assert.Equal(t, 2, ci.GetConfig().TopK)
}

func TestCatalogIndex_Stats(t *testing.T) {
	t.Parallel()

	ci := newIndex(t, sampleMovies())
	st := ci.Stats()

	assert.Equal(t, 8, st.CatalogSize)
	assert.Equal(t, DefaultTopK, st.TopK)
	require.Len(t, st.Modes, 3)
	for _, ms := range st.Modes {
		assert.Positive(t, ms.VocabularySize, string(ms.Mode))
	}
	assert.False(t, st.BuiltAt.IsZero())
	assert.True(t, ci.Contains("Superbad"))
	assert.False(t, ci.Contains("superbad"))
	assert.Equal(t, 8, ci.Len())
}

func BenchmarkRecommend(b *testing.B) {
	movies := make([]catalog.Movie, 1000)
	for i := range movies {
		movies[i] = catalog.Movie{
			Title:  fmt.Sprintf("Movie %d", i),
			Genres: fmt.Sprintf("G%d|G%d", i%13, i%7),
			Actors: fmt.Sprintf("Actor%d|Actor%d", i%97, i%31),
		}
	}
	cat := catalog.New(catalog.Normalize(movies))
	ci, err := NewCatalogIndex(context.Background(), cat, nil, zerolog.Nop())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ci.Recommend("Movie 500", ModeGenre)
	}
}

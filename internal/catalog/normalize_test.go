// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"two values", "Action|Drama", "Action Drama"},
		{"single value", "Comedy", "Comedy"},
		{"empty", "", ""},
		{"consecutive pipes", "A||B", "A  B"},
		{"leading and trailing", "|A|", " A "},
		{"case preserved", "Sci-Fi|THRILLER", "Sci-Fi THRILLER"},
		{"unicode untouched", "Amélie|Zoë", "Amélie Zoë"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	raw := []Movie{
		{Title: "Inception", Genres: "Action|Sci-Fi", Actors: "Leonardo DiCaprio|Tom Hardy", OTT: "Netflix"},
		{Title: "Blank", Genres: "", Actors: "", OTT: ""},
	}

	got := Normalize(raw)
	require.Len(t, got, 2)

	assert.Equal(t, "Action Sci-Fi", got[0].GenresClean)
	assert.Equal(t, "Leonardo DiCaprio Tom Hardy", got[0].ActorsClean)
	assert.Equal(t, "Action|Sci-Fi", got[0].Genres, "raw column must be kept")
	assert.Equal(t, "Netflix", got[0].OTT)

	assert.Empty(t, got[1].GenresClean)
	assert.Empty(t, got[1].ActorsClean)

	assert.Empty(t, raw[0].GenresClean, "input slice must not be modified")
}

func TestNormalize_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Normalize(nil))
}

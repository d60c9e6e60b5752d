// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleCatalog() *Catalog {
	return New(Normalize([]Movie{
		{Title: "A", Genres: "Comedy", Actors: "X", OTT: "Netflix"},
		{Title: "B", Genres: "Comedy|Drama", Actors: "Y|Z", OTT: "Prime"},
		{Title: "A", Genres: "Horror", Actors: "W", OTT: "Hulu"},
		{Title: "C", Genres: "Drama", Actors: "Z", OTT: "Netflix"},
	}))
}

func TestCatalog_FirstIndexOf(t *testing.T) {
	t.Parallel()

	c := sampleCatalog()

	i, ok := c.FirstIndexOf("A")
	assert.True(t, ok)
	assert.Equal(t, 0, i, "first occurrence wins")

	i, ok = c.FirstIndexOf("C")
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = c.FirstIndexOf("a")
	assert.False(t, ok, "lookup is case-sensitive")

	_, ok = c.FirstIndexOf("Missing")
	assert.False(t, ok)
}

func TestCatalog_Accessors(t *testing.T) {
	t.Parallel()

	c := sampleCatalog()

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []string{"A", "B", "A", "C"}, c.Titles())
	assert.Equal(t, []string{"Comedy", "Comedy Drama", "Horror", "Drama"}, c.Column(FieldGenres))
	assert.Equal(t, []string{"X", "Y Z", "W", "Z"}, c.Column(FieldActors))
	assert.Equal(t, c.Titles(), c.Column(FieldTitle))
	assert.Equal(t, "Prime", c.At(1).OTT)
	assert.Equal(t, []string{"A"}, c.DuplicateTitles())
}

func TestCatalog_NewCopiesInput(t *testing.T) {
	t.Parallel()

	movies := []Movie{{Title: "Original"}}
	c := New(movies)
	movies[0].Title = "Changed"

	assert.Equal(t, "Original", c.At(0).Title)
}

func TestField_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "title", FieldTitle.String())
	assert.Equal(t, "genres_clean", FieldGenres.String())
	assert.Equal(t, "actors_clean", FieldActors.String())
	assert.Equal(t, "unknown", Field(99).String())
}

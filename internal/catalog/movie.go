// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package catalog

// Movie is a single catalog row.
type Movie struct {
	// Title is the lookup key. Uniqueness is not enforced.
	Title string `json:"title"`

	// Genres is the raw pipe-delimited genre list.
	Genres string `json:"genres"`

	// Actors is the raw pipe-delimited actor list.
	Actors string `json:"actors"`

	// OTT is the streaming platform label.
	OTT string `json:"ott"`

	// GenresClean is Genres with '|' replaced by ' '.
	GenresClean string `json:"-"`

	// ActorsClean is Actors with '|' replaced by ' '.
	ActorsClean string `json:"-"`
}

// Field names a text attribute of a Movie that can be indexed.
type Field int

const (
	// FieldTitle is the raw title.
	FieldTitle Field = iota
	// FieldGenres is the cleaned genre text.
	FieldGenres
	// FieldActors is the cleaned actor text.
	FieldActors
)

// String returns the column name for the field.
func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldGenres:
		return "genres_clean"
	case FieldActors:
		return "actors_clean"
	default:
		return "unknown"
	}
}

// Text returns the value of the given field for this movie.
//
//nolint:gocritic // Movie passed by value is small and read-only
func (m Movie) Text(f Field) string {
	switch f {
	case FieldTitle:
		return m.Title
	case FieldGenres:
		return m.GenresClean
	case FieldActors:
		return m.ActorsClean
	default:
		return ""
	}
}

// Catalog is an ordered, immutable collection of movies.
// It is safe for concurrent readers.
type Catalog struct {
	movies     []Movie
	firstIndex map[string]int
}

// New creates a catalog from already normalized movies.
// The slice is copied so later changes by the caller are not observed.
func New(movies []Movie) *Catalog {
	owned := make([]Movie, len(movies))
	copy(owned, movies)

	first := make(map[string]int, len(owned))
	for i := range owned {
		if _, seen := first[owned[i].Title]; !seen {
			first[owned[i].Title] = i
		}
	}

	return &Catalog{
		movies:     owned,
		firstIndex: first,
	}
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// At returns the movie at row i.
func (c *Catalog) At(i int) Movie {
	return c.movies[i]
}

// Titles returns all titles in catalog order.
func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.movies))
	for i := range c.movies {
		titles[i] = c.movies[i].Title
	}
	return titles
}

// Column returns the text of field f for every row, in catalog order.
func (c *Catalog) Column(f Field) []string {
	col := make([]string, len(c.movies))
	for i := range c.movies {
		col[i] = c.movies[i].Text(f)
	}
	return col
}

// FirstIndexOf returns the row of the first movie whose title equals title
// exactly (case-sensitive). The second value is false if there is none.
func (c *Catalog) FirstIndexOf(title string) (int, bool) {
	i, ok := c.firstIndex[title]
	return i, ok
}

// DuplicateTitles returns titles that occur more than once, in order of
// their first occurrence.
func (c *Catalog) DuplicateTitles() []string {
	counts := make(map[string]int, len(c.movies))
	for i := range c.movies {
		counts[c.movies[i].Title]++
	}

	var dups []string
	for i := range c.movies {
		t := c.movies[i].Title
		if counts[t] > 1 && c.firstIndex[t] == i {
			dups = append(dups, t)
		}
	}
	return dups
}

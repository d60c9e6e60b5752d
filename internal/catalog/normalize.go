// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package catalog

import "strings"

// Delimiter separates values in the raw genres and actors columns.
const Delimiter = "|"

// CleanText replaces every pipe delimiter with a single space.
// All other characters are left as they are.
func CleanText(raw string) string {
	return strings.ReplaceAll(raw, Delimiter, " ")
}

// Normalize returns a copy of movies with GenresClean and ActorsClean derived
// from the raw columns. The raw columns are not modified.
func Normalize(movies []Movie) []Movie {
	out := make([]Movie, len(movies))
	for i := range movies {
		m := movies[i]
		m.GenresClean = CleanText(m.Genres)
		m.ActorsClean = CleanText(m.Actors)
		out[i] = m
	}
	return out
}

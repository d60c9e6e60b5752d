// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

// Package catalog loads and normalizes the fixed movie catalog.
//
// # Overview
//
// A catalog is an ordered, read-only sequence of Movie records. The row
// position doubles as the movie identifier for the similarity indices built
// in package recommend, so the order produced by a Source is preserved.
//
// # Sources
//
//   - CSVSource: comma-separated file with a header row naming the columns
//     title, genres, actors and ott (read through an afero.Fs)
//   - SQLiteSource: the same four columns read from a SQLite table
//
// # Normalization
//
// Genres and actors are stored pipe-delimited ("Action|Drama"). Normalize
// derives GenresClean and ActorsClean by replacing every '|' with a single
// space. Nothing else is changed: no case folding and no Unicode
// normalization. Raw columns are kept for display.
//
// # Errors
//
// Structural problems (missing columns, unreadable source, ragged rows) are
// reported as *MalformedCatalogError at load time. An empty catalog is not an
// error here; queries against it simply return no results.
package catalog

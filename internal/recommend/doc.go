// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

// Package recommend answers "movies similar to this one" queries over a
// fixed catalog.
//
// # Architecture
//
// A CatalogIndex holds three independent similarity indices built once from
// the catalog:
//
//   - ModeTitle: bag-of-words over raw titles
//   - ModeGenre: bag-of-words over cleaned genres
//   - ModeActor: bag-of-words over cleaned actor names
//
// Each index is a dense cosine matrix from package algorithms. A query looks
// up the first catalog row whose title matches exactly, ranks every other row
// by its score in the chosen index, and returns the top K (default 5) as
// display records. Scores are never exposed.
//
// # Outcomes
//
// Recommend never fails: an unknown title, an unknown mode or an empty
// catalog all produce an empty slice. Similar returns the same ranking but
// reports ErrUnknownTitle, ErrUnknownMode and ErrEmptyCatalog so callers can
// tell "not found" from "no neighbors".
//
// # Usage
//
//	idx, err := recommend.NewCatalogIndex(ctx, cat, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	recs := idx.Recommend("Inception", recommend.ModeGenre)
//
// # Thread Safety
//
// A CatalogIndex is immutable after construction and safe for concurrent
// readers without locking.
package recommend

// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

// Package algorithms implements the bag-of-words cosine similarity index
// behind content recommendations.
//
// # Pipeline
//
//  1. Tokenizer lowercases each document, splits it into word runs and
//     drops short tokens and stop words.
//  2. Vectorize builds a sorted vocabulary over the corpus and one sparse
//     term-frequency vector per document.
//  3. BuildSimilarityIndex computes the dense N×N cosine matrix. Rows are
//     computed on a bounded worker pool (sourcegraph/conc).
//  4. SimilarityIndex.TopK ranks the other documents for one row.
//
// # Usage Example
//
//	idx, err := algorithms.BuildSimilarityIndex(ctx, genres, algorithms.IndexConfig{
//	    StopWords: algorithms.StopWordsEnglish,
//	})
//	if err != nil {
//	    return err
//	}
//	for _, n := range idx.TopK(row, 5) {
//	    fmt.Println(n.Index, n.Score)
//	}
//
// # Determinism
//
// Scores depend only on token counts, so the same documents always produce
// the same matrix regardless of worker count. TopK breaks ties by ascending
// document index.
//
// # Thread Safety
//
// A built SimilarityIndex is read-only and safe for concurrent use.
package algorithms

// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package algorithms

import (
	"math"
	"sort"
)

// Vocabulary maps each distinct token to a dense term index.
// Terms are sorted lexicographically and the index is the sorted position.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// Len returns the number of distinct terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Terms returns a copy of the sorted terms.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// IndexOf returns the term index of token.
func (v *Vocabulary) IndexOf(token string) (int, bool) {
	i, ok := v.index[token]
	return i, ok
}

// SparseVector is a term-frequency vector. Indices are strictly increasing
// and Counts[i] is the count of term Indices[i].
type SparseVector struct {
	Indices []int
	Counts  []float64
}

// Norm returns the Euclidean norm.
func (v SparseVector) Norm() float64 {
	var sum float64
	for _, c := range v.Counts {
		sum += c * c
	}
	return math.Sqrt(sum)
}

// Dot returns the inner product of two sparse vectors.
func (v SparseVector) Dot(o SparseVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(o.Indices) {
		switch {
		case v.Indices[i] == o.Indices[j]:
			sum += v.Counts[i] * o.Counts[j]
			i++
			j++
		case v.Indices[i] < o.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Vectorize tokenizes every document, builds the vocabulary over the whole
// corpus and returns one term-frequency vector per document, in input order.
func Vectorize(docs []string, tok *Tokenizer) (*Vocabulary, []SparseVector) {
	tokenized := make([][]string, len(docs))
	seen := make(map[string]struct{})
	for i, doc := range docs {
		tokenized[i] = tok.Tokenize(doc)
		for _, t := range tokenized[i] {
			seen[t] = struct{}{}
		}
	}

	terms := make([]string, 0, len(seen))
	for t := range seen {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	vocab := &Vocabulary{terms: terms, index: make(map[string]int, len(terms))}
	for i, t := range terms {
		vocab.index[t] = i
	}

	vectors := make([]SparseVector, len(docs))
	for i, tokens := range tokenized {
		counts := make(map[int]float64, len(tokens))
		for _, t := range tokens {
			counts[vocab.index[t]]++
		}

		vec := SparseVector{
			Indices: make([]int, 0, len(counts)),
			Counts:  make([]float64, 0, len(counts)),
		}
		for idx := range counts {
			vec.Indices = append(vec.Indices, idx)
		}
		sort.Ints(vec.Indices)
		for _, idx := range vec.Indices {
			vec.Counts = append(vec.Counts, counts[idx])
		}
		vectors[i] = vec
	}

	return vocab, vectors
}

// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package algorithms

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// StopWords selects the stop-word list a Tokenizer drops.
type StopWords string

const (
	// StopWordsEnglish drops the built-in English list.
	StopWordsEnglish StopWords = "english"

	// StopWordsNone keeps every token.
	StopWordsNone StopWords = "none"
)

// ParseStopWords converts a configuration value to StopWords.
// An empty string selects StopWordsEnglish.
func ParseStopWords(s string) (StopWords, error) {
	switch StopWords(strings.ToLower(strings.TrimSpace(s))) {
	case "", StopWordsEnglish:
		return StopWordsEnglish, nil
	case StopWordsNone:
		return StopWordsNone, nil
	default:
		return "", fmt.Errorf("unknown stop words %q (want %q or %q)", s, StopWordsEnglish, StopWordsNone)
	}
}

// minTokenLen is the shortest token kept, in characters.
const minTokenLen = 2

// Tokenizer splits text into bag-of-words tokens.
//
// Text is lowercased and split into maximal runs of word characters
// (letters, numbers, combining marks and '_'). Runs shorter than two
// characters and stop words are dropped. Punctuation such as '-' or '.'
// separates tokens, so "Sci-Fi" yields "sci" and "fi".
type Tokenizer struct {
	stopWords map[string]struct{}
}

// NewTokenizer creates a tokenizer using the given stop-word list.
func NewTokenizer(sw StopWords) *Tokenizer {
	t := &Tokenizer{}
	if sw == StopWordsEnglish || sw == "" {
		t.stopWords = englishStopWords
	}
	return t
}

// Tokenize returns the tokens of text in order of appearance, repeats included.
func (t *Tokenizer) Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) < minTokenLen {
			continue
		}
		if _, stop := t.stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// IsStopWord reports whether word is dropped by this tokenizer.
func (t *Tokenizer) IsStopWord(word string) bool {
	_, ok := t.stopWords[strings.ToLower(word)]
	return ok
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

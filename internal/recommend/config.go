// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package recommend

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinesence/internal/recommend/algorithms"
)

// DefaultTopK is the number of recommendations returned per query.
const DefaultTopK = 5

// Config contains all configuration for building a CatalogIndex.
type Config struct {
	// TopK is the maximum number of recommendations per query.
	// Default: 5.
	TopK int `json:"top_k"`

	// StopWords selects the stop-word list used by the tokenizer.
	// Default: english.
	StopWords algorithms.StopWords `json:"stop_words"`

	// BuildWorkers bounds the goroutines computing each similarity matrix.
	// Zero uses GOMAXPROCS.
	BuildWorkers int `json:"build_workers"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		TopK:      DefaultTopK,
		StopWords: algorithms.StopWordsEnglish,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.TopK <= 0 {
		return fmt.Errorf("top_k must be positive, got %d", c.TopK)
	}
	if c.BuildWorkers < 0 {
		return fmt.Errorf("build_workers must be non-negative, got %d", c.BuildWorkers)
	}
	if _, err := algorithms.ParseStopWords(string(c.StopWords)); err != nil {
		return err
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// MarshalJSON encodes the configuration with defaults made explicit.
func (c *Config) MarshalJSON() ([]byte, error) {
	type alias Config
	out := alias(*c)
	if out.StopWords == "" {
		out.StopWords = algorithms.StopWordsEnglish
	}
	return json.Marshal(out)
}

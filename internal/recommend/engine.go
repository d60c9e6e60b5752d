// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinesence/internal/catalog"
	"github.com/tomtom215/cinesence/internal/recommend/algorithms"
)

// CatalogIndex holds the catalog and one similarity index per mode.
// It is immutable after NewCatalogIndex returns.
type CatalogIndex struct {
	catalog *catalog.Catalog
	indices map[Mode]*algorithms.SimilarityIndex
	config  Config
	logger  zerolog.Logger

	builtAt       time.Time
	buildDuration time.Duration
}

// NewCatalogIndex builds the title, genre and actor indices for cat.
// An empty catalog yields a usable index whose queries return nothing.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogIndex(ctx context.Context, cat *catalog.Catalog, cfg *Config, logger zerolog.Logger) (*CatalogIndex, error) {
	if cat == nil {
		return nil, errors.New("catalog is nil")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	ci := &CatalogIndex{
		catalog: cat,
		indices: make(map[Mode]*algorithms.SimilarityIndex, len(AllModes)),
		config:  *cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
	}

	start := time.Now()

	if cat.Len() == 0 {
		ci.logger.Warn().Msg("Catalog is empty, skipping index build")
		ci.builtAt = time.Now()
		return ci, nil
	}

	for _, mode := range AllModes {
		idx, err := algorithms.BuildSimilarityIndex(ctx, cat.Column(mode.Field()), algorithms.IndexConfig{
			StopWords: cfg.StopWords,
			Workers:   cfg.BuildWorkers,
		})
		if err != nil {
			return nil, fmt.Errorf("build %s index: %w", mode, err)
		}
		ci.indices[mode] = idx

		ci.logger.Debug().
			Str("mode", string(mode)).
			Int("vocabulary", idx.VocabularySize()).
			Dur("duration", idx.BuildDuration()).
			Msg("Similarity index built")
	}

	ci.builtAt = time.Now()
	ci.buildDuration = time.Since(start)

	ci.logger.Info().
		Int("movies", cat.Len()).
		Int("top_k", ci.config.TopK).
		Dur("duration", ci.buildDuration).
		Msg("Catalog index ready")

	return ci, nil
}

// Recommend returns up to TopK movies most similar to title in the given
// mode, most similar first. Unknown titles, unknown modes and an empty
// catalog all yield an empty slice.
func (ci *CatalogIndex) Recommend(title string, mode Mode) []Recommendation {
	recs, err := ci.Similar(title, mode)
	if err != nil {
		ci.logger.Debug().
			Err(err).
			Str("title", title).
			Str("mode", string(mode)).
			Msg("No recommendations")
		return []Recommendation{}
	}
	return recs
}

// Similar is Recommend with the reason for an empty result reported as an
// error. The first catalog row with an exactly equal title is the query row.
func (ci *CatalogIndex) Similar(title string, mode Mode) ([]Recommendation, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if ci.catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	row, ok := ci.catalog.FirstIndexOf(title)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTitle, title)
	}

	neighbors := ci.indices[mode].TopK(row, ci.config.TopK)

	recs := make([]Recommendation, len(neighbors))
	for i, n := range neighbors {
		m := ci.catalog.At(n.Index)
		recs[i] = Recommendation{
			Rank:   i + 1,
			Title:  m.Title,
			Genres: m.Genres,
			Actors: m.Actors,
			OTT:    m.OTT,
		}
	}
	return recs, nil
}

// Titles returns every catalog title in catalog order.
func (ci *CatalogIndex) Titles() []string {
	return ci.catalog.Titles()
}

// Contains reports whether title is in the catalog.
func (ci *CatalogIndex) Contains(title string) bool {
	_, ok := ci.catalog.FirstIndexOf(title)
	return ok
}

// Len returns the catalog size.
func (ci *CatalogIndex) Len() int {
	return ci.catalog.Len()
}

// Modes lists the three modes with their labels.
func (ci *CatalogIndex) Modes() []ModeInfo {
	return Modes()
}

// Modes lists the three modes with their labels in display order.
func Modes() []ModeInfo {
	out := make([]ModeInfo, len(AllModes))
	for i, m := range AllModes {
		out[i] = ModeInfo{Mode: m, Label: m.Label(), Field: m.Field().String()}
	}
	return out
}

// GetConfig returns a copy of the build configuration.
func (ci *CatalogIndex) GetConfig() *Config {
	return ci.config.Clone()
}

// Stats reports catalog size, vocabulary sizes and build timings.
func (ci *CatalogIndex) Stats() Stats {
	st := Stats{
		CatalogSize:     ci.catalog.Len(),
		DuplicateTitles: len(ci.catalog.DuplicateTitles()),
		TopK:            ci.config.TopK,
		Modes:           make([]ModeStats, 0, len(AllModes)),
		BuiltAt:         ci.builtAt,
		BuildDuration:   ci.buildDuration,
	}
	for _, m := range AllModes {
		ms := ModeStats{Mode: m}
		if idx, ok := ci.indices[m]; ok {
			ms.VocabularySize = idx.VocabularySize()
			ms.BuildDuration = idx.BuildDuration()
		}
		st.Modes = append(st.Modes, ms)
	}
	return st
}

// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Column names every source must provide.
const (
	ColumnTitle  = "title"
	ColumnGenres = "genres"
	ColumnActors = "actors"
	ColumnOTT    = "ott"
)

// RequiredColumns lists the columns in their canonical order.
var RequiredColumns = []string{ColumnTitle, ColumnGenres, ColumnActors, ColumnOTT}

// Source produces the raw movie rows of a catalog in a stable order.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string

	// Load reads all rows. Derived fields are left empty.
	Load(ctx context.Context) ([]Movie, error)
}

// Load reads src, normalizes every row, and returns the resulting catalog.
// Duplicate titles are logged as a warning; the first occurrence is the one
// that queries resolve to.
func Load(ctx context.Context, src Source, logger zerolog.Logger) (*Catalog, error) {
	start := time.Now()

	rows, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", src.Name(), err)
	}

	cat := New(Normalize(rows))

	if dups := cat.DuplicateTitles(); len(dups) > 0 {
		logger.Warn().
			Str("source", src.Name()).
			Strs("titles", dups).
			Int("count", len(dups)).
			Msg("Catalog contains duplicate titles, first occurrence wins")
	}

	if cat.Len() == 0 {
		logger.Warn().Str("source", src.Name()).Msg("Catalog is empty, recommendations will be empty")
	}

	logger.Info().
		Str("source", src.Name()).
		Int("movies", cat.Len()).
		Dur("duration", time.Since(start)).
		Msg("Catalog loaded")

	return cat, nil
}

// missingColumns returns the required columns absent from present.
func missingColumns(present map[string]int) []string {
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

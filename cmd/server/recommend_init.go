// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinesence/internal/api"
	"github.com/tomtom215/cinesence/internal/catalog"
	"github.com/tomtom215/cinesence/internal/config"
	"github.com/tomtom215/cinesence/internal/logging"
	"github.com/tomtom215/cinesence/internal/recommend"
	"github.com/tomtom215/cinesence/internal/recommend/algorithms"
	"github.com/tomtom215/cinesence/internal/supervisor"
	"github.com/tomtom215/cinesence/internal/supervisor/services"
)

// newCatalogSource selects the catalog reader named by the configuration.
func newCatalogSource(cfg *config.Config) (catalog.Source, error) {
	switch cfg.Catalog.Source {
	case config.SourceCSV, "":
		return catalog.NewCSVSource(nil, cfg.Catalog.Path), nil
	case config.SourceSQLite:
		return catalog.NewSQLiteSource(cfg.Catalog.Path, cfg.Catalog.Table), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

// loadCatalog reads and normalizes the catalog once at startup.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	src, err := newCatalogSource(cfg)
	if err != nil {
		return nil, err
	}
	return catalog.Load(ctx, src, logging.WithComponent("catalog"))
}

// buildRecommendConfig converts the recommend section of the service
// configuration into an index build configuration.
func buildRecommendConfig(cfg *config.Config) (*recommend.Config, error) {
	stopWords, err := algorithms.ParseStopWords(cfg.Recommend.StopWords)
	if err != nil {
		return nil, err
	}

	rc := recommend.DefaultConfig()
	if cfg.Recommend.TopK > 0 {
		rc.TopK = cfg.Recommend.TopK
	}
	rc.StopWords = stopWords
	rc.BuildWorkers = cfg.Recommend.BuildWorkers

	if err := rc.Validate(); err != nil {
		return nil, err
	}
	return rc, nil
}

// initRecommend registers the one-shot index build on the index layer. The
// built index is attached to handler when ready.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cat *catalog.Catalog, cfg *config.Config, logger zerolog.Logger, tree *supervisor.SupervisorTree, handler *api.Handler) *services.IndexService {
	build := func(ctx context.Context) (*recommend.CatalogIndex, error) {
		rc, err := buildRecommendConfig(cfg)
		if err != nil {
			return nil, err
		}
		return recommend.NewCatalogIndex(ctx, cat, rc, logger)
	}

	svc := services.NewIndexService(build, func(idx *recommend.CatalogIndex) {
		handler.SetIndex(idx)
	}, logger)
	tree.AddIndexService(svc)

	logger.Info().
		Int("movies", cat.Len()).
		Str("stop_words", cfg.Recommend.StopWords).
		Msg("Catalog index build scheduled")

	return svc
}

// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/cinesence/internal/metrics"
	"github.com/tomtom215/cinesence/internal/recommend"
)

// DefaultBuildTimeout bounds a single index build attempt.
const DefaultBuildTimeout = 5 * time.Minute

// BuildFunc builds the catalog index.
type BuildFunc func(ctx context.Context) (*recommend.CatalogIndex, error)

// PublishFunc receives the built index, typically api.Handler.SetIndex.
type PublishFunc func(index *recommend.CatalogIndex)

// IndexService builds the catalog index once under supervision.
//
// A failed build is returned to suture, which restarts the service with
// backoff. A successful build is published, recorded in metrics, and the
// service exits with suture.ErrDoNotRestart.
type IndexService struct {
	build        BuildFunc
	publish      PublishFunc
	buildTimeout time.Duration
	logger       zerolog.Logger
	name         string

	doneOnce sync.Once
	done     chan struct{}
}

// NewIndexService creates the index build service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewIndexService(build BuildFunc, publish PublishFunc, logger zerolog.Logger) *IndexService {
	return &IndexService{
		build:        build,
		publish:      publish,
		buildTimeout: DefaultBuildTimeout,
		logger:       logger.With().Str("service", "index").Logger(),
		name:         "index-service",
		done:         make(chan struct{}),
	}
}

// SetBuildTimeout overrides DefaultBuildTimeout. Call before the tree starts.
func (s *IndexService) SetBuildTimeout(d time.Duration) {
	if d > 0 {
		s.buildTimeout = d
	}
}

// Done is closed once an index has been published.
func (s *IndexService) Done() <-chan struct{} {
	return s.done
}

// Serve implements suture.Service.
func (s *IndexService) Serve(ctx context.Context) error {
	if s.build == nil || s.publish == nil {
		return errors.New("index service requires build and publish functions")
	}

	buildCtx, cancel := context.WithTimeout(ctx, s.buildTimeout)
	defer cancel()

	start := time.Now()
	s.logger.Info().Msg("building catalog index")

	index, err := s.build(buildCtx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.logger.Error().Err(err).Msg("catalog index build failed")
		return fmt.Errorf("build catalog index: %w", err)
	}

	s.publish(index)
	recordIndexMetrics(index.Stats())

	s.logger.Info().
		Int("movies", index.Len()).
		Dur("duration", time.Since(start)).
		Msg("catalog index published")

	s.doneOnce.Do(func() { close(s.done) })
	return suture.ErrDoNotRestart
}

func recordIndexMetrics(stats recommend.Stats) {
	metrics.RecordCatalog(stats.CatalogSize, stats.DuplicateTitles)
	for _, ms := range stats.Modes {
		metrics.RecordIndexBuild(string(ms.Mode), ms.BuildDuration, ms.VocabularySize)
	}
}

// String returns the service name for logging.
func (s *IndexService) String() string {
	return s.name
}

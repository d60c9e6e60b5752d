// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/cinesence/internal/catalog"
	"github.com/tomtom215/cinesence/internal/metrics"
	"github.com/tomtom215/cinesence/internal/recommend"
)

func buildFromMovies(movies []catalog.Movie) BuildFunc {
	return func(ctx context.Context) (*recommend.CatalogIndex, error) {
		cat := catalog.New(catalog.Normalize(movies))
		return recommend.NewCatalogIndex(ctx, cat, recommend.DefaultConfig(), zerolog.Nop())
	}
}

func TestIndexService_Interface(t *testing.T) {
	var _ suture.Service = (*IndexService)(nil)
}

func TestIndexService_PublishesOnce(t *testing.T) {
	movies := []catalog.Movie{
		{Title: "A", Genres: "Comedy", Actors: "X Y"},
		{Title: "B", Genres: "Comedy|Drama", Actors: "Y Z"},
		{Title: "B", Genres: "Horror", Actors: "Q"},
	}

	var published atomic.Pointer[recommend.CatalogIndex]
	svc := NewIndexService(buildFromMovies(movies), func(idx *recommend.CatalogIndex) {
		published.Store(idx)
	}, zerolog.Nop())

	err := svc.Serve(context.Background())
	if !errors.Is(err, suture.ErrDoNotRestart) {
		t.Fatalf("expected ErrDoNotRestart, got %v", err)
	}

	idx := published.Load()
	if idx == nil {
		t.Fatal("index was not published")
	}
	if idx.Len() != 3 {
		t.Errorf("expected 3 movies, got %d", idx.Len())
	}

	select {
	case <-svc.Done():
	default:
		t.Error("Done channel not closed after publish")
	}

	if got := testutil.ToFloat64(metrics.CatalogMovies); got != 3 {
		t.Errorf("expected catalog gauge 3, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.CatalogDuplicateTitles); got != 1 {
		t.Errorf("expected duplicate gauge 1, got %v", got)
	}
}

func TestIndexService_BuildErrorIsRetried(t *testing.T) {
	var attempts atomic.Int32
	buildErr := errors.New("catalog unavailable")

	svc := NewIndexService(func(ctx context.Context) (*recommend.CatalogIndex, error) {
		if attempts.Add(1) < 3 {
			return nil, buildErr
		}
		return buildFromMovies([]catalog.Movie{{Title: "Only", Genres: "Drama"}})(ctx)
	}, func(*recommend.CatalogIndex) {}, zerolog.Nop())

	sup := suture.New("test-sup", suture.Spec{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          time.Second,
	})
	sup.Add(svc)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	errCh := sup.ServeBackground(ctx)

	select {
	case <-svc.Done():
	case <-ctx.Done():
		t.Fatal("index was never published")
	}

	if got := attempts.Load(); got != 3 {
		t.Errorf("expected 3 build attempts, got %d", got)
	}

	cancel()
	<-errCh
}

func TestIndexService_ReturnsBuildError(t *testing.T) {
	buildErr := errors.New("boom")
	svc := NewIndexService(func(context.Context) (*recommend.CatalogIndex, error) {
		return nil, buildErr
	}, func(*recommend.CatalogIndex) {
		t.Error("publish must not be called on failure")
	}, zerolog.Nop())

	err := svc.Serve(context.Background())
	if !errors.Is(err, buildErr) {
		t.Errorf("expected wrapped build error, got %v", err)
	}
}

func TestIndexService_CanceledContext(t *testing.T) {
	svc := NewIndexService(func(ctx context.Context) (*recommend.CatalogIndex, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}, func(*recommend.CatalogIndex) {}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestIndexService_MissingFuncs(t *testing.T) {
	svc := NewIndexService(nil, nil, zerolog.Nop())
	if err := svc.Serve(context.Background()); err == nil {
		t.Error("expected error without build and publish functions")
	}
}

func TestIndexService_SetBuildTimeout(t *testing.T) {
	svc := NewIndexService(nil, nil, zerolog.Nop())

	svc.SetBuildTimeout(0)
	if svc.buildTimeout != DefaultBuildTimeout {
		t.Errorf("expected default timeout kept, got %v", svc.buildTimeout)
	}

	svc.SetBuildTimeout(time.Second)
	if svc.buildTimeout != time.Second {
		t.Errorf("expected 1s, got %v", svc.buildTimeout)
	}
}

func TestIndexService_String(t *testing.T) {
	if got := NewIndexService(nil, nil, zerolog.Nop()).String(); got != "index-service" {
		t.Errorf("expected 'index-service', got %q", got)
	}
}

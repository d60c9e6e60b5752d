// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package api

import (
	"sync/atomic"
	"time"

	"github.com/tomtom215/cinesence/internal/cache"
	"github.com/tomtom215/cinesence/internal/models"
	"github.com/tomtom215/cinesence/internal/recommend"
)

// DefaultResultCacheSize is the number of found recommendation responses kept
// per attached index.
const DefaultResultCacheSize = 1024

// Recommender is the query surface the handlers need from the catalog index.
// *recommend.CatalogIndex implements it.
type Recommender interface {
	Similar(title string, mode recommend.Mode) ([]recommend.Recommendation, error)
	Titles() []string
	Stats() recommend.Stats
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and validation helpers
//   - handlers_movies.go: selection list
//   - handlers_recommend.go: modes and recommendation queries
//   - handlers_health.go: liveness and readiness probes
type Handler struct {
	index     atomic.Pointer[recommenderBox]
	cacheSize atomic.Int64
	version   string
	startTime time.Time
}

// recommenderBox lets an interface value live behind atomic.Pointer. Each
// attached index gets its own result cache, so swapping the index drops
// stale results.
type recommenderBox struct {
	r       Recommender
	results *cache.LRU[models.RecommendationsResponse]
}

// NewHandler creates a handler. index may be nil; readiness then reports
// 503 and query endpoints answer NOT_READY until SetIndex is called.
func NewHandler(index Recommender, version string) *Handler {
	h := &Handler{
		version:   version,
		startTime: time.Now(),
	}
	h.cacheSize.Store(DefaultResultCacheSize)
	if index != nil {
		h.SetIndex(index)
	}
	return h
}

// SetIndex attaches the catalog index. Safe for concurrent use with requests.
func (h *Handler) SetIndex(index Recommender) {
	if index == nil {
		h.index.Store(nil)
		return
	}
	h.index.Store(&recommenderBox{
		r:       index,
		results: cache.NewLRU[models.RecommendationsResponse](int(h.cacheSize.Load())),
	})
}

// SetResultCacheSize changes the capacity used for caches created by later
// SetIndex calls. The cache of an already attached index keeps its size.
// Safe for concurrent use with SetIndex.
func (h *Handler) SetResultCacheSize(size int) {
	h.cacheSize.Store(int64(size))
}

// recommender returns the attached index or nil.
func (h *Handler) recommender() Recommender {
	if box := h.index.Load(); box != nil {
		return box.r
	}
	return nil
}

// CacheStats returns the result cache statistics of the attached index.
func (h *Handler) CacheStats() (cache.Stats, bool) {
	if box := h.index.Load(); box != nil {
		return box.results.Stats(), true
	}
	return cache.Stats{}, false
}

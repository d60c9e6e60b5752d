// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes.
const (
	OutcomeFound        = "found"
	OutcomeUnknownTitle = "unknown_title"
	OutcomeEmptyCatalog = "empty_catalog"
)

var (
	// Catalog Metrics
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinesence_catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	CatalogDuplicateTitles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinesence_catalog_duplicate_titles",
			Help: "Number of titles that occur more than once in the catalog",
		},
	)

	// Similarity Index Metrics
	IndexBuildDuration = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cinesence_index_build_duration_seconds",
			Help: "Time taken to build each similarity index",
		},
		[]string{"mode"},
	)

	IndexVocabularySize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cinesence_index_vocabulary_size",
			Help: "Number of distinct terms in each similarity index",
		},
		[]string{"mode"},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinesence_recommendations_total",
			Help: "Total number of recommendation queries by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinesence_recommendation_duration_seconds",
			Help:    "Recommendation query latency in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
		[]string{"mode"},
	)

	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinesence_recommendation_results",
			Help:    "Number of movies returned per recommendation query",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 10, 20},
		},
	)

	RecommendationCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinesence_recommendation_cache_lookups_total",
			Help: "Recommendation result cache lookups by result (hit or miss)",
		},
		[]string{"result"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)
)

// RecordCatalog records catalog size metrics after a load.
func RecordCatalog(movies, duplicateTitles int) {
	CatalogMovies.Set(float64(movies))
	CatalogDuplicateTitles.Set(float64(duplicateTitles))
}

// RecordIndexBuild records the build of one similarity index.
func RecordIndexBuild(mode string, duration time.Duration, vocabularySize int) {
	IndexBuildDuration.WithLabelValues(mode).Set(duration.Seconds())
	IndexVocabularySize.WithLabelValues(mode).Set(float64(vocabularySize))
}

// RecordRecommendation records one recommendation query.
func RecordRecommendation(mode, outcome string, results int, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(mode, outcome).Inc()
	RecommendationDuration.WithLabelValues(mode).Observe(duration.Seconds())
	RecommendationResults.Observe(float64(results))
}

// RecordCacheLookup records a recommendation result cache hit or miss
func RecordCacheLookup(hit bool) {
	if hit {
		RecommendationCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	RecommendationCacheLookups.WithLabelValues("miss").Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// # Catalog and Index
//
//   - cinesence_catalog_movies: catalog size
//   - cinesence_catalog_duplicate_titles: titles shadowed by an earlier row
//   - cinesence_index_build_duration_seconds{mode}: matrix build time
//   - cinesence_index_vocabulary_size{mode}: distinct terms per mode
//
// # Queries
//
//   - cinesence_recommendations_total{mode,outcome}: outcome is found,
//     unknown_title or empty_catalog
//   - cinesence_recommendation_duration_seconds{mode}
//   - cinesence_recommendation_results: result list sizes
//
// # HTTP
//
//   - api_requests_total{method,endpoint,status_code}
//   - api_request_duration_seconds{method,endpoint}
//   - api_active_requests
//   - api_rate_limit_hits_total{endpoint}
//
// Collectors are registered with the default registry through promauto.
package metrics

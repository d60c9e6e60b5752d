// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - RequestID: UUID request IDs, propagated to the logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation

Both are written as http.HandlerFunc wrappers. The api package adapts them to
chi's func(http.Handler) http.Handler form:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

PrometheusMetrics labels requests with the matched chi route pattern rather
than the raw path, so /api/v1/recommendations/{mode} is one series.
*/
package middleware

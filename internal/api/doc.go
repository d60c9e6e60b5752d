// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

/*
Package api serves the movie recommender over HTTP using the chi router.

Endpoints:

	GET /api/v1/movies                          selection list, catalog order
	GET /api/v1/recommendations/modes           the three similarity views
	GET /api/v1/recommendations/{mode}?title=   up to K similar movies
	GET /api/v1/health/live                     liveness probe
	GET /api/v1/health/ready                    readiness probe
	GET /metrics                                Prometheus exposition

{mode} is title, genre or actor; the display labels ("Genre-Based") are
accepted too. An unknown mode is a 400. An unknown title is not an error:
the response is 200 with found=false and an empty results list.

Middleware stack, outermost first: request ID, real IP, panic recovery,
CORS, gzip compression, then per-group rate limiting, security headers and
Prometheus instrumentation.
*/
package api

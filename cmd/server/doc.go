// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

// Package main is the entry point for the CineSence server.
//
// CineSence recommends movies that are similar to a chosen title by title
// words, by genre, or by cast, using bag-of-words cosine similarity over a
// static catalog.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional YAML file, environment (Koanf v2)
//  2. Logging: zerolog, optionally with a rotated log file
//  3. Catalog: read once from CSV or SQLite; a malformed catalog is fatal
//  4. Supervisor tree: the index layer builds the three similarity
//     indices once, the API layer serves HTTP immediately
//
// Readiness (/api/v1/health/ready) turns 200 once the indices are built.
//
// # Configuration
//
//	CATALOG_SOURCE=csv|sqlite   (default csv)
//	CATALOG_PATH=data/movies.csv
//	CATALOG_TABLE=movies        (sqlite only)
//	RECOMMEND_TOP_K=5
//	RECOMMEND_STOP_WORDS=english|none
//	HTTP_PORT=8501
//	LOG_LEVEL=info LOG_FORMAT=json LOG_FILE=
//
// A YAML file is read from CONFIG_PATH, or ./config.yaml, or
// /etc/cinesence/config.yaml when present.
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the root context. The supervisor stops the HTTP
// server, which drains in-flight requests for up to
// HTTP_SHUTDOWN_TIMEOUT.
//
// # Example Usage
//
//	CATALOG_PATH=./movies.csv LOG_FORMAT=console ./cinesence
//	curl 'localhost:8501/api/v1/recommendations/genre?title=Inception'
package main

// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

// Package cache provides a bounded least-recently-used cache.
//
// The API layer keeps one LRU of recommendation results per catalog index.
// Index contents never change after a build, so entries carry no TTL; a new
// index gets a new cache.
package cache

// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

// Package services provides suture.Service wrappers for the components that
// run under the supervisor tree: the one-shot catalog index build and the
// HTTP server.
package services

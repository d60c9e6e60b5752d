// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

// Package logging provides centralized zerolog-based structured logging for CineSence.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//	defer logging.Close()
//
//	logging.Info().Int("movies", n).Msg("Catalog loaded")
//	logging.Ctx(ctx).Warn().Str("title", title).Msg("Unknown title")
//
// # Outputs
//
// Logs always go to Output (stderr by default). When File is set the same
// events are also written to a size-rotated file managed by lumberjack.
//
// # Context
//
// Request IDs and correlation IDs travel in the context. Ctx(ctx) returns a
// logger carrying both as fields.
//
// # slog
//
// SlogHandler adapts zerolog to log/slog so libraries such as sutureslog log
// through the same pipeline.
package logging

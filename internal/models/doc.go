// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

/*
Package models defines the JSON shapes served by the HTTP API.

Every endpoint answers with an APIResponse envelope:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "2026-01-01T12:00:00Z", "query_time_ms": 0}
	}

Errors use the same envelope with status "error" and a populated error
object carrying a machine-readable code.
*/
package models

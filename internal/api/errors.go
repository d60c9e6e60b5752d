// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package api

import "errors"

// ErrIndexNotReady is reported when a handler runs before the catalog index
// has been attached.
var ErrIndexNotReady = errors.New("catalog index is not ready")

// Error codes returned in the response envelope.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidMode      = "INVALID_MODE"
	CodeNotReady         = "NOT_READY"
	CodeRateLimited      = "RATE_LIMIT_EXCEEDED"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternal         = "INTERNAL_ERROR"
)

// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package catalog

import (
	"errors"
	"fmt"
)

// ErrMissingColumns is wrapped by MalformedCatalogError when the source does
// not provide every required column.
var ErrMissingColumns = errors.New("missing required columns")

// MalformedCatalogError reports a catalog that cannot be used at all.
// It is returned at load time, before any index is built.
type MalformedCatalogError struct {
	// Source identifies where the catalog came from (file path, table).
	Source string

	// Reason is a short human-readable description.
	Reason string

	// Err is the underlying cause, if any.
	Err error
}

func (e *MalformedCatalogError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed catalog %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed catalog %s: %s", e.Source, e.Reason)
}

func (e *MalformedCatalogError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err is, or wraps, a MalformedCatalogError.
func IsMalformed(err error) bool {
	var mce *MalformedCatalogError
	return errors.As(err, &mce)
}

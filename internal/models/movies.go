// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package models

import (
	"time"
)

// MoviesResponse is the selection list: every catalog title in catalog order.
type MoviesResponse struct {
	Titles []string `json:"titles"`
	Count  int      `json:"count"`
}

// RecommendationItem is one row of a recommendation table.
type RecommendationItem struct {
	Rank   int    `json:"rank"`
	Title  string `json:"title"`
	Genres string `json:"genres"`
	Actors string `json:"actors"`
	OTT    string `json:"ott"`
}

// RecommendationsResponse answers a recommendation query. Found is false
// when the title is not in the catalog; Results is then empty, never null.
type RecommendationsResponse struct {
	Title   string               `json:"title"`
	Mode    string               `json:"mode"`
	Label   string               `json:"label"`
	Found   bool                 `json:"found"`
	Results []RecommendationItem `json:"results"`
	Count   int                  `json:"count"`
}

// ModeItem describes one similarity view.
type ModeItem struct {
	Mode  string `json:"mode"`
	Label string `json:"label"`
	Field string `json:"field"`
}

// ModesResponse lists the available similarity views.
type ModesResponse struct {
	Modes []ModeItem `json:"modes"`
	TopK  int        `json:"top_k"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status       string    `json:"status"`
	Version      string    `json:"version,omitempty"`
	Uptime       float64   `json:"uptime_seconds"`
	CatalogSize  int       `json:"catalog_size"`
	IndexBuiltAt time.Time `json:"index_built_at,omitempty"`
	IndexBuildMS int64     `json:"index_build_ms"`
	IndexReady   bool      `json:"index_ready"`
}

// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package recommend

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/cinesence/internal/catalog"
)

// Sentinel errors reported by CatalogIndex.Similar.
var (
	// ErrUnknownTitle means no catalog row has exactly the queried title.
	ErrUnknownTitle = errors.New("title not in catalog")

	// ErrEmptyCatalog means the catalog has no movies.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrUnknownMode means the requested mode is not one of the three views.
	ErrUnknownMode = errors.New("unknown recommendation mode")
)

// Mode selects which similarity index answers a query.
type Mode string

const (
	// ModeTitle ranks by title word overlap.
	ModeTitle Mode = "title"
	// ModeGenre ranks by genre overlap.
	ModeGenre Mode = "genre"
	// ModeActor ranks by shared actor names.
	ModeActor Mode = "actor"
)

// AllModes lists the modes in display order.
var AllModes = []Mode{ModeTitle, ModeGenre, ModeActor}

// ParseMode converts a string such as "genre" or "Genre-Based" to a Mode.
func ParseMode(s string) (Mode, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimSuffix(v, "-based")
	for _, m := range AllModes {
		if v == string(m) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeTitle, ModeGenre, ModeActor:
		return true
	default:
		return false
	}
}

// Label returns the display name of the mode.
func (m Mode) Label() string {
	switch m {
	case ModeTitle:
		return "Title-Based"
	case ModeGenre:
		return "Genre-Based"
	case ModeActor:
		return "Actor-Based"
	default:
		return "Unknown"
	}
}

// Field returns the catalog column the mode indexes.
func (m Mode) Field() catalog.Field {
	switch m {
	case ModeGenre:
		return catalog.FieldGenres
	case ModeActor:
		return catalog.FieldActors
	default:
		return catalog.FieldTitle
	}
}

// ModeInfo describes a mode for listing endpoints.
type ModeInfo struct {
	Mode  Mode   `json:"mode"`
	Label string `json:"label"`
	Field string `json:"field"`
}

// Recommendation is one recommended movie. It carries display columns only.
type Recommendation struct {
	// Rank is the 1-based position in the result list.
	Rank int `json:"rank"`

	Title  string `json:"title"`
	Genres string `json:"genres"`
	Actors string `json:"actors"`
	OTT    string `json:"ott"`
}

// ModeStats describes one built index.
type ModeStats struct {
	Mode           Mode          `json:"mode"`
	VocabularySize int           `json:"vocabulary_size"`
	BuildDuration  time.Duration `json:"build_duration_ns"`
}

// Stats describes a CatalogIndex.
type Stats struct {
	CatalogSize     int           `json:"catalog_size"`
	DuplicateTitles int           `json:"duplicate_titles"`
	TopK            int           `json:"top_k"`
	Modes           []ModeStats   `json:"modes"`
	BuiltAt         time.Time     `json:"built_at"`
	BuildDuration   time.Duration `json:"build_duration_ns"`
}

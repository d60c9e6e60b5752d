// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinesence/internal/models"
)

// Movies handles GET /api/v1/movies
//
// @Summary List catalog titles
// @Description Returns every title in catalog order, duplicates included. This is the selection list for recommendation queries.
// @Tags Movies
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.MoviesResponse}
// @Failure 503 {object} models.APIResponse "Index not ready"
// @Router /movies [get]
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	index := h.recommender()
	if index == nil {
		respondError(w, r, http.StatusServiceUnavailable, CodeNotReady, "Catalog is not loaded yet", ErrIndexNotReady)
		return
	}

	start := time.Now()
	titles := index.Titles()
	if titles == nil {
		titles = []string{}
	}

	respondSuccess(w, r, models.MoviesResponse{
		Titles: titles,
		Count:  len(titles),
	}, time.Since(start))
}

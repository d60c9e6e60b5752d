// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinesence/internal/logging"
	"github.com/tomtom215/cinesence/internal/metrics"
	"github.com/tomtom215/cinesence/internal/models"
	"github.com/tomtom215/cinesence/internal/recommend"
)

// RecommendationRequest holds the parsed parameters of a recommendation query.
type RecommendationRequest struct {
	Mode  string `query:"mode" validate:"required,recmode"`
	Title string `query:"title" validate:"required,movietitle,max=500"`
}

// Modes handles GET /api/v1/recommendations/modes
//
// @Summary List similarity views
// @Tags Recommendations
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ModesResponse}
// @Router /recommendations/modes [get]
func (h *Handler) Modes(w http.ResponseWriter, r *http.Request) {
	infos := recommend.Modes()
	items := make([]models.ModeItem, len(infos))
	for i, info := range infos {
		items[i] = models.ModeItem{
			Mode:  string(info.Mode),
			Label: info.Label,
			Field: info.Field,
		}
	}

	topK := recommend.DefaultTopK
	if index := h.recommender(); index != nil {
		topK = index.Stats().TopK
	}

	respondSuccess(w, r, models.ModesResponse{Modes: items, TopK: topK}, 0)
}

// Recommendations handles GET /api/v1/recommendations/{mode}?title=...
//
// @Summary Recommend similar movies
// @Description Returns up to K movies most similar to the given title in the chosen view, most similar first. An unknown title yields found=false and an empty list.
// @Tags Recommendations
// @Produce json
// @Param mode path string true "Similarity view" Enums(title, genre, actor)
// @Param title query string true "Exact catalog title"
// @Success 200 {object} models.APIResponse{data=models.RecommendationsResponse}
// @Failure 400 {object} models.APIResponse "Invalid mode or title"
// @Failure 503 {object} models.APIResponse "Index not ready"
// @Router /recommendations/{mode} [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	mode, err := recommend.ParseMode(chi.URLParam(r, "mode"))
	if err != nil {
		respondAPIError(w, r, http.StatusBadRequest, &models.APIError{
			Code:    CodeInvalidMode,
			Message: "Mode must be one of title, genre, actor",
			Details: map[string]interface{}{"mode": sanitizeLogValue(chi.URLParam(r, "mode"))},
		})
		return
	}

	req := RecommendationRequest{
		Mode:  string(mode),
		Title: r.URL.Query().Get("title"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	box := h.index.Load()
	if box == nil {
		respondError(w, r, http.StatusServiceUnavailable, CodeNotReady, "Catalog is not loaded yet", ErrIndexNotReady)
		return
	}

	cacheKey := string(mode) + "\x00" + req.Title
	if cached, ok := box.results.Get(cacheKey); ok {
		metrics.RecordCacheLookup(true)
		metrics.RecordRecommendation(string(mode), metrics.OutcomeFound, cached.Count, 0)
		respondCached(w, r, cached)
		return
	}
	metrics.RecordCacheLookup(false)

	start := time.Now()
	recs, err := box.r.Similar(req.Title, mode)
	elapsed := time.Since(start)

	outcome := metrics.OutcomeFound
	found := true
	switch {
	case err == nil:
	case errors.Is(err, recommend.ErrUnknownTitle):
		outcome, found = metrics.OutcomeUnknownTitle, false
	case errors.Is(err, recommend.ErrEmptyCatalog):
		outcome, found = metrics.OutcomeEmptyCatalog, false
	default:
		respondError(w, r, http.StatusInternalServerError, CodeInternal, "Failed to compute recommendations", err)
		return
	}
	metrics.RecordRecommendation(string(mode), outcome, len(recs), elapsed)

	if !found {
		logging.Ctx(r.Context()).Debug().
			Str("title", sanitizeLogValue(req.Title)).
			Str("mode", string(mode)).
			Str("outcome", outcome).
			Msg("Recommendation query returned nothing")
	}

	items := make([]models.RecommendationItem, len(recs))
	for i, rec := range recs {
		items[i] = models.RecommendationItem{
			Rank:   rec.Rank,
			Title:  rec.Title,
			Genres: rec.Genres,
			Actors: rec.Actors,
			OTT:    rec.OTT,
		}
	}

	resp := models.RecommendationsResponse{
		Title:   req.Title,
		Mode:    string(mode),
		Label:   mode.Label(),
		Found:   found,
		Results: items,
		Count:   len(items),
	}
	// Only found results are cached; unknown titles are unbounded input.
	if found {
		box.results.Add(cacheKey, resp)
	}

	respondSuccess(w, r, resp, elapsed)
}

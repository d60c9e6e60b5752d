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

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of index state
//
// @Summary Kubernetes liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, 0)
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK once the catalog index is attached, 503 before that.
// An empty catalog is ready: it serves empty recommendation lists.
//
// @Summary Kubernetes readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Service is ready"
// @Failure 503 {object} models.APIResponse{data=models.HealthStatus} "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	health := models.HealthStatus{
		Status:  "not_ready",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}

	statusCode := http.StatusServiceUnavailable
	if index := h.recommender(); index != nil {
		stats := index.Stats()
		health.Status = "ready"
		health.IndexReady = true
		health.CatalogSize = stats.CatalogSize
		health.IndexBuiltAt = stats.BuiltAt
		health.IndexBuildMS = stats.BuildDuration.Milliseconds()
		statusCode = http.StatusOK
	}

	status := models.StatusSuccess
	if statusCode != http.StatusOK {
		status = models.StatusError
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status:   status,
		Data:     health,
		Metadata: newMetadata(r, 0),
	})
}

package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthcheckResponse represents the healthcheck response
// swagger:model HealthcheckResponse
type HealthcheckResponse struct {
	// Service status
	// default: ok
	Status string `json:"status"`

	// Current server time, RFC3339
	Timestamp string `json:"timestamp"`
}

// NewHealthcheckHandler returns an HTTP handler reporting service liveness.
// @Summary Healthcheck
// @Description Returns service status and current timestamp
// @Tags system
// @Produce json
// @Success 200 {object} handlers.HealthcheckResponse
// @Router /healthcheck [get]
func NewHealthcheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthcheckResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

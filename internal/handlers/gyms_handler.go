package handlers

import (
	"context"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gymscout/internal/common"
	"github.com/ternarybob/gymscout/internal/interfaces"
	"github.com/ternarybob/gymscout/internal/models"
)

// GymsHandler serves the reconciled gym list and triggers rediscovery.
type GymsHandler struct {
	gymService interfaces.GymService
	center     models.Coordinate
	logger     arbor.ILogger
}

func NewGymsHandler(gymService interfaces.GymService, center models.Coordinate, logger arbor.ILogger) *GymsHandler {
	return &GymsHandler{
		gymService: gymService,
		center:     center,
		logger:     logger,
	}
}

// ListHandler returns the current reconciled gym list
func (h *GymsHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	gyms := h.gymService.Gyms()

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"gyms":  gyms,
		"count": len(gyms),
	})
}

// RefreshHandler re-runs the catalog and discovery fetch in the background
func (h *GymsHandler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	common.SafeGo(h.logger, "gyms-refresh", func() {
		if err := h.gymService.Load(context.Background(), h.center); err != nil {
			h.logger.Error().Err(err).Msg("Gym refresh failed")
		}
	})

	WriteStarted(w, "Gym refresh started")
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gymscout/internal/interfaces"
	"github.com/ternarybob/gymscout/internal/models"
	"github.com/ternarybob/gymscout/internal/selection"
)

// ScoutHandler drives the scout-and-claim workflow: submitting the scout
// form to the catalog backend and dismissing the modal.
type ScoutHandler struct {
	manager        *selection.Manager
	catalogService interfaces.CatalogService
	gymService     interfaces.GymService
	sessionService interfaces.SessionService
	logger         arbor.ILogger
}

func NewScoutHandler(manager *selection.Manager, catalogService interfaces.CatalogService, gymService interfaces.GymService, sessionService interfaces.SessionService, logger arbor.ILogger) *ScoutHandler {
	return &ScoutHandler{
		manager:        manager,
		catalogService: catalogService,
		gymService:     gymService,
		sessionService: sessionService,
		logger:         logger,
	}
}

// SubmitHandler submits the scout form, creating a verified gym
func (h *ScoutHandler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var submission models.GymSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.sessionService.Token()
	if err != nil {
		WriteError(w, http.StatusUnauthorized, "Sign in to scout a gym")
		return
	}

	created, err := h.catalogService.CreateGym(r.Context(), token, submission)
	if err != nil {
		if errors.Is(err, interfaces.ErrAuthRequired) {
			WriteError(w, http.StatusUnauthorized, "Session expired, sign in again")
			return
		}
		h.logger.Warn().Err(err).Str("name", submission.Name).Msg("Scout submission rejected")
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	h.gymService.Append(*created)
	state := h.manager.Apply(selection.ScoutAdded{Gym: *created})

	h.logger.Info().Str("gym_id", created.ID).Str("name", created.Name).Msg("Gym scouted")

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"gym":       created,
		"selection": state,
	})
}

// DismissHandler closes the scout modal without submitting
func (h *ScoutHandler) DismissHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	WriteJSON(w, http.StatusOK, h.manager.Apply(selection.ScoutDismissed{}))
}

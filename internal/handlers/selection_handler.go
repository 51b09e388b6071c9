package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gymscout/internal/interfaces"
	"github.com/ternarybob/gymscout/internal/selection"
)

// SelectionHandler exposes the selection state machine over HTTP. Every
// mutation goes through the manager so transitions stay serialized.
type SelectionHandler struct {
	manager        *selection.Manager
	gymService     interfaces.GymService
	sessionService interfaces.SessionService
	logger         arbor.ILogger
}

func NewSelectionHandler(manager *selection.Manager, gymService interfaces.GymService, sessionService interfaces.SessionService, logger arbor.ILogger) *SelectionHandler {
	return &SelectionHandler{
		manager:        manager,
		gymService:     gymService,
		sessionService: sessionService,
		logger:         logger,
	}
}

// GetHandler returns the current selection state
func (h *SelectionHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	WriteJSON(w, http.StatusOK, h.manager.State())
}

// ActivateHandler activates a gym by id
func (h *SelectionHandler) ActivateHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req struct {
		GymID string `json:"gym_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.GymID == "" {
		WriteError(w, http.StatusBadRequest, "gym_id is required")
		return
	}

	gym, ok := h.gymService.FindByID(req.GymID)
	if !ok {
		WriteError(w, http.StatusNotFound, interfaces.ErrGymNotFound.Error())
		return
	}

	state := h.manager.Apply(selection.Activate{
		Gym:           gym,
		Authenticated: h.sessionService.IsAuthenticated(),
	})

	WriteJSON(w, http.StatusOK, state)
}

// ClearHandler clears the active selection
func (h *SelectionHandler) ClearHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	WriteJSON(w, http.StatusOK, h.manager.Apply(selection.ClearSelection{}))
}

// SheetToggleHandler toggles the bottom sheet visibility
func (h *SelectionHandler) SheetToggleHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	WriteJSON(w, http.StatusOK, h.manager.Apply(selection.ToggleSheet{}))
}

// SheetDragHandler settles a sheet drag release by its final offset
func (h *SelectionHandler) SheetDragHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req struct {
		Offset float64 `json:"offset"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	WriteJSON(w, http.StatusOK, h.manager.Apply(selection.SheetDragReleased{Offset: req.Offset}))
}

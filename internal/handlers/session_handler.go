package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gymscout/internal/interfaces"
	"github.com/ternarybob/gymscout/internal/models"
)

// SessionHandler exposes sign-in, sign-out and session inspection.
type SessionHandler struct {
	sessionService interfaces.SessionService
	logger         arbor.ILogger
}

func NewSessionHandler(sessionService interfaces.SessionService, logger arbor.ILogger) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// Handler routes by method: GET returns the session, POST signs in,
// DELETE signs out.
func (h *SessionHandler) Handler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w)
	case http.MethodPost:
		h.signIn(w, r)
	case http.MethodDelete:
		h.signOut(w)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *SessionHandler) get(w http.ResponseWriter) {
	current := h.sessionService.Current()
	if current == nil {
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"authenticated": false,
		})
		return
	}

	// The bearer token never leaves the service boundary
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user_id":       current.UserID,
		"name":          current.Name,
		"email":         current.Email,
	})
}

func (h *SessionHandler) signIn(w http.ResponseWriter, r *http.Request) {
	var session models.Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if session.UserID == "" || session.Token == "" {
		WriteError(w, http.StatusBadRequest, "user_id and token are required")
		return
	}

	if err := h.sessionService.SignIn(session); err != nil {
		h.logger.Error().Err(err).Msg("Sign-in failed")
		WriteError(w, http.StatusInternalServerError, "Failed to store session")
		return
	}

	WriteSuccess(w, "Signed in")
}

func (h *SessionHandler) signOut(w http.ResponseWriter) {
	if err := h.sessionService.SignOut(); err != nil {
		h.logger.Error().Err(err).Msg("Sign-out failed")
		WriteError(w, http.StatusInternalServerError, "Failed to clear session")
		return
	}

	WriteSuccess(w, "Signed out")
}

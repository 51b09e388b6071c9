package interfaces

import "github.com/ternarybob/gymscout/internal/models"

// SessionStorage persists the single authenticated-user record in durable
// local storage.
type SessionStorage interface {
	// Load returns the stored session or ErrSessionNotFound.
	Load() (*models.Session, error)

	// Save stores or replaces the session record.
	Save(session models.Session) error

	// Delete removes the stored session. Deleting a missing session is not
	// an error.
	Delete() error
}

// SessionService exposes the authentication gate to the selection machine
// and the scout submission path.
type SessionService interface {
	// IsAuthenticated reports whether a session record is present. Mere
	// presence gates scouting; token expiry is out of scope.
	IsAuthenticated() bool

	// Current returns the active session, or nil.
	Current() *models.Session

	// Token returns the bearer token of the active session, or
	// ErrAuthRequired when signed out.
	Token() (string, error)

	// SignIn persists a session record and makes it current.
	SignIn(session models.Session) error

	// SignOut removes the stored session.
	SignOut() error
}

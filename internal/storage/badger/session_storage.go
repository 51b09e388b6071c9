package badger

import (
	"errors"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gymscout/internal/interfaces"
	"github.com/ternarybob/gymscout/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// currentSessionKey is the fixed record key: the app holds at most one
// signed-in session at a time.
const currentSessionKey = "current"

// SessionStorage implements the SessionStorage interface for Badger
type SessionStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewSessionStorage creates a new SessionStorage instance
func NewSessionStorage(db *BadgerDB, logger arbor.ILogger) interfaces.SessionStorage {
	return &SessionStorage{
		db:     db,
		logger: logger,
	}
}

// Load returns the persisted session, or ErrSessionNotFound when none is
// stored.
func (s *SessionStorage) Load() (*models.Session, error) {
	var session models.Session
	if err := s.db.Store().Get(currentSessionKey, &session); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, interfaces.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &session, nil
}

// Save persists the session, replacing any previous one.
func (s *SessionStorage) Save(session models.Session) error {
	if err := s.db.Store().Upsert(currentSessionKey, &session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes the persisted session. Deleting a missing session is not
// an error.
func (s *SessionStorage) Delete() error {
	if err := s.db.Store().Delete(currentSessionKey, &models.Session{}); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

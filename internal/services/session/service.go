package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gymscout/internal/interfaces"
	"github.com/ternarybob/gymscout/internal/models"
)

// Service implements the SessionService interface on top of durable
// session storage. The current session is cached in memory; storage is the
// source of truth across restarts.
type Service struct {
	storage interfaces.SessionStorage
	logger  arbor.ILogger

	mu      sync.RWMutex
	current *models.Session
}

// NewService creates a session service and restores any persisted session.
func NewService(storage interfaces.SessionStorage, logger arbor.ILogger) (*Service, error) {
	s := &Service{
		storage: storage,
		logger:  logger,
	}

	stored, err := storage.Load()
	if err != nil {
		if !errors.Is(err, interfaces.ErrSessionNotFound) {
			return nil, fmt.Errorf("failed to restore session: %w", err)
		}
		logger.Debug().Msg("No persisted session found")
		return s, nil
	}

	s.current = stored
	logger.Info().Str("user_id", stored.UserID).Msg("Session restored from storage")
	return s, nil
}

// IsAuthenticated reports whether a session is present.
func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Current returns the active session, or nil when signed out.
func (s *Service) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// Token returns the bearer token of the active session. It returns
// ErrAuthRequired when no session is present.
func (s *Service) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return "", interfaces.ErrAuthRequired
	}
	return s.current.Token, nil
}

// SignIn persists the session and makes it current.
func (s *Service) SignIn(session models.Session) error {
	session.StoredAt = time.Now().UTC()

	if err := s.storage.Save(session); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.mu.Lock()
	s.current = &session
	s.mu.Unlock()

	s.logger.Info().Str("user_id", session.UserID).Msg("Signed in")
	return nil
}

// SignOut clears the current session and removes it from storage.
// Signing out while signed out is a no-op.
func (s *Service) SignOut() error {
	s.mu.Lock()
	wasSignedIn := s.current != nil
	s.current = nil
	s.mu.Unlock()

	if !wasSignedIn {
		return nil
	}

	if err := s.storage.Delete(); err != nil {
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}

	s.logger.Info().Msg("Signed out")
	return nil
}

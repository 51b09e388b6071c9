package handlers

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/ternarybob/gymscout/internal/interfaces"
	"github.com/ternarybob/gymscout/internal/models"
)

type mockGymService struct {
	gyms     []models.Gym
	loadErr  error
	loads    atomic.Int32
	appended []models.VerifiedGym
}

func (m *mockGymService) Load(ctx context.Context, center models.Coordinate) error {
	m.loads.Add(1)
	return m.loadErr
}

func (m *mockGymService) Gyms() []models.Gym {
	return m.gyms
}

func (m *mockGymService) FindByID(id string) (models.Gym, bool) {
	for _, gym := range m.gyms {
		if gym.ID() == id {
			return gym, true
		}
	}
	return models.Gym{}, false
}

func (m *mockGymService) Append(gym models.VerifiedGym) {
	m.appended = append(m.appended, gym)
	m.gyms = append(m.gyms, models.VerifiedEntry(gym))
}

func (m *mockGymService) Close() {}

type mockSessionService struct {
	session *models.Session
}

func (m *mockSessionService) IsAuthenticated() bool {
	return m.session != nil
}

func (m *mockSessionService) Current() *models.Session {
	return m.session
}

func (m *mockSessionService) Token() (string, error) {
	if m.session == nil {
		return "", interfaces.ErrAuthRequired
	}
	return m.session.Token, nil
}

func (m *mockSessionService) SignIn(session models.Session) error {
	m.session = &session
	return nil
}

func (m *mockSessionService) SignOut() error {
	m.session = nil
	return nil
}

type mockCatalogService struct {
	created   *models.VerifiedGym
	createErr error
	gotToken  string
	gotSub    models.GymSubmission
}

func (m *mockCatalogService) FetchGyms(ctx context.Context) ([]models.VerifiedGym, error) {
	return nil, errors.New("not implemented")
}

func (m *mockCatalogService) CreateGym(ctx context.Context, token string, submission models.GymSubmission) (*models.VerifiedGym, error) {
	m.gotToken = token
	m.gotSub = submission
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.created, nil
}

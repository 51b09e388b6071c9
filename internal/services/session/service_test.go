package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/gymscout/internal/common"
	"github.com/ternarybob/gymscout/internal/interfaces"
	"github.com/ternarybob/gymscout/internal/models"
)

type mockSessionStorage struct {
	stored  *models.Session
	loadErr error
	saveErr error
	deletes int
}

func (m *mockSessionStorage) Load() (*models.Session, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.stored == nil {
		return nil, interfaces.ErrSessionNotFound
	}
	copied := *m.stored
	return &copied, nil
}

func (m *mockSessionStorage) Save(session models.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.stored = &session
	return nil
}

func (m *mockSessionStorage) Delete() error {
	m.deletes++
	m.stored = nil
	return nil
}

func TestNewService_RestoresPersistedSession(t *testing.T) {
	storage := &mockSessionStorage{stored: &models.Session{UserID: "u1", Token: "tok-1"}}

	s, err := NewService(storage, common.GetLogger())
	require.NoError(t, err)

	assert.True(t, s.IsAuthenticated())
	token, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestNewService_StartsSignedOut(t *testing.T) {
	s, err := NewService(&mockSessionStorage{}, common.GetLogger())
	require.NoError(t, err)

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Current())

	_, err = s.Token()
	assert.ErrorIs(t, err, interfaces.ErrAuthRequired)
}

func TestNewService_StorageFailureSurfaces(t *testing.T) {
	storage := &mockSessionStorage{loadErr: errors.New("corrupt store")}

	_, err := NewService(storage, common.GetLogger())
	require.Error(t, err)
}

func TestSignInAndOut(t *testing.T) {
	storage := &mockSessionStorage{}
	s, err := NewService(storage, common.GetLogger())
	require.NoError(t, err)

	require.NoError(t, s.SignIn(models.Session{UserID: "u1", Name: "Alex", Token: "tok-1"}))

	assert.True(t, s.IsAuthenticated())
	require.NotNil(t, storage.stored)
	assert.Equal(t, "u1", storage.stored.UserID)
	assert.False(t, storage.stored.StoredAt.IsZero())

	current := s.Current()
	require.NotNil(t, current)
	assert.Equal(t, "Alex", current.Name)

	require.NoError(t, s.SignOut())
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, storage.stored)
	assert.Equal(t, 1, storage.deletes)
}

func TestSignOut_WhileSignedOutIsNoOp(t *testing.T) {
	storage := &mockSessionStorage{}
	s, err := NewService(storage, common.GetLogger())
	require.NoError(t, err)

	require.NoError(t, s.SignOut())
	assert.Zero(t, storage.deletes)
}

func TestSignIn_SaveFailureDoesNotChangeState(t *testing.T) {
	storage := &mockSessionStorage{saveErr: errors.New("disk full")}
	s, err := NewService(storage, common.GetLogger())
	require.NoError(t, err)

	require.Error(t, s.SignIn(models.Session{UserID: "u1", Token: "tok-1"}))
	assert.False(t, s.IsAuthenticated())
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	s, err := NewService(&mockSessionStorage{stored: &models.Session{UserID: "u1"}}, common.GetLogger())
	require.NoError(t, err)

	current := s.Current()
	current.UserID = "mutated"

	assert.Equal(t, "u1", s.Current().UserID)
}

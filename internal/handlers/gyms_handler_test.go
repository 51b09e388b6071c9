package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/gymscout/internal/common"
	"github.com/ternarybob/gymscout/internal/models"
)

func TestGymsListHandler(t *testing.T) {
	gyms := &mockGymService{gyms: []models.Gym{verifiedFixture(), shadowFixture()}}
	h := NewGymsHandler(gyms, models.Coordinate{}, common.GetLogger())

	req := httptest.NewRequest("GET", "/api/gyms", nil)
	w := httptest.NewRecorder()
	h.ListHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Gyms  []models.Gym `json:"gyms"`
		Count int          `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Gyms, 2)
	assert.Equal(t, models.GymKindVerified, resp.Gyms[0].Kind)
	assert.Equal(t, models.GymKindShadow, resp.Gyms[1].Kind)
}

func TestGymsRefreshHandler(t *testing.T) {
	gyms := &mockGymService{}
	h := NewGymsHandler(gyms, models.Coordinate{Longitude: -117.1611, Latitude: 32.7157}, common.GetLogger())

	req := httptest.NewRequest("POST", "/api/gyms/refresh", nil)
	w := httptest.NewRecorder()
	h.RefreshHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "started")

	// The load runs on a background goroutine
	assert.Eventually(t, func() bool {
		return gyms.loads.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestGymsListHandler_WrongMethod(t *testing.T) {
	h := NewGymsHandler(&mockGymService{}, models.Coordinate{}, common.GetLogger())

	req := httptest.NewRequest("POST", "/api/gyms", nil)
	w := httptest.NewRecorder()
	h.ListHandler(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/gymscout/internal/common"
	"github.com/ternarybob/gymscout/internal/interfaces"
	"github.com/ternarybob/gymscout/internal/models"
)

func newTestService(baseURL string) interfaces.CatalogService {
	return NewService(&common.CatalogConfig{
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
	}, common.GetLogger())
}

func validSubmission() models.GymSubmission {
	return models.GymSubmission{
		Name:         "Iron Paradise",
		Description:  "Hardcore, heavy metal playing",
		DayPassPrice: 15,
		Coordinate:   models.Coordinate{Longitude: -117.1611, Latitude: 32.7157},
		HasSquatRack: true,
	}
}

func TestFetchGyms(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/gyms", r.URL.Path)
		w.Write([]byte(`{"data": [
			{"_id": "g1", "name": "Metro Flex", "dayPassPrice": 10,
			 "location": {"type": "Point", "coordinates": [-117.15, 32.72]},
			 "equipment": {"hasSquatRack": true, "maxDumbbellWeight": 150},
			 "amenities": {"hasShowers": true}}
		]}`))
	}))
	defer server.Close()

	gyms, err := newTestService(server.URL).FetchGyms(context.Background())
	require.NoError(t, err)
	require.Len(t, gyms, 1)
	assert.Equal(t, "g1", gyms[0].ID)
	assert.Equal(t, "Metro Flex", gyms[0].Name)
	assert.Equal(t, -117.15, gyms[0].Location.Coordinate().Longitude)
	assert.Equal(t, 32.72, gyms[0].Location.Coordinate().Latitude)
	assert.True(t, gyms[0].Equipment.HasSquatRack)
}

func TestFetchGyms_NetworkError(t *testing.T) {
	svc := newTestService("http://127.0.0.1:1")
	_, err := svc.FetchGyms(context.Background())
	assert.True(t, errors.Is(err, interfaces.ErrNetwork))
}

func TestCreateGym(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &payload))

		// Coordinate submitted as a GeoJSON point
		location := payload["location"].(map[string]interface{})
		assert.Equal(t, "Point", location["type"])
		coords := location["coordinates"].([]interface{})
		assert.Equal(t, -117.1611, coords[0])
		assert.Equal(t, 32.7157, coords[1])
		assert.Contains(t, payload, "equipment")
		assert.Contains(t, payload, "amenities")

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data": {"_id": "new-1", "name": "Iron Paradise", "dayPassPrice": 15}}`))
	}))
	defer server.Close()

	created, err := newTestService(server.URL).CreateGym(context.Background(), "token-123", validSubmission())
	require.NoError(t, err)
	assert.Equal(t, "new-1", created.ID)
	assert.Equal(t, "Iron Paradise", created.Name)
}

func TestCreateGym_RequiresToken(t *testing.T) {
	svc := newTestService("http://127.0.0.1:1")
	_, err := svc.CreateGym(context.Background(), "", validSubmission())
	assert.True(t, errors.Is(err, interfaces.ErrAuthRequired))
}

func TestCreateGym_RejectsInvalidSubmission(t *testing.T) {
	svc := newTestService("http://127.0.0.1:1")

	sub := validSubmission()
	sub.Name = ""
	_, err := svc.CreateGym(context.Background(), "token", sub)
	require.Error(t, err)

	sub = validSubmission()
	sub.DayPassPrice = -5
	_, err = svc.CreateGym(context.Background(), "token", sub)
	require.Error(t, err)
}

func TestCreateGym_BackendErrorMessage(t *testing.T) {
	t.Run("backend error field surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": "A gym already exists at this location"}`))
		}))
		defer server.Close()

		_, err := newTestService(server.URL).CreateGym(context.Background(), "token", validSubmission())
		require.Error(t, err)
		assert.Equal(t, "A gym already exists at this location", err.Error())
	})

	t.Run("generic fallback when no error field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newTestService(server.URL).CreateGym(context.Background(), "token", validSubmission())
		require.Error(t, err)
		assert.Equal(t, genericSubmitError, err.Error())
	})

	t.Run("401 maps to auth required", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "Not authorized"}`))
		}))
		defer server.Close()

		_, err := newTestService(server.URL).CreateGym(context.Background(), "token", validSubmission())
		assert.True(t, errors.Is(err, interfaces.ErrAuthRequired))
	})
}

package overpass

import (
	"context"
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

func newTestService(endpoint string) *Service {
	cfg := &common.OverpassConfig{
		Endpoint:       endpoint,
		RadiusMeters:   5000,
		MaxResults:     20,
		RateLimit:      0, // No throttling in tests
		RequestTimeout: 5 * time.Second,
	}
	return NewService(cfg, common.GetLogger()).(*Service)
}

func TestDiscover_NormalizesElements(t *testing.T) {
	var capturedBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		capturedBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"elements": [
				{"type": "node", "id": 101, "lat": 32.7157, "lon": -117.1611, "tags": {"name": "Iron Paradise", "sport": "fitness"}},
				{"type": "way", "id": 202, "center": {"lat": 32.72, "lon": -117.15}, "tags": {"name": "Metro Flex", "leisure": "fitness_centre"}}
			]
		}`))
	}))
	defer server.Close()

	svc := newTestService(server.URL)
	gyms, err := svc.Discover(context.Background(), models.Coordinate{Longitude: -117.1611, Latitude: 32.7157}, 5000)
	require.NoError(t, err)
	require.Len(t, gyms, 2)

	// Identity derived from the OSM element id, idempotent across queries
	assert.Equal(t, "osm-101", gyms[0].ID)
	assert.Equal(t, "Iron Paradise", gyms[0].Name)
	assert.Equal(t, models.ShadowDescription, gyms[0].Description)
	assert.Equal(t, -117.1611, gyms[0].Coordinate.Longitude)
	assert.Equal(t, 32.7157, gyms[0].Coordinate.Latitude)

	// Way element resolves via its center sub-object
	assert.Equal(t, "osm-202", gyms[1].ID)
	assert.Equal(t, -117.15, gyms[1].Coordinate.Longitude)
	assert.Equal(t, 32.72, gyms[1].Coordinate.Latitude)

	// Query selects both tag filters as node and way geometries
	assert.Contains(t, capturedBody, `node["leisure"="fitness_centre"]`)
	assert.Contains(t, capturedBody, `way["leisure"="fitness_centre"]`)
	assert.Contains(t, capturedBody, `node["sport"="fitness"]`)
	assert.Contains(t, capturedBody, `way["sport"="fitness"]`)
	assert.Contains(t, capturedBody, "out center 20;")
}

func TestDiscover_GeometryFallbackEquivalence(t *testing.T) {
	// A center-only way and a direct lat/lon node at the same spot must
	// normalize to the same shadow gym shape
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"elements": [
				{"type": "node", "id": 1, "lat": 10.5, "lon": 20.5, "tags": {"name": "Same Spot"}},
				{"type": "way", "id": 2, "center": {"lat": 10.5, "lon": 20.5}, "tags": {"name": "Same Spot"}}
			]
		}`))
	}))
	defer server.Close()

	svc := newTestService(server.URL)
	gyms, err := svc.Discover(context.Background(), models.Coordinate{}, 1000)
	require.NoError(t, err)
	require.Len(t, gyms, 2)
	assert.Equal(t, gyms[0].Coordinate, gyms[1].Coordinate)
	assert.Equal(t, gyms[0].Name, gyms[1].Name)
	assert.Equal(t, gyms[0].Description, gyms[1].Description)
}

func TestDiscover_SkipsBadElements(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected int
	}{
		{
			name:     "unnamed element dropped",
			payload:  `{"elements": [{"type": "node", "id": 1, "lat": 1, "lon": 2, "tags": {"sport": "fitness"}}]}`,
			expected: 0,
		},
		{
			name:     "missing name tag map dropped",
			payload:  `{"elements": [{"type": "node", "id": 1, "lat": 1, "lon": 2}]}`,
			expected: 0,
		},
		{
			name:     "element without geometry skipped, batch continues",
			payload:  `{"elements": [{"type": "way", "id": 1, "tags": {"name": "No Geometry"}}, {"type": "node", "id": 2, "lat": 1, "lon": 2, "tags": {"name": "Good Gym"}}]}`,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.payload))
			}))
			defer server.Close()

			svc := newTestService(server.URL)
			gyms, err := svc.Discover(context.Background(), models.Coordinate{}, 1000)
			require.NoError(t, err)
			assert.Len(t, gyms, tt.expected)
		})
	}
}

func TestDiscover_NetworkAndParseErrors(t *testing.T) {
	t.Run("unreachable endpoint", func(t *testing.T) {
		svc := newTestService("http://127.0.0.1:1")
		_, err := svc.Discover(context.Background(), models.Coordinate{}, 1000)
		assert.True(t, errors.Is(err, interfaces.ErrNetwork))
	})

	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
		}))
		defer server.Close()

		svc := newTestService(server.URL)
		_, err := svc.Discover(context.Background(), models.Coordinate{}, 1000)
		assert.True(t, errors.Is(err, interfaces.ErrNetwork))
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()

		svc := newTestService(server.URL)
		_, err := svc.Discover(context.Background(), models.Coordinate{}, 1000)
		assert.True(t, errors.Is(err, interfaces.ErrParse))
	})
}

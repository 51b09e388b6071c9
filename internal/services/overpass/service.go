package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gymscout/internal/common"
	"github.com/ternarybob/gymscout/internal/httpclient"
	"github.com/ternarybob/gymscout/internal/interfaces"
	"github.com/ternarybob/gymscout/internal/models"
	"golang.org/x/time/rate"
)

// Service implements the DiscoveryService interface against an
// Overpass-style OpenStreetMap interpreter
type Service struct {
	config     *common.OverpassConfig
	logger     arbor.ILogger
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewService creates a new Overpass discovery service instance
func NewService(config *common.OverpassConfig, logger arbor.ILogger) interfaces.DiscoveryService {
	limit := rate.Inf
	if config.RateLimit > 0 {
		limit = rate.Every(config.RateLimit)
	}

	return &Service{
		config:     config,
		logger:     logger,
		httpClient: httpclient.NewDefaultHTTPClient(config.RequestTimeout),
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// Discover queries the Overpass interpreter for fitness POIs around center
// and normalizes the raw elements into shadow gyms. Elements without a name
// or a usable geometry are skipped individually; the batch never aborts for
// a single bad element.
func (s *Service) Discover(ctx context.Context, center models.Coordinate, radiusMeters int) ([]models.ShadowGym, error) {
	if radiusMeters <= 0 {
		radiusMeters = s.config.RadiusMeters
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait aborted: %v", interfaces.ErrNetwork, err)
	}

	query := buildQuery(center, radiusMeters, s.config.MaxResults)

	s.logger.Debug().
		Float64("latitude", center.Latitude).
		Float64("longitude", center.Longitude).
		Int("radius_m", radiusMeters).
		Msg("Searching OpenStreetMap via Overpass")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.Endpoint, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build Overpass request: %v", interfaces.ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: Overpass request failed: %v", interfaces.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: Overpass returned status %d: %s", interfaces.ErrNetwork, resp.StatusCode, string(body))
	}

	var apiResp OverpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode Overpass response: %v", interfaces.ErrParse, err)
	}

	gyms := make([]models.ShadowGym, 0, len(apiResp.Elements))
	skippedUnnamed := 0
	skippedGeometry := 0

	for _, element := range apiResp.Elements {
		coord, ok := elementCoordinate(element)
		if !ok {
			// Per-element parse failure: skip, never abort the batch
			skippedGeometry++
			s.logger.Debug().
				Int64("element_id", element.ID).
				Str("element_type", element.Type).
				Msg("Skipping Overpass element without geometry")
			continue
		}

		// A shadow gym with no name cannot be disambiguated in the UI
		name := element.Tags["name"]
		if name == "" {
			skippedUnnamed++
			continue
		}

		gyms = append(gyms, models.NewShadowGym(element.ID, name, coord, element.Tags))
	}

	s.logger.Info().
		Int("elements", len(apiResp.Elements)).
		Int("gyms", len(gyms)).
		Int("skipped_unnamed", skippedUnnamed).
		Int("skipped_geometry", skippedGeometry).
		Msg("Overpass discovery completed")

	return gyms, nil
}

// elementCoordinate resolves an element's geometry. Way/area elements carry
// a center sub-object which takes precedence; point elements carry a direct
// lat/lon pair.
func elementCoordinate(element OverpassElement) (models.Coordinate, bool) {
	if element.Center != nil {
		return models.Coordinate{Longitude: element.Center.Lon, Latitude: element.Center.Lat}, true
	}
	if element.Lat != nil && element.Lon != nil {
		return models.Coordinate{Longitude: *element.Lon, Latitude: *element.Lat}, true
	}
	return models.Coordinate{}, false
}

// buildQuery constructs the Overpass QL query selecting fitness POIs as both
// point and area geometries within the bounding radius
func buildQuery(center models.Coordinate, radiusMeters, maxResults int) string {
	around := fmt.Sprintf("around:%d,%f,%f", radiusMeters, center.Latitude, center.Longitude)

	var b strings.Builder
	b.WriteString("[out:json];\n(\n")
	for _, filter := range []string{`"leisure"="fitness_centre"`, `"sport"="fitness"`} {
		fmt.Fprintf(&b, "  node[%s](%s);\n", filter, around)
		fmt.Fprintf(&b, "  way[%s](%s);\n", filter, around)
	}
	b.WriteString(");\n")
	fmt.Fprintf(&b, "out center %d;\n", maxResults)
	return b.String()
}

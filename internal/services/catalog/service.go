package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gymscout/internal/common"
	"github.com/ternarybob/gymscout/internal/httpclient"
	"github.com/ternarybob/gymscout/internal/interfaces"
	"github.com/ternarybob/gymscout/internal/models"
)

// genericSubmitError is shown when the backend rejection carries no usable
// error field
const genericSubmitError = "Failed to save gym."

// Service implements the CatalogService interface against the primary gym
// catalog backend
type Service struct {
	config     *common.CatalogConfig
	logger     arbor.ILogger
	httpClient *http.Client
	validate   *validator.Validate
}

// listResponse is the backend's list envelope: { "data": [...] }
type listResponse struct {
	Data []models.VerifiedGym `json:"data"`
}

// itemResponse is the backend's single-record envelope: { "data": {...} }
type itemResponse struct {
	Data models.VerifiedGym `json:"data"`
}

// errorResponse is the backend's rejection envelope: { "error": "..." }
type errorResponse struct {
	Error string `json:"error"`
}

// createGymRequest is the creation payload shape the backend expects:
// GeoJSON point plus equipment/amenity sub-objects
type createGymRequest struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	DayPassPrice float64          `json:"dayPassPrice"`
	Location     createGymPoint   `json:"location"`
	Equipment    models.Equipment `json:"equipment"`
	Amenities    models.Amenities `json:"amenities"`
	Website      string           `json:"website,omitempty"`
	Phone        string           `json:"phone,omitempty"`
}

type createGymPoint struct {
	Type             string     `json:"type"`
	Coordinates      [2]float64 `json:"coordinates"`
	FormattedAddress string     `json:"formattedAddress,omitempty"`
}

// NewService creates a new catalog service instance
func NewService(config *common.CatalogConfig, logger arbor.ILogger) interfaces.CatalogService {
	return &Service{
		config:     config,
		logger:     logger,
		httpClient: httpclient.NewDefaultHTTPClient(config.RequestTimeout),
		validate:   validator.New(),
	}
}

// FetchGyms reads the verified catalog via GET /api/gyms
func (s *Service) FetchGyms(ctx context.Context) ([]models.VerifiedGym, error) {
	url := s.config.BaseURL + "/api/gyms"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build catalog request: %v", interfaces.ErrNetwork, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: catalog request failed: %v", interfaces.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: catalog returned status %d: %s", interfaces.ErrNetwork, resp.StatusCode, string(body))
	}

	var envelope listResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode catalog response: %v", interfaces.ErrParse, err)
	}

	s.logger.Info().Int("count", len(envelope.Data)).Msg("Fetched verified gym catalog")

	return envelope.Data, nil
}

// CreateGym submits a scouted gym via POST /api/gyms with bearer-token
// authorization. Backend rejections are reported with the backend's error
// field so the user can fix and retry without re-entering data.
func (s *Service) CreateGym(ctx context.Context, token string, submission models.GymSubmission) (*models.VerifiedGym, error) {
	if token == "" {
		return nil, interfaces.ErrAuthRequired
	}

	if err := s.validate.Struct(submission); err != nil {
		return nil, fmt.Errorf("invalid gym submission: %w", err)
	}

	payload := createGymRequest{
		Name:         submission.Name,
		Description:  submission.Description,
		DayPassPrice: submission.DayPassPrice,
		Location: createGymPoint{
			Type:             "Point",
			Coordinates:      [2]float64{submission.Coordinate.Longitude, submission.Coordinate.Latitude},
			FormattedAddress: "Scouted Location",
		},
		Equipment: models.Equipment{
			HasSquatRack:        submission.HasSquatRack,
			HasDeadliftPlatform: submission.HasDeadliftPlatform,
			MaxDumbbellWeight:   submission.MaxDumbbellWeight,
		},
		Amenities: models.Amenities{
			HasAC:      submission.HasAC,
			HasShowers: submission.HasShowers,
		},
		Website: submission.Website,
		Phone:   submission.Phone,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gym payload: %w", err)
	}

	url := s.config.BaseURL + "/api/gyms"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build create request: %v", interfaces.ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: create request failed: %v", interfaces.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrAuthRequired, readBackendError(resp.Body))
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		message := readBackendError(resp.Body)
		s.logger.Warn().
			Int("status", resp.StatusCode).
			Str("error", message).
			Msg("Gym submission rejected by catalog backend")
		return nil, fmt.Errorf("%s", message)
	}

	var envelope itemResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode created gym: %v", interfaces.ErrParse, err)
	}

	s.logger.Info().
		Str("gym_id", envelope.Data.ID).
		Str("name", envelope.Data.Name).
		Msg("Scouted gym created in catalog")

	return &envelope.Data, nil
}

// readBackendError extracts the backend's error field, falling back to a
// generic message when the body carries none
func readBackendError(body io.Reader) string {
	var envelope errorResponse
	if err := json.NewDecoder(io.LimitReader(body, 4096)).Decode(&envelope); err != nil || envelope.Error == "" {
		return genericSubmitError
	}
	return envelope.Error
}

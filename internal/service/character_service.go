package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"rickverse/internal/models"
	"rickverse/pkg/config"

	"go.uber.org/zap"
)

// CharacterService is a read-only client for the remote character API.
// Characters are fetched fresh per request and never cached locally.
type CharacterService struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewCharacterService(cfg *config.CharacterAPIConfig, logger *zap.Logger) *CharacterService {
	return &CharacterService{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// GetByID fetches a single character record by its numeric id.
func (s *CharacterService) GetByID(ctx context.Context, id int) (*models.Character, error) {
	var character models.Character
	url := fmt.Sprintf("%s/character/%d", s.baseURL, id)
	if err := s.getJSON(ctx, url, &character); err != nil {
		return nil, err
	}
	return &character, nil
}

// ListLocations returns the first page of locations, the way the explorer UI
// consumes them.
func (s *CharacterService) ListLocations(ctx context.Context) ([]*models.Location, error) {
	var page struct {
		Results []*models.Location `json:"results"`
	}
	if err := s.getJSON(ctx, s.baseURL+"/location", &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// GetResidents resolves every resident of a location to a full character
// record. Residents that fail to resolve are skipped.
func (s *CharacterService) GetResidents(ctx context.Context, locationID int) ([]*models.Character, error) {
	var location models.Location
	url := fmt.Sprintf("%s/location/%d", s.baseURL, locationID)
	if err := s.getJSON(ctx, url, &location); err != nil {
		return nil, err
	}

	var residents []*models.Character
	for _, residentURL := range location.Residents {
		id, err := characterIDFromURL(residentURL)
		if err != nil {
			s.logger.Warn("Skipping unparsable resident URL", zap.String("url", residentURL))
			continue
		}
		character, err := s.GetByID(ctx, id)
		if err != nil {
			s.logger.Warn("Skipping unresolvable resident",
				zap.Int("id", id),
				zap.Error(err),
			)
			continue
		}
		residents = append(residents, character)
	}

	return residents, nil
}

func (s *CharacterService) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("character api error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// characterIDFromURL extracts the numeric id from a character resource URL
// like https://rickandmortyapi.com/api/character/38.
func characterIDFromURL(url string) (int, error) {
	url = strings.TrimSuffix(url, "/")
	idx := strings.LastIndex(url, "/")
	if idx == -1 {
		return 0, fmt.Errorf("no id segment in %q", url)
	}
	return strconv.Atoi(url[idx+1:])
}

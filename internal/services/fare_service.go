package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"moodtrip/pkg/utils"
)

const defaultTransitBaseURL = "https://api.odsay.com"

// TransitFareService returns the public-transport fare in won between two
// coordinates. Implementations must be safe for concurrent use; the budget
// estimator fans out leg queries.
type TransitFareService interface {
	Fare(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (int, error)
}

type odsayFareService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
}

// NewTransitFareService builds the ODsay-backed fare lookup. baseURL is
// overridable for tests; pass "" for the production endpoint.
func NewTransitFareService(apiKey, baseURL string) TransitFareService {
	if baseURL == "" {
		baseURL = defaultTransitBaseURL
	}
	return &odsayFareService{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      gocache.New(24*time.Hour, time.Hour),
	}
}

type odsayResponse struct {
	Result struct {
		Path []struct {
			Info struct {
				Payment int `json:"payment"`
			} `json:"info"`
		} `json:"path"`
	} `json:"result"`
}

// fareCacheKey rounds coordinates to 4 decimals (roughly 11 m) so nearby
// lookups share an entry.
func fareCacheKey(fromLat, fromLng, toLat, toLng float64) string {
	return fmt.Sprintf("%.4f,%.4f-%.4f,%.4f", fromLat, fromLng, toLat, toLng)
}

func (s *odsayFareService) Fare(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (int, error) {
	key := fareCacheKey(fromLat, fromLng, toLat, toLng)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(int), nil
	}

	query := url.Values{}
	query.Set("SX", fmt.Sprintf("%f", fromLng))
	query.Set("SY", fmt.Sprintf("%f", fromLat))
	query.Set("EX", fmt.Sprintf("%f", toLng))
	query.Set("EY", fmt.Sprintf("%f", toLat))
	query.Set("apiKey", s.apiKey)

	endpoint := fmt.Sprintf("%s/v1/api/searchPubTransPathT?%s", s.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("fare: transit API request failed: %v", err)
		return 0, utils.ErrFareUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("fare: transit API returned status %d", resp.StatusCode)
		return 0, utils.ErrFareUnavailable
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, utils.ErrFareUnavailable
	}

	var parsed odsayResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		log.Printf("fare: unreadable transit API response: %v", err)
		return 0, utils.ErrFareUnavailable
	}
	if len(parsed.Result.Path) == 0 {
		return 0, utils.ErrFareUnavailable
	}

	// A zero payment means the API had no usable fare for the route.
	fare := parsed.Result.Path[0].Info.Payment
	if fare <= 0 {
		return 0, utils.ErrFareUnavailable
	}

	s.cache.Set(key, fare, gocache.DefaultExpiration)
	return fare, nil
}

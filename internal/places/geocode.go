package places

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/apperrors"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/logger"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/models"
	"go.uber.org/zap"
)

// Geocoder resolves free-text locations to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.Coordinate, error)
}

// Nominatim is the OpenStreetMap forward-geocoding adapter. No caching:
// every new search re-geocodes, and a failure is fatal to the search
// attempt (callers do not retry).
type Nominatim struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

func NewNominatim(baseURL string) *Nominatim {
	return &Nominatim{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: logger.GetLogger("geocode"),
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves an address to a coordinate using the first match.
func (n *Nominatim) Geocode(ctx context.Context, address string) (models.Coordinate, error) {
	endpoint := n.baseURL + "/search?format=json&q=" + url.QueryEscape(address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Coordinate{}, apperrors.Wrap(apperrors.Upstream, "failed to create geocoding request", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent
	req.Header.Set("User-Agent", "dinesaver/1.0")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return models.Coordinate{}, apperrors.Wrap(apperrors.Upstream, "geocoding service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Coordinate{}, apperrors.Upstreamf("geocoding service returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return models.Coordinate{}, apperrors.Wrap(apperrors.Upstream, "failed to decode geocoding response", err)
	}

	if len(results) == 0 {
		return models.Coordinate{}, apperrors.Upstreamf("no geocoding match for %q", address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return models.Coordinate{}, apperrors.Wrap(apperrors.Upstream, "invalid latitude in geocoding response", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return models.Coordinate{}, apperrors.Wrap(apperrors.Upstream, "invalid longitude in geocoding response", err)
	}

	coord := models.Coordinate{Latitude: lat, Longitude: lng}
	n.log.Debugw("geocoded address", "address", address, "lat", lat, "lng", lng)

	return coord, nil
}

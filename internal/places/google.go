package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/apperrors"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/logger"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/models"
	"go.uber.org/zap"
)

const googlePlacesBaseURL = "https://maps.googleapis.com/maps/api/place"

// GooglePlace is the google variant of a raw provider place. Optional
// fields are explicit pointers/slices so missing data never fails
// normalization.
type GooglePlace struct {
	PlaceID        string              `json:"place_id"`
	Name           string              `json:"name"`
	BusinessStatus string              `json:"business_status"`
	Geometry       GoogleGeometry      `json:"geometry"`
	Vicinity       string              `json:"vicinity"`
	PriceLevel     *int                `json:"price_level,omitempty"`
	Types          []string            `json:"types"`
	Photos         []GooglePhoto       `json:"photos,omitempty"`
	OpeningHours   *GoogleOpeningHours `json:"opening_hours,omitempty"`
	Rating         *float64            `json:"rating,omitempty"`
}

type GoogleGeometry struct {
	Location GoogleLatLng `json:"location"`
}

type GoogleLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type GooglePhoto struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type GoogleOpeningHours struct {
	OpenNow bool `json:"open_now"`
}

// GoogleSearchResponse is a decoded Nearby Search page. Raw holds the
// unmodified provider payload for passthrough responses.
type GoogleSearchResponse struct {
	Results       []GooglePlace `json:"results"`
	NextPageToken string        `json:"next_page_token"`
	Status        string        `json:"status"`
	ErrorMessage  string        `json:"error_message,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// GoogleClient queries the Google Places Nearby Search API.
type GoogleClient struct {
	apiKey       string
	baseURL      string
	radiusMeters int
	language     string
	httpClient   *http.Client
	// photo redirects are resolved, not followed
	noRedirectClient *http.Client
	log              *zap.SugaredLogger
}

func NewGoogleClient(apiKey string, radiusMeters int, language string) *GoogleClient {
	return &GoogleClient{
		apiKey:       apiKey,
		baseURL:      googlePlacesBaseURL,
		radiusMeters: radiusMeters,
		language:     language,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		noRedirectClient: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log: logger.GetLogger("places.google"),
	}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *GoogleClient) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// Search runs a Nearby Search around origin. pageToken is the opaque
// continuation cursor from a prior page; empty on the first page of a
// search. An empty result set is a valid response, not an error, but a
// provider-reported error payload is surfaced as a typed failure.
//
// A freshly issued next_page_token needs a short settling delay before
// it is accepted; waiting is the caller's responsibility.
func (c *GoogleClient) Search(ctx context.Context, origin models.Coordinate, keyword, pageToken string) (*GoogleSearchResponse, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("location", fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude))
	params.Set("radius", strconv.Itoa(c.radiusMeters))
	params.Set("keyword", keyword)
	params.Set("language", c.language)
	if pageToken != "" {
		params.Set("pagetoken", pageToken)
	}

	endpoint := c.baseURL + "/nearbysearch/json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to create places request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "google places unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to read places response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Upstreamf("google places returned status %d", resp.StatusCode)
	}

	var decoded GoogleSearchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to decode places response", err)
	}
	decoded.Raw = body

	if decoded.ErrorMessage != "" {
		return nil, apperrors.Upstreamf("google places error: %s", decoded.ErrorMessage)
	}

	c.log.Debugw("nearby search",
		"keyword", keyword,
		"results", len(decoded.Results),
		"has_next_page", decoded.NextPageToken != "",
	)

	return &decoded, nil
}

// ResolvePhotoURL resolves a photo_reference to the CDN URL Google
// redirects to, so the server can reply with a redirect instead of
// proxying image bytes.
func (c *GoogleClient) ResolvePhotoURL(ctx context.Context, photoReference string) (string, error) {
	params := url.Values{}
	params.Set("maxwidth", "400")
	params.Set("photo_reference", photoReference)
	params.Set("key", c.apiKey)

	endpoint := c.baseURL + "/photo?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", apperrors.Wrap(apperrors.Upstream, "failed to create photo request", err)
	}

	resp, err := c.noRedirectClient.Do(req)
	if err != nil {
		return "", apperrors.Wrap(apperrors.Upstream, "google photo API unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 300 || resp.StatusCode >= 400 {
		return "", apperrors.Upstreamf("google photo API returned status %d", resp.StatusCode)
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return "", apperrors.New(apperrors.Upstream, "google photo API redirect has no location")
	}

	return location, nil
}

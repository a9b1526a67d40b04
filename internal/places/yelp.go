package places

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/apperrors"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/logger"
	"go.uber.org/zap"
)

const yelpBaseURL = "https://api.yelp.com/v3"

// YelpBusiness is the yelp variant of a raw provider place.
type YelpBusiness struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	ImageURL    string          `json:"image_url"`
	IsClosed    bool            `json:"is_closed"`
	URL         string          `json:"url"`
	Price       string          `json:"price,omitempty"`
	Distance    float64         `json:"distance,omitempty"`
	Phone       string          `json:"phone"`
	Coordinates YelpCoordinates `json:"coordinates"`
	Location    YelpLocation    `json:"location"`
	Categories  []YelpCategory  `json:"categories"`
}

type YelpCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type YelpLocation struct {
	Address1       string   `json:"address1"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	ZipCode        string   `json:"zip_code"`
	DisplayAddress []string `json:"display_address"`
}

type YelpCategory struct {
	Alias string `json:"alias"`
	Title string `json:"title"`
}

// YelpSearchResponse is a decoded business search page; Raw holds the
// unmodified provider payload for passthrough responses.
type YelpSearchResponse struct {
	Businesses []YelpBusiness `json:"businesses"`
	Total      int            `json:"total"`

	Raw json.RawMessage `json:"-"`
}

// YelpClient queries the Yelp Fusion business search API.
type YelpClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

func NewYelpClient(apiKey string) *YelpClient {
	return &YelpClient{
		apiKey:  apiKey,
		baseURL: yelpBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: logger.GetLogger("places.yelp"),
	}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *YelpClient) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// Search runs a business search by free-text location and term. Yelp
// geocodes the location itself; no cursor pagination here.
func (c *YelpClient) Search(ctx context.Context, location, term string) (*YelpSearchResponse, error) {
	if location == "" || term == "" {
		return nil, apperrors.New(apperrors.Validation, "location and term are required")
	}

	params := url.Values{}
	params.Set("location", location)
	params.Set("term", term)

	endpoint := c.baseURL + "/businesses/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to create yelp request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "yelp unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to read yelp response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Upstreamf("yelp returned status %d: %s", resp.StatusCode, string(body))
	}

	var decoded YelpSearchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to decode yelp response", err)
	}
	decoded.Raw = body

	c.log.Debugw("yelp search", "location", location, "term", term, "results", len(decoded.Businesses))

	return &decoded, nil
}

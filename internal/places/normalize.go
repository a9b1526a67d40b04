package places

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/models"
	"github.com/HirokiTakaya/Dine-Saver-Web/pkg/geo"
)

// DefaultPhotoURL maps a Google photo reference to the server's photo
// proxy endpoint.
func DefaultPhotoURL(photoReference string) string {
	return "/api/place/photo?photo_reference=" + url.QueryEscape(photoReference)
}

// Normalizer maps raw provider places to canonical restaurant records.
// Pure and deterministic given the same inputs: missing optional fields
// produce empty values, and deep links are built from string templates
// without ever being verified.
type Normalizer struct {
	// PhotoURL turns a Google photo reference into an image URL.
	PhotoURL func(photoReference string) string
}

func NewNormalizer() *Normalizer {
	return &Normalizer{PhotoURL: DefaultPhotoURL}
}

// FromGoogle normalizes a google place. origin is the coordinate the
// generating query used; nil means no coordinate was established and
// the distance stays 0. locationText feeds the Yelp deep link.
func (n *Normalizer) FromGoogle(p GooglePlace, origin *models.Coordinate, locationText string) models.Restaurant {
	coords := models.Coordinate{
		Latitude:  p.Geometry.Location.Lat,
		Longitude: p.Geometry.Location.Lng,
	}

	imageURL := ""
	if len(p.Photos) > 0 {
		imageURL = n.PhotoURL(p.Photos[0].PhotoReference)
	}

	priceTier := ""
	if p.PriceLevel != nil && *p.PriceLevel > 0 {
		priceTier = strings.Repeat("$", *p.PriceLevel)
	}

	var distance float64
	if origin != nil {
		distance = geo.Haversine(origin.Latitude, origin.Longitude, coords.Latitude, coords.Longitude)
	}

	categories := make([]string, len(p.Types))
	copy(categories, p.Types)

	return models.Restaurant{
		ID:             p.PlaceID,
		Name:           p.Name,
		ImageURL:       imageURL,
		Coordinates:    coords,
		Address:        p.Vicinity,
		IsOpenNow:      p.BusinessStatus == "OPERATIONAL",
		DistanceMeters: distance,
		PriceTier:      priceTier,
		Categories:     categories,
		GoogleMapsURL:  googleMapsLink(p.Name, p.PlaceID),
		YelpURL:        yelpSearchLink(p.Name, locationText),
		HotpepperURL:   hotpepperLink(p.Name, coords),
	}
}

// FromYelp normalizes a yelp business. Yelp reports its own distance
// from the search location; when absent it is computed from origin.
func (n *Normalizer) FromYelp(b YelpBusiness, origin *models.Coordinate) models.Restaurant {
	coords := models.Coordinate{
		Latitude:  b.Coordinates.Latitude,
		Longitude: b.Coordinates.Longitude,
	}

	distance := b.Distance
	if distance == 0 && origin != nil {
		distance = geo.Haversine(origin.Latitude, origin.Longitude, coords.Latitude, coords.Longitude)
	}

	categories := make([]string, 0, len(b.Categories))
	for _, c := range b.Categories {
		categories = append(categories, c.Title)
	}

	return models.Restaurant{
		ID:             b.ID,
		Name:           b.Name,
		ImageURL:       b.ImageURL,
		Coordinates:    coords,
		Address:        b.Location.Address1,
		IsOpenNow:      !b.IsClosed,
		DistanceMeters: distance,
		PriceTier:      b.Price,
		Categories:     categories,
		GoogleMapsURL:  googleMapsLink(b.Name, ""),
		YelpURL:        b.URL,
		HotpepperURL:   hotpepperLink(b.Name, coords),
	}
}

func googleMapsLink(name, placeID string) string {
	link := "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(name)
	if placeID != "" {
		link += "&query_place_id=" + url.QueryEscape(placeID)
	}
	return link
}

func yelpSearchLink(name, locationText string) string {
	return fmt.Sprintf("https://www.yelp.com/search?find_desc=%s&find_loc=%s",
		url.QueryEscape(name), url.QueryEscape(locationText))
}

func hotpepperLink(name string, coords models.Coordinate) string {
	return fmt.Sprintf("https://www.hotpepper.jp/search/?keyword=%s&lat=%f&lng=%f",
		url.QueryEscape(name), coords.Latitude, coords.Longitude)
}

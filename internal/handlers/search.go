package handlers

import (
	"strconv"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/models"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/places"
	"github.com/gofiber/fiber/v2"
)

// SearchHandler proxies place-search requests to the external
// providers. Provider payloads pass through unmodified; normalization
// happens client-side in the search session.
type SearchHandler struct {
	google *places.GoogleClient
	yelp   *places.YelpClient
}

func NewSearchHandler(google *places.GoogleClient, yelp *places.YelpClient) *SearchHandler {
	return &SearchHandler{google: google, yelp: yelp}
}

func SetupSearchRoutes(router fiber.Router, google *places.GoogleClient, yelp *places.YelpClient) {
	h := NewSearchHandler(google, yelp)

	router.Get("/search/google", h.GoogleSearch)
	router.Get("/place/photo", h.PlacePhoto)
	router.Get("/search", h.YelpSearch)
}

// GoogleSearch godoc
// @Summary Nearby restaurant search via Google Places
// @Tags search
// @Produce json
// @Param latitude query number true "Search center latitude"
// @Param longitude query number true "Search center longitude"
// @Param term query string true "Search keyword"
// @Param pagetoken query string false "Continuation cursor from a prior page"
// @Success 200 {object} places.GoogleSearchResponse
// @Router /api/search/google [get]
func (h *SearchHandler) GoogleSearch(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid latitude"})
	}
	lng, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid longitude"})
	}

	origin := models.Coordinate{Latitude: lat, Longitude: lng}
	resp, err := h.google.Search(c.UserContext(), origin, c.Query("term"), c.Query("pagetoken"))
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(resp.Raw)
}

// PlacePhoto godoc
// @Summary Photo proxy redirect
// @Tags search
// @Param photo_reference query string true "Google photo reference"
// @Success 302
// @Router /api/place/photo [get]
func (h *SearchHandler) PlacePhoto(c *fiber.Ctx) error {
	photoRef := c.Query("photo_reference")
	if photoRef == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "photo_reference is required"})
	}

	location, err := h.google.ResolvePhotoURL(c.UserContext(), photoRef)
	if err != nil {
		return err
	}

	return c.Redirect(location, fiber.StatusFound)
}

// YelpSearch godoc
// @Summary Secondary business search via Yelp
// @Tags search
// @Produce json
// @Param location query string true "Free-text location"
// @Param term query string true "Search keyword"
// @Success 200 {object} places.YelpSearchResponse
// @Router /api/search [get]
func (h *SearchHandler) YelpSearch(c *fiber.Ctx) error {
	resp, err := h.yelp.Search(c.UserContext(), c.Query("location"), c.Query("term"))
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(resp.Raw)
}

package models

// Coordinate is a latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Restaurant is the canonical search result record. It is ephemeral:
// normalized from a provider payload, held in a search session, never
// persisted.
//
// DistanceMeters is computed from the coordinate the generating query
// used. Comparing distances across pages fetched from different base
// coordinates is invalid; a session never refreshes its base coordinate
// except on a new search.
type Restaurant struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ImageURL    string     `json:"image_url"`
	Coordinates Coordinate `json:"coordinates"`
	Address     string     `json:"address"`
	IsOpenNow   bool       `json:"is_open_now"`
	// DistanceMeters is 0 when no base coordinate was established.
	DistanceMeters float64 `json:"distance"`
	// PriceTier is a run of price symbols ("$$"), empty when unknown.
	PriceTier  string   `json:"price"`
	Categories []string `json:"categories"`

	// Deep links to secondary providers. Always constructed from
	// templates, never verified to resolve.
	GoogleMapsURL string `json:"url"`
	YelpURL       string `json:"yelp_url,omitempty"`
	HotpepperURL  string `json:"hotpepper_url,omitempty"`
}

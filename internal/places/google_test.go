package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/apperrors"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/models"
)

var testOrigin = models.Coordinate{Latitude: 35.6812, Longitude: 139.7671}

func TestGoogleSearch(t *testing.T) {
	payload := `{
		"results": [
			{"place_id": "p1", "name": "First", "business_status": "OPERATIONAL",
			 "geometry": {"location": {"lat": 35.69, "lng": 139.69}}, "price_level": 1},
			{"place_id": "p2", "name": "Second", "business_status": "OPERATIONAL",
			 "geometry": {"location": {"lat": 35.70, "lng": 139.70}}}
		],
		"next_page_token": "cursor-1",
		"status": "OK"
	}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("key") != "test-key" {
			t.Errorf("key = %q", q.Get("key"))
		}
		if q.Get("keyword") != "ramen" {
			t.Errorf("keyword = %q", q.Get("keyword"))
		}
		if q.Get("radius") != "5000" {
			t.Errorf("radius = %q", q.Get("radius"))
		}
		if q.Get("language") != "ja" {
			t.Errorf("language = %q", q.Get("language"))
		}
		if q.Get("pagetoken") != "" {
			t.Errorf("first page must not carry a pagetoken, got %q", q.Get("pagetoken"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	c := NewGoogleClient("test-key", 5000, "ja")
	c.SetBaseURL(srv.URL)

	resp, err := c.Search(context.Background(), testOrigin, "ramen", "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(resp.Results))
	}
	if resp.NextPageToken != "cursor-1" {
		t.Errorf("NextPageToken = %q", resp.NextPageToken)
	}
	if len(resp.Raw) == 0 {
		t.Error("Raw payload must be retained for passthrough")
	}
	if resp.Results[0].PriceLevel == nil || *resp.Results[0].PriceLevel != 1 {
		t.Error("price_level not decoded")
	}
	if resp.Results[1].PriceLevel != nil {
		t.Error("absent price_level must stay nil")
	}
}

func TestGoogleSearchCursorForwarded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("pagetoken"); got != "cursor-1" {
			t.Errorf("pagetoken = %q, want cursor-1", got)
		}
		w.Write([]byte(`{"results": [], "status": "OK"}`))
	}))
	defer srv.Close()

	c := NewGoogleClient("test-key", 5000, "ja")
	c.SetBaseURL(srv.URL)

	resp, err := c.Search(context.Background(), testOrigin, "ramen", "cursor-1")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	// an exhausted cursor returns an empty page, not an error
	if len(resp.Results) != 0 || resp.NextPageToken != "" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestGoogleSearchProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [], "status": "REQUEST_DENIED", "error_message": "The provided API key is invalid."}`))
	}))
	defer srv.Close()

	c := NewGoogleClient("bad-key", 5000, "ja")
	c.SetBaseURL(srv.URL)

	_, err := c.Search(context.Background(), testOrigin, "ramen", "")
	if err == nil {
		t.Fatal("expected error for provider error payload")
	}
	if !apperrors.IsKind(err, apperrors.Upstream) {
		t.Errorf("error kind = %v, want Upstream", err)
	}
}

func TestGoogleSearchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewGoogleClient("test-key", 5000, "ja")
	c.SetBaseURL(srv.URL)

	if _, err := c.Search(context.Background(), testOrigin, "ramen", ""); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestResolvePhotoURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("photo_reference"); got != "ref-1" {
			t.Errorf("photo_reference = %q", got)
		}
		w.Header().Set("Location", "https://lh3.example.com/actual.jpg")
		w.WriteHeader(http.StatusFound)
	}))
	defer srv.Close()

	c := NewGoogleClient("test-key", 5000, "ja")
	c.SetBaseURL(srv.URL)

	location, err := c.ResolvePhotoURL(context.Background(), "ref-1")
	if err != nil {
		t.Fatalf("ResolvePhotoURL: %v", err)
	}
	if location != "https://lh3.example.com/actual.jpg" {
		t.Errorf("location = %q", location)
	}
}

func TestResolvePhotoURLNoRedirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewGoogleClient("test-key", 5000, "ja")
	c.SetBaseURL(srv.URL)

	if _, err := c.ResolvePhotoURL(context.Background(), "ref-1"); err == nil {
		t.Fatal("expected error when the provider does not redirect")
	}
}

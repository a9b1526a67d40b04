package places

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/apperrors"
)

func TestGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got == "" {
			t.Error("geocoding requests must carry a User-Agent")
		}
		if got := r.URL.Query().Get("q"); got != "Shibuya, Tokyo" {
			t.Errorf("q = %q", got)
		}
		w.Write([]byte(`[{"lat": "35.6595", "lon": "139.7005"}, {"lat": "0", "lon": "0"}]`))
	}))
	defer srv.Close()

	g := NewNominatim(srv.URL)

	coord, err := g.Geocode(context.Background(), "Shibuya, Tokyo")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	// first match wins
	if math.Abs(coord.Latitude-35.6595) > 1e-9 || math.Abs(coord.Longitude-139.7005) > 1e-9 {
		t.Errorf("coord = %+v", coord)
	}
}

func TestGeocodeNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := NewNominatim(srv.URL)

	_, err := g.Geocode(context.Background(), "nowhere at all")
	if !apperrors.IsKind(err, apperrors.Upstream) {
		t.Errorf("error = %v, want Upstream", err)
	}
}

func TestGeocodeBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewNominatim(srv.URL)

	if _, err := g.Geocode(context.Background(), "Tokyo"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

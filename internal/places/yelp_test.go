package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/apperrors"
)

func TestYelpSearch(t *testing.T) {
	payload := `{
		"businesses": [
			{"id": "b1", "name": "Sushi Spot", "is_closed": false, "price": "$$",
			 "coordinates": {"latitude": 35.66, "longitude": 139.7},
			 "location": {"address1": "1-1-1 Ginza"},
			 "categories": [{"alias": "sushi", "title": "Sushi Bars"}]}
		],
		"total": 1
	}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer yelp-key" {
			t.Errorf("Authorization = %q", got)
		}
		q := r.URL.Query()
		if q.Get("location") != "Tokyo" || q.Get("term") != "sushi" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	c := NewYelpClient("yelp-key")
	c.SetBaseURL(srv.URL)

	resp, err := c.Search(context.Background(), "Tokyo", "sushi")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(resp.Businesses) != 1 || resp.Businesses[0].Name != "Sushi Spot" {
		t.Errorf("businesses = %+v", resp.Businesses)
	}
	if len(resp.Raw) == 0 {
		t.Error("Raw payload must be retained for passthrough")
	}
}

func TestYelpSearchMissingParams(t *testing.T) {
	c := NewYelpClient("yelp-key")

	_, err := c.Search(context.Background(), "", "sushi")
	if !apperrors.IsKind(err, apperrors.Validation) {
		t.Errorf("error = %v, want Validation", err)
	}

	_, err = c.Search(context.Background(), "Tokyo", "")
	if !apperrors.IsKind(err, apperrors.Validation) {
		t.Errorf("error = %v, want Validation", err)
	}
}

func TestYelpSearchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"code": "TOKEN_INVALID"}}`))
	}))
	defer srv.Close()

	c := NewYelpClient("bad-key")
	c.SetBaseURL(srv.URL)

	_, err := c.Search(context.Background(), "Tokyo", "sushi")
	if !apperrors.IsKind(err, apperrors.Upstream) {
		t.Errorf("error = %v, want Upstream", err)
	}
}

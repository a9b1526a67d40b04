package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/apperrors"
	"github.com/gofiber/fiber/v2"
)

func TestErrorHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"validation", apperrors.New(apperrors.Validation, "name is required"), http.StatusBadRequest, "name is required"},
		{"auth", apperrors.New(apperrors.Auth, "invalid provider token"), http.StatusUnauthorized, "invalid provider token"},
		{"not found", apperrors.NotFoundf("expense not found"), http.StatusNotFound, "expense not found"},
		{"upstream", apperrors.Upstreamf("google places unreachable"), http.StatusInternalServerError, "google places unreachable"},
		{"fiber error", fiber.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"plain error", fiber.NewError(http.StatusTeapot, "teapot"), http.StatusTeapot, "teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
			app.Get("/boom", func(c *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
			if err != nil {
				t.Fatalf("Test: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			var body ErrorResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error != tt.wantBody {
				t.Errorf("error = %q, want %q", body.Error, tt.wantBody)
			}
		})
	}
}

func TestHealthCheck(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", HealthCheck)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/config"
	"github.com/HirokiTakaya/Dine-Saver-Web/pkg/auth"
	"github.com/gofiber/fiber/v2"
)

func testCfg() *config.Config {
	return &config.Config{JWTSecretKey: "test-secret", SessionTokenTTL: time.Hour}
}

func TestAuthRequired(t *testing.T) {
	cfg := testCfg()
	app := fiber.New()
	app.Get("/protected", AuthRequired(cfg), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"uid": c.Locals("uid")})
	})

	token, err := auth.GenerateSessionToken("uid-1", cfg.JWTSecretKey, cfg.SessionTokenTTL)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"no header", "", http.StatusUnauthorized},
		{"malformed header", "Token " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("Test: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestOptionalAuthNeverRejects(t *testing.T) {
	cfg := testCfg()
	app := fiber.New()
	app.Get("/open", OptionalAuth(cfg), func(c *fiber.Ctx) error {
		uid, _ := c.Locals("uid").(string)
		return c.JSON(fiber.Map{"uid": uid})
	})

	for _, header := range []string{"", "Bearer garbage", "nonsense"} {
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Test: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("header %q: status = %d, want 200", header, resp.StatusCode)
		}
	}
}

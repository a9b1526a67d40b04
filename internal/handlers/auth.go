package handlers

import (
	"strings"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/config"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(verifier services.TokenVerifier, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		service: services.NewAuthService(verifier, cfg),
	}
}

func SetupAuthRoutes(router fiber.Router, verifier services.TokenVerifier, cfg *config.Config) {
	h := NewAuthHandler(verifier, cfg)

	router.Post("/login", h.Login)
}

// Login godoc
// @Summary Exchange a Firebase ID token for a session token
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer <Firebase ID token>"
// @Success 200 {object} map[string]string
// @Router /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized: Invalid token"})
	}

	token, err := h.service.ExchangeToken(c.UserContext(), parts[1])
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"token": token})
}

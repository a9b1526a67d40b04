package handlers

import (
	"context"
	"time"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/database"
	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports process liveness.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
	})
}

// ReadinessCheck reports whether the document store is reachable.
func ReadinessCheck(db *database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "not ready",
				"error":  err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"status": "ready",
		})
	}
}
